package etrequest

import (
	"errors"
	"time"
)

var (
	ErrInvalidRequestID = errors.New("request ID cannot be empty")
	ErrInvalidRequester = errors.New("requester cannot be empty")
	ErrInvalidSupplier  = errors.New("supplier cannot be empty")
	ErrInvalidAmount    = errors.New("total amount must be positive")
	ErrNilOptimization  = errors.New("optimization result cannot be nil")
)

// RequestStatus is the lifecycle state of a purchase request.
type RequestStatus string

const (
	StatusPendingOptimization RequestStatus = "PENDING_OPTIMIZATION"
	StatusAutoApproved        RequestStatus = "AUTO_APPROVED"
	StatusPendingApproval     RequestStatus = "PENDING_APPROVAL"
	StatusApproved            RequestStatus = "APPROVED"
	StatusRejected            RequestStatus = "REJECTED"
	StatusFailed              RequestStatus = "FAILED"
)

// ApprovalLevel is the sign-off tier required for a request.
type ApprovalLevel string

const (
	ApprovalAuto      ApprovalLevel = "auto"
	ApprovalManager   ApprovalLevel = "manager"
	ApprovalExecutive ApprovalLevel = "executive"
)

// Approval thresholds in dollars.
const (
	AutoApproveLimit    = 500.0
	ManagerApproveLimit = 5000.0
)

// Urgency levels accepted on submission.
const (
	UrgencyStandard  = "standard"
	UrgencyExpedited = "expedited"
	UrgencyOvernight = "overnight"
)

// PurchaseRequest is the aggregate root for a centralized purchasing request.
type PurchaseRequest struct {
	ID                    string
	Requester             string
	Department            string
	Supplier              string
	Description           string
	TotalAmount           float64
	Urgency               string
	DiversityCategory     string
	ApprovalLevel         ApprovalLevel
	Status                RequestStatus
	ConsolidationEligible bool
	Optimization          *OptimizationResult
	Approval              *ApprovalDecision
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// OptimizationResult is the worker's carrier recommendation for a request.
type OptimizationResult struct {
	RecommendedCarrier string               `json:"recommended_carrier"`
	EstimatedShipping  float64              `json:"estimated_shipping"`
	EstimatedDays      int                  `json:"estimated_days"`
	Confidence         int                  `json:"confidence"`
	Reasoning          string               `json:"reasoning"`
	Alternatives       []AlternativeCarrier `json:"alternatives,omitempty"`
}

// AlternativeCarrier is one non-recommended option.
type AlternativeCarrier struct {
	Carrier       string  `json:"carrier"`
	EstimatedCost float64 `json:"estimated_cost"`
	LeadTimeDays  float64 `json:"lead_time_days"`
	Score         float64 `json:"score"`
}

// ApprovalDecision records the outcome of a manual approval.
type ApprovalDecision struct {
	Approver   string    `json:"approver"`
	Decision   string    `json:"decision"` // approved / rejected
	Notes      string    `json:"notes,omitempty"`
	DecidedAt  time.Time `json:"decided_at"`
	NextAction string    `json:"next_action"` // create_po / notify_requester
}

// DeriveApprovalLevel maps an order amount onto the sign-off tier.
func DeriveApprovalLevel(amount float64) ApprovalLevel {
	switch {
	case amount <= AutoApproveLimit:
		return ApprovalAuto
	case amount <= ManagerApproveLimit:
		return ApprovalManager
	default:
		return ApprovalExecutive
	}
}

// NewPurchaseRequest validates inputs and builds a request pending
// carrier optimization.
func NewPurchaseRequest(id, requester, department, supplier, description string, totalAmount float64, urgency, diversityCategory string) (*PurchaseRequest, error) {
	if id == "" {
		return nil, ErrInvalidRequestID
	}
	if requester == "" {
		return nil, ErrInvalidRequester
	}
	if supplier == "" {
		return nil, ErrInvalidSupplier
	}
	if totalAmount <= 0 {
		return nil, ErrInvalidAmount
	}
	if urgency == "" {
		urgency = UrgencyStandard
	}
	if diversityCategory == "" {
		diversityCategory = "Non-Diverse"
	}

	now := time.Now()
	return &PurchaseRequest{
		ID:                id,
		Requester:         requester,
		Department:        department,
		Supplier:          supplier,
		Description:       description,
		TotalAmount:       totalAmount,
		Urgency:           urgency,
		DiversityCategory: diversityCategory,
		ApprovalLevel:     DeriveApprovalLevel(totalAmount),
		Status:            StatusPendingOptimization,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// ApplyOptimization attaches the worker's result and settles the status:
// auto-tier requests are approved immediately, the rest wait for sign-off.
func (r *PurchaseRequest) ApplyOptimization(result *OptimizationResult) error {
	if result == nil {
		return ErrNilOptimization
	}
	r.Optimization = result
	if r.ApprovalLevel == ApprovalAuto {
		r.Status = StatusAutoApproved
	} else {
		r.Status = StatusPendingApproval
	}
	r.UpdatedAt = time.Now()
	return nil
}

// Decide records a manual approval decision.
func (r *PurchaseRequest) Decide(approver, decision, notes string) error {
	if r.Status != StatusPendingApproval {
		return errors.New("request is not pending approval")
	}

	nextAction := "notify_requester"
	status := StatusRejected
	if decision == "approved" {
		nextAction = "create_po"
		status = StatusApproved
	}

	r.Approval = &ApprovalDecision{
		Approver:   approver,
		Decision:   decision,
		Notes:      notes,
		DecidedAt:  time.Now(),
		NextAction: nextAction,
	}
	r.Status = status
	r.UpdatedAt = time.Now()
	return nil
}

// MarkAsFailed flags the request after an optimization failure.
func (r *PurchaseRequest) MarkAsFailed() {
	r.Status = StatusFailed
	r.UpdatedAt = time.Now()
}

// TotalEstimatedCost is order amount plus estimated shipping when known.
func (r *PurchaseRequest) TotalEstimatedCost() float64 {
	if r.Optimization == nil {
		return r.TotalAmount
	}
	return r.TotalAmount + r.Optimization.EstimatedShipping
}
