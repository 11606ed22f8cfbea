package response

import "time"

// PurchaseRequestResponse is the purchase-request DTO.
type PurchaseRequestResponse struct {
	ID                    string              `json:"id"`
	Requester             string              `json:"requester"`
	Department            string              `json:"department"`
	Supplier              string              `json:"supplier"`
	Description           string              `json:"description,omitempty"`
	TotalAmount           float64             `json:"total_amount"`
	Urgency               string              `json:"urgency"`
	DiversityCategory     string              `json:"diversity_category"`
	ApprovalLevel         string              `json:"approval_level"`
	Status                string              `json:"status"`
	ConsolidationEligible bool                `json:"consolidation_eligible"`
	TotalEstimatedCost    float64             `json:"total_estimated_cost"`
	Optimization          *OptimizationResult `json:"optimization,omitempty"`
	Approval              *ApprovalDecision   `json:"approval,omitempty"`
	CreatedAt             time.Time           `json:"created_at"`
	UpdatedAt             time.Time           `json:"updated_at"`
}

// OptimizationResult is the carrier recommendation DTO.
type OptimizationResult struct {
	RecommendedCarrier string  `json:"recommended_carrier"`
	EstimatedShipping  float64 `json:"estimated_shipping"`
	EstimatedDays      int     `json:"estimated_days"`
	Confidence         int     `json:"confidence"`
	Reasoning          string  `json:"reasoning"`
}

// ApprovalDecision is the sign-off outcome DTO.
type ApprovalDecision struct {
	Approver   string    `json:"approver"`
	Decision   string    `json:"decision"`
	Notes      string    `json:"notes,omitempty"`
	DecidedAt  time.Time `json:"decided_at"`
	NextAction string    `json:"next_action"`
}

// ListPurchaseRequestsResponse wraps a page of requests.
type ListPurchaseRequestsResponse struct {
	Requests []*PurchaseRequestResponse `json:"requests"`
	Total    int64                      `json:"total"`
	Page     int                        `json:"page"`
	Limit    int                        `json:"limit"`
}
