package response

import (
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/entity/etrequest"
)

// FromRequestEntity converts a purchase-request entity to its DTO.
func FromRequestEntity(req *etrequest.PurchaseRequest) *PurchaseRequestResponse {
	resp := &PurchaseRequestResponse{
		ID:                    req.ID,
		Requester:             req.Requester,
		Department:            req.Department,
		Supplier:              req.Supplier,
		Description:           req.Description,
		TotalAmount:           req.TotalAmount,
		Urgency:               req.Urgency,
		DiversityCategory:     req.DiversityCategory,
		ApprovalLevel:         string(req.ApprovalLevel),
		Status:                string(req.Status),
		ConsolidationEligible: req.ConsolidationEligible,
		TotalEstimatedCost:    req.TotalEstimatedCost(),
		CreatedAt:             req.CreatedAt,
		UpdatedAt:             req.UpdatedAt,
	}

	if req.Optimization != nil {
		resp.Optimization = &OptimizationResult{
			RecommendedCarrier: req.Optimization.RecommendedCarrier,
			EstimatedShipping:  req.Optimization.EstimatedShipping,
			EstimatedDays:      req.Optimization.EstimatedDays,
			Confidence:         req.Optimization.Confidence,
			Reasoning:          req.Optimization.Reasoning,
		}
	}

	if req.Approval != nil {
		resp.Approval = &ApprovalDecision{
			Approver:   req.Approval.Approver,
			Decision:   req.Approval.Decision,
			Notes:      req.Approval.Notes,
			DecidedAt:  req.Approval.DecidedAt,
			NextAction: req.Approval.NextAction,
		}
	}

	return resp
}

// FromRequestEntities converts a page of entities.
func FromRequestEntities(reqs []*etrequest.PurchaseRequest, total int64, page, limit int) *ListPurchaseRequestsResponse {
	items := make([]*PurchaseRequestResponse, 0, len(reqs))
	for _, req := range reqs {
		items = append(items, FromRequestEntity(req))
	}
	return &ListPurchaseRequestsResponse{
		Requests: items,
		Total:    total,
		Page:     page,
		Limit:    limit,
	}
}
