package rprequest

import (
	"context"

	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/entity/etrequest"
)

// RequestRepository is the storage contract for purchase requests.
// Implementations live in the infra layer.
type RequestRepository interface {
	// Create persists a new purchase request.
	Create(ctx context.Context, req *etrequest.PurchaseRequest) error

	// GetByID returns a request or errorx.ErrRequestNotFound.
	GetByID(ctx context.Context, requestID string) (*etrequest.PurchaseRequest, error)

	// UpdateOptimization stores the worker's result and the settled status.
	// result is nil when the optimization failed.
	UpdateOptimization(ctx context.Context, requestID string, result *etrequest.OptimizationResult, status etrequest.RequestStatus) error

	// UpdateApproval stores a manual approval decision.
	UpdateApproval(ctx context.Context, requestID string, decision *etrequest.ApprovalDecision, status etrequest.RequestStatus) error

	// ListByStatus returns requests in the given status, newest first.
	// An empty status returns everything.
	ListByStatus(ctx context.Context, status etrequest.RequestStatus, page, limit int) ([]*etrequest.PurchaseRequest, int64, error)

	// CountPendingBySupplierAndDepartment supports the consolidation
	// eligibility check on submission.
	CountPendingBySupplierAndDepartment(ctx context.Context, supplier, department string) (int64, error)
}
