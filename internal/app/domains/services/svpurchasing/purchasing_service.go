package svpurchasing

import (
	"context"
	"fmt"
	"time"

	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/entity/etrequest"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/repo/rprequest"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/errorx"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/idgen"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/logger"
	"github.com/isaiahriv1234/Freight-Project/internal/model"
)

// Optimizer hands requests to the carrier-optimization worker and waits
// for results. mdoptimize.OptimizeModule is the production implementation.
type Optimizer interface {
	PublishOptimizeJob(ctx context.Context, req *etrequest.PurchaseRequest) error
	WaitForResult(ctx context.Context, purchaseRequestID string, timeout time.Duration) (*model.OptimizeResultMessage, error)
}

// PurchasingService orchestrates the centralized purchase-request flow:
// submission, carrier optimization hand-off, smart wait, and approvals.
type PurchasingService struct {
	requests       rprequest.RequestRepository
	optimizeModule Optimizer
	idgen          *idgen.SnowflakeIDGenerator
	log            logger.Logger
}

func NewPurchasingService(requests rprequest.RequestRepository, optimizeModule Optimizer, gen *idgen.SnowflakeIDGenerator, log logger.Logger) *PurchasingService {
	return &PurchasingService{
		requests:       requests,
		optimizeModule: optimizeModule,
		idgen:          gen,
		log:            log,
	}
}

// SubmitInput is the validated submission payload.
type SubmitInput struct {
	Requester         string
	Department        string
	Supplier          string
	Description       string
	TotalAmount       float64
	Urgency           string
	DiversityCategory string
}

// SubmitRequest runs the full submission flow:
//  1. build the request entity, deriving the approval tier
//  2. flag consolidation eligibility from other pending requests
//  3. persist
//  4. publish the carrier-optimization job
//  5. smart-wait for the worker's result when the caller asked to
//
// A queue publish failure does not fail the submission; the request
// stays PENDING_OPTIMIZATION and can be re-driven later. When the wait
// times out the request is returned as-is so the transport layer can
// answer with a poll URL.
func (s *PurchasingService) SubmitRequest(ctx context.Context, in SubmitInput, waitSeconds int) (*etrequest.PurchaseRequest, error) {
	req, err := etrequest.NewPurchaseRequest(
		s.idgen.RequestID(time.Now()),
		in.Requester, in.Department, in.Supplier, in.Description,
		in.TotalAmount, in.Urgency, in.DiversityCategory,
	)
	if err != nil {
		return nil, err
	}

	pending, err := s.requests.CountPendingBySupplierAndDepartment(ctx, req.Supplier, req.Department)
	if err != nil {
		s.log.Warnf(ctx, "consolidation eligibility check failed: request_id=%s, error=%v", req.ID, err)
	} else {
		req.ConsolidationEligible = pending > 0
	}

	if err := s.requests.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("save purchase request failed: %w", err)
	}

	if err := s.optimizeModule.PublishOptimizeJob(ctx, req); err != nil {
		s.log.Warnf(ctx, "publish optimize job failed: request_id=%s, error=%v", req.ID, err)
		return req, nil
	}

	if waitSeconds > 0 {
		timeout := time.Duration(waitSeconds) * time.Second
		result, err := s.optimizeModule.WaitForResult(ctx, req.ID, timeout)
		if err != nil {
			s.log.Infof(ctx, "optimize result not ready within %ds: request_id=%s", waitSeconds, req.ID)
			return req, nil
		}

		if err := s.applyResult(ctx, req, result); err != nil {
			return nil, err
		}
	}

	return req, nil
}

// applyResult settles the in-memory entity and persists the outcome.
// The worker also writes the result row; this double write keeps the
// smart-wait response and the table consistent when timing races.
func (s *PurchasingService) applyResult(ctx context.Context, req *etrequest.PurchaseRequest, result *model.OptimizeResultMessage) error {
	if result.Status != model.OptimizeStatusSuccess {
		req.MarkAsFailed()
		if err := s.requests.UpdateOptimization(ctx, req.ID, nil, etrequest.StatusFailed); err != nil {
			return fmt.Errorf("persist failed status failed: %w", err)
		}
		return nil
	}

	optimization := &etrequest.OptimizationResult{
		RecommendedCarrier: result.RecommendedCarrier,
		EstimatedShipping:  result.EstimatedShipping,
		EstimatedDays:      result.EstimatedDays,
		Confidence:         result.Confidence,
		Reasoning:          result.Reasoning,
	}
	if err := req.ApplyOptimization(optimization); err != nil {
		return fmt.Errorf("apply optimization failed: %w", err)
	}
	if err := s.requests.UpdateOptimization(ctx, req.ID, optimization, req.Status); err != nil {
		s.log.Errorf(ctx, "persist optimize result failed: request_id=%s, error=%v", req.ID, err)
		return fmt.Errorf("persist optimize result failed: %w", err)
	}
	return nil
}

// GetRequest returns one purchase request.
func (s *PurchasingService) GetRequest(ctx context.Context, requestID string) (*etrequest.PurchaseRequest, error) {
	return s.requests.GetByID(ctx, requestID)
}

// ListRequests returns requests filtered by status, newest first.
func (s *PurchasingService) ListRequests(ctx context.Context, status etrequest.RequestStatus, page, limit int) ([]*etrequest.PurchaseRequest, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.requests.ListByStatus(ctx, status, page, limit)
}

// DecideApproval records a manual approve/reject on a request that is
// pending sign-off.
func (s *PurchasingService) DecideApproval(ctx context.Context, requestID, approver, decision, notes string) (*etrequest.PurchaseRequest, error) {
	if decision != "approved" && decision != "rejected" {
		return nil, errorx.NewBusinessError(400, "decision must be approved or rejected")
	}

	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if req.Status != etrequest.StatusPendingApproval {
		return nil, errorx.ErrApprovalNotAllowed
	}

	if err := req.Decide(approver, decision, notes); err != nil {
		return nil, err
	}

	if err := s.requests.UpdateApproval(ctx, requestID, req.Approval, req.Status); err != nil {
		return nil, fmt.Errorf("persist approval decision failed: %w", err)
	}

	s.log.Infof(ctx, "purchase request %s %s by %s", requestID, decision, approver)
	return req, nil
}
