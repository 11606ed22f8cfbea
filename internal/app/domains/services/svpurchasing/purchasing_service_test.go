package svpurchasing

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/entity/etrequest"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/errorx"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/idgen"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/logger"
	"github.com/isaiahriv1234/Freight-Project/internal/model"
)

type memoryRequestRepo struct {
	requests map[string]*etrequest.PurchaseRequest
}

func newMemoryRequestRepo() *memoryRequestRepo {
	return &memoryRequestRepo{requests: make(map[string]*etrequest.PurchaseRequest)}
}

func (r *memoryRequestRepo) Create(ctx context.Context, req *etrequest.PurchaseRequest) error {
	r.requests[req.ID] = req
	return nil
}

func (r *memoryRequestRepo) GetByID(ctx context.Context, requestID string) (*etrequest.PurchaseRequest, error) {
	req, ok := r.requests[requestID]
	if !ok {
		return nil, errorx.ErrRequestNotFound
	}
	return req, nil
}

func (r *memoryRequestRepo) UpdateOptimization(ctx context.Context, requestID string, result *etrequest.OptimizationResult, status etrequest.RequestStatus) error {
	req, ok := r.requests[requestID]
	if !ok {
		return errorx.ErrRequestNotFound
	}
	req.Optimization = result
	req.Status = status
	return nil
}

func (r *memoryRequestRepo) UpdateApproval(ctx context.Context, requestID string, decision *etrequest.ApprovalDecision, status etrequest.RequestStatus) error {
	req, ok := r.requests[requestID]
	if !ok {
		return errorx.ErrRequestNotFound
	}
	req.Approval = decision
	req.Status = status
	return nil
}

func (r *memoryRequestRepo) ListByStatus(ctx context.Context, status etrequest.RequestStatus, page, limit int) ([]*etrequest.PurchaseRequest, int64, error) {
	matched := make([]*etrequest.PurchaseRequest, 0)
	for _, req := range r.requests {
		if status == "" || req.Status == status {
			matched = append(matched, req)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := int64(len(matched))
	start := (page - 1) * limit
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *memoryRequestRepo) CountPendingBySupplierAndDepartment(ctx context.Context, supplier, department string) (int64, error) {
	var count int64
	for _, req := range r.requests {
		if req.Supplier == supplier && req.Department == department &&
			(req.Status == etrequest.StatusPendingOptimization || req.Status == etrequest.StatusPendingApproval) {
			count++
		}
	}
	return count, nil
}

// fakeOptimizer scripts the queue side of the flow.
type fakeOptimizer struct {
	publishErr error
	result     *model.OptimizeResultMessage
	waitErr    error
	published  []*etrequest.PurchaseRequest
}

func (f *fakeOptimizer) PublishOptimizeJob(ctx context.Context, req *etrequest.PurchaseRequest) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, req)
	return nil
}

func (f *fakeOptimizer) WaitForResult(ctx context.Context, purchaseRequestID string, timeout time.Duration) (*model.OptimizeResultMessage, error) {
	if f.waitErr != nil {
		return nil, f.waitErr
	}
	result := *f.result
	result.RequestID = purchaseRequestID
	return &result, nil
}

func newService(repo *memoryRequestRepo, optimizer Optimizer) *PurchasingService {
	return NewPurchasingService(repo, optimizer, idgen.NewSnowflakeIDGenerator(1), logger.NewNopLogger())
}

func sampleInput() SubmitInput {
	return SubmitInput{
		Requester:   "jdoe",
		Department:  "Chemistry",
		Supplier:    "Acme Supply",
		Description: "Beakers",
		TotalAmount: 1200,
		Urgency:     etrequest.UrgencyStandard,
	}
}

func TestSubmitRequestNoWait(t *testing.T) {
	repo := newMemoryRequestRepo()
	optimizer := &fakeOptimizer{}
	svc := newService(repo, optimizer)

	req, err := svc.SubmitRequest(context.Background(), sampleInput(), 0)
	require.NoError(t, err)

	assert.Equal(t, etrequest.StatusPendingOptimization, req.Status)
	assert.Equal(t, etrequest.ApprovalManager, req.ApprovalLevel)
	require.Len(t, optimizer.published, 1)
	assert.Equal(t, req.ID, optimizer.published[0].ID)

	stored, err := repo.GetByID(context.Background(), req.ID)
	require.NoError(t, err)
	assert.Equal(t, req.ID, stored.ID)
}

func TestSubmitRequestWaitSuccess(t *testing.T) {
	repo := newMemoryRequestRepo()
	optimizer := &fakeOptimizer{result: &model.OptimizeResultMessage{
		Status:             model.OptimizeStatusSuccess,
		RecommendedCarrier: "FedEx",
		EstimatedShipping:  85.50,
		EstimatedDays:      4,
		Confidence:         90,
		Reasoning:          "Good balance of cost and speed",
	}}
	svc := newService(repo, optimizer)

	req, err := svc.SubmitRequest(context.Background(), sampleInput(), 10)
	require.NoError(t, err)

	assert.Equal(t, etrequest.StatusPendingApproval, req.Status)
	require.NotNil(t, req.Optimization)
	assert.Equal(t, "FedEx", req.Optimization.RecommendedCarrier)
	assert.Equal(t, 1285.50, req.TotalEstimatedCost())

	stored, _ := repo.GetByID(context.Background(), req.ID)
	assert.Equal(t, etrequest.StatusPendingApproval, stored.Status)
	assert.NotNil(t, stored.Optimization)
}

func TestSubmitRequestWaitAutoApproves(t *testing.T) {
	repo := newMemoryRequestRepo()
	optimizer := &fakeOptimizer{result: &model.OptimizeResultMessage{
		Status:             model.OptimizeStatusSuccess,
		RecommendedCarrier: "UPS",
		EstimatedShipping:  15,
	}}
	svc := newService(repo, optimizer)

	in := sampleInput()
	in.TotalAmount = 300
	req, err := svc.SubmitRequest(context.Background(), in, 5)
	require.NoError(t, err)
	assert.Equal(t, etrequest.StatusAutoApproved, req.Status)
}

func TestSubmitRequestWaitTimeout(t *testing.T) {
	repo := newMemoryRequestRepo()
	optimizer := &fakeOptimizer{waitErr: context.DeadlineExceeded}
	svc := newService(repo, optimizer)

	req, err := svc.SubmitRequest(context.Background(), sampleInput(), 2)
	require.NoError(t, err)

	// Timed-out waits return the request still pending so the transport
	// layer can answer with a poll URL.
	assert.Equal(t, etrequest.StatusPendingOptimization, req.Status)
	assert.Nil(t, req.Optimization)
}

func TestSubmitRequestWaitFailedResult(t *testing.T) {
	repo := newMemoryRequestRepo()
	optimizer := &fakeOptimizer{result: &model.OptimizeResultMessage{
		Status: model.OptimizeStatusFailed,
		Error:  "no carrier data",
	}}
	svc := newService(repo, optimizer)

	req, err := svc.SubmitRequest(context.Background(), sampleInput(), 5)
	require.NoError(t, err)
	assert.Equal(t, etrequest.StatusFailed, req.Status)
}

func TestSubmitRequestPublishFailureKeepsRequest(t *testing.T) {
	repo := newMemoryRequestRepo()
	optimizer := &fakeOptimizer{publishErr: errors.New("queue unavailable")}
	svc := newService(repo, optimizer)

	req, err := svc.SubmitRequest(context.Background(), sampleInput(), 10)
	require.NoError(t, err)
	assert.Equal(t, etrequest.StatusPendingOptimization, req.Status)
}

func TestSubmitRequestConsolidationEligible(t *testing.T) {
	repo := newMemoryRequestRepo()
	optimizer := &fakeOptimizer{}
	svc := newService(repo, optimizer)
	ctx := context.Background()

	first, err := svc.SubmitRequest(ctx, sampleInput(), 0)
	require.NoError(t, err)
	assert.False(t, first.ConsolidationEligible)

	// A second pending request for the same supplier and department.
	second, err := svc.SubmitRequest(ctx, sampleInput(), 0)
	require.NoError(t, err)
	assert.True(t, second.ConsolidationEligible)
}

func TestSubmitRequestInvalidInput(t *testing.T) {
	svc := newService(newMemoryRequestRepo(), &fakeOptimizer{})
	in := sampleInput()
	in.TotalAmount = 0
	_, err := svc.SubmitRequest(context.Background(), in, 0)
	assert.ErrorIs(t, err, etrequest.ErrInvalidAmount)
}

func TestListRequestsDefaults(t *testing.T) {
	repo := newMemoryRequestRepo()
	svc := newService(repo, &fakeOptimizer{})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.SubmitRequest(ctx, sampleInput(), 0)
		require.NoError(t, err)
	}

	requests, total, err := svc.ListRequests(ctx, "", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, requests, 3)

	pending, total, err := svc.ListRequests(ctx, etrequest.StatusPendingOptimization, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, pending, 2)
}

func TestDecideApproval(t *testing.T) {
	repo := newMemoryRequestRepo()
	optimizer := &fakeOptimizer{result: &model.OptimizeResultMessage{
		Status:             model.OptimizeStatusSuccess,
		RecommendedCarrier: "FedEx",
	}}
	svc := newService(repo, optimizer)
	ctx := context.Background()

	req, err := svc.SubmitRequest(ctx, sampleInput(), 5)
	require.NoError(t, err)
	require.Equal(t, etrequest.StatusPendingApproval, req.Status)

	decided, err := svc.DecideApproval(ctx, req.ID, "manager1", "approved", "ok")
	require.NoError(t, err)
	assert.Equal(t, etrequest.StatusApproved, decided.Status)
	require.NotNil(t, decided.Approval)
	assert.Equal(t, "create_po", decided.Approval.NextAction)
}

func TestDecideApprovalInvalidDecision(t *testing.T) {
	svc := newService(newMemoryRequestRepo(), &fakeOptimizer{})
	_, err := svc.DecideApproval(context.Background(), "REQ-X", "manager1", "maybe", "")
	assert.Error(t, err)
}

func TestDecideApprovalWrongStatus(t *testing.T) {
	repo := newMemoryRequestRepo()
	svc := newService(repo, &fakeOptimizer{})
	ctx := context.Background()

	req, err := svc.SubmitRequest(ctx, sampleInput(), 0)
	require.NoError(t, err)

	_, err = svc.DecideApproval(ctx, req.ID, "manager1", "approved", "")
	assert.ErrorIs(t, err, errorx.ErrApprovalNotAllowed)
}

func TestDecideApprovalNotFound(t *testing.T) {
	svc := newService(newMemoryRequestRepo(), &fakeOptimizer{})
	_, err := svc.DecideApproval(context.Background(), "REQ-MISSING", "manager1", "approved", "")
	assert.ErrorIs(t, err, errorx.ErrRequestNotFound)
}
