package purchasing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/entity/etrequest"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/services/svpurchasing"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/errorx"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/ginx"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/idgen"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/logger"
	"github.com/isaiahriv1234/Freight-Project/internal/model"
)

type stubRequestRepo struct {
	requests map[string]*etrequest.PurchaseRequest
}

func newStubRequestRepo() *stubRequestRepo {
	return &stubRequestRepo{requests: make(map[string]*etrequest.PurchaseRequest)}
}

func (r *stubRequestRepo) Create(ctx context.Context, req *etrequest.PurchaseRequest) error {
	r.requests[req.ID] = req
	return nil
}

func (r *stubRequestRepo) GetByID(ctx context.Context, requestID string) (*etrequest.PurchaseRequest, error) {
	req, ok := r.requests[requestID]
	if !ok {
		return nil, errorx.ErrRequestNotFound
	}
	return req, nil
}

func (r *stubRequestRepo) UpdateOptimization(ctx context.Context, requestID string, result *etrequest.OptimizationResult, status etrequest.RequestStatus) error {
	return nil
}

func (r *stubRequestRepo) UpdateApproval(ctx context.Context, requestID string, decision *etrequest.ApprovalDecision, status etrequest.RequestStatus) error {
	return nil
}

func (r *stubRequestRepo) ListByStatus(ctx context.Context, status etrequest.RequestStatus, page, limit int) ([]*etrequest.PurchaseRequest, int64, error) {
	matched := make([]*etrequest.PurchaseRequest, 0, len(r.requests))
	for _, req := range r.requests {
		if status == "" || req.Status == status {
			matched = append(matched, req)
		}
	}
	return matched, int64(len(matched)), nil
}

func (r *stubRequestRepo) CountPendingBySupplierAndDepartment(ctx context.Context, supplier, department string) (int64, error) {
	return 0, nil
}

type stubOptimizer struct {
	result *model.OptimizeResultMessage
}

func (o *stubOptimizer) PublishOptimizeJob(ctx context.Context, req *etrequest.PurchaseRequest) error {
	return nil
}

func (o *stubOptimizer) WaitForResult(ctx context.Context, purchaseRequestID string, timeout time.Duration) (*model.OptimizeResultMessage, error) {
	if o.result == nil {
		return nil, context.DeadlineExceeded
	}
	result := *o.result
	result.RequestID = purchaseRequestID
	return &result, nil
}

func newTestRouter(repo *stubRequestRepo, optimizer *stubOptimizer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := svpurchasing.NewPurchasingService(repo, optimizer, idgen.NewSnowflakeIDGenerator(1), logger.NewNopLogger())
	handler := NewPurchasingHandler(svc)

	router := gin.New()
	group := router.Group("/api/v1/purchase-requests")
	{
		group.POST("", handler.Submit)
		group.GET("", handler.List)
		group.GET("/:id", handler.Get)
		group.POST("/:id/approval", handler.Approval)
	}
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, ginx.Response) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var envelope ginx.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

const submitBody = `{
	"requester": "jdoe",
	"department": "Chemistry",
	"supplier": "Acme Supply",
	"description": "Beakers",
	"total_amount": 1200,
	"urgency": "standard"
}`

func TestSubmitReturnsProcessingWithoutWait(t *testing.T) {
	router := newTestRouter(newStubRequestRepo(), &stubOptimizer{})

	w, envelope := doJSON(t, router, http.MethodPost, "/api/v1/purchase-requests", submitBody)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3001, envelope.Meta.Code)

	data := envelope.Data.(map[string]interface{})
	assert.NotEmpty(t, data["request_id"])
	assert.Contains(t, data["poll_url"], "/api/v1/purchase-requests/")
}

func TestSubmitSmartWaitReturnsSettledRequest(t *testing.T) {
	router := newTestRouter(newStubRequestRepo(), &stubOptimizer{result: &model.OptimizeResultMessage{
		Status:             model.OptimizeStatusSuccess,
		RecommendedCarrier: "FedEx",
		EstimatedShipping:  85.50,
		EstimatedDays:      4,
		Confidence:         90,
	}})

	w, envelope := doJSON(t, router, http.MethodPost, "/api/v1/purchase-requests?wait=5", submitBody)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 200, envelope.Meta.Code)

	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, string(etrequest.StatusPendingApproval), data["status"])

	optimization := data["optimization"].(map[string]interface{})
	assert.Equal(t, "FedEx", optimization["recommended_carrier"])
}

func TestSubmitSmartWaitTimeoutReturnsPollURL(t *testing.T) {
	router := newTestRouter(newStubRequestRepo(), &stubOptimizer{})

	w, envelope := doJSON(t, router, http.MethodPost, "/api/v1/purchase-requests?wait=1", submitBody)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3001, envelope.Meta.Code)
}

func TestSubmitValidation(t *testing.T) {
	router := newTestRouter(newStubRequestRepo(), &stubOptimizer{})

	w, envelope := doJSON(t, router, http.MethodPost, "/api/v1/purchase-requests", `{"requester": "jdoe"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 400, envelope.Meta.Code)
	assert.NotEmpty(t, envelope.Meta.Details)
}

func TestSubmitRejectsUnknownUrgency(t *testing.T) {
	router := newTestRouter(newStubRequestRepo(), &stubOptimizer{})

	body := strings.Replace(submitBody, `"standard"`, `"yesterday"`, 1)
	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/purchase-requests", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetNotFound(t *testing.T) {
	router := newTestRouter(newStubRequestRepo(), &stubOptimizer{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/purchase-requests/PR-MISSING", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetReturnsRequest(t *testing.T) {
	repo := newStubRequestRepo()
	router := newTestRouter(repo, &stubOptimizer{})

	pr, err := etrequest.NewPurchaseRequest("PR-20240115-001", "jdoe", "Chemistry", "Acme Supply", "", 1200, "", "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), pr))

	w, envelope := doJSON(t, router, http.MethodGet, "/api/v1/purchase-requests/PR-20240115-001", "")
	assert.Equal(t, http.StatusOK, w.Code)

	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, "PR-20240115-001", data["id"])
}

func TestApprovalHappyPath(t *testing.T) {
	repo := newStubRequestRepo()
	router := newTestRouter(repo, &stubOptimizer{})

	pr, err := etrequest.NewPurchaseRequest("PR-20240115-002", "jdoe", "Chemistry", "Acme Supply", "", 3000, "", "")
	require.NoError(t, err)
	require.NoError(t, pr.ApplyOptimization(&etrequest.OptimizationResult{RecommendedCarrier: "FedEx"}))
	require.NoError(t, repo.Create(context.Background(), pr))

	w, envelope := doJSON(t, router, http.MethodPost, "/api/v1/purchase-requests/PR-20240115-002/approval",
		`{"approver": "manager1", "decision": "approved", "notes": "ok"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, string(etrequest.StatusApproved), data["status"])
}

func TestApprovalWrongStatus(t *testing.T) {
	repo := newStubRequestRepo()
	router := newTestRouter(repo, &stubOptimizer{})

	pr, err := etrequest.NewPurchaseRequest("PR-20240115-003", "jdoe", "Chemistry", "Acme Supply", "", 3000, "", "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), pr))

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/purchase-requests/PR-20240115-003/approval",
		`{"approver": "manager1", "decision": "approved"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApprovalInvalidDecision(t *testing.T) {
	router := newTestRouter(newStubRequestRepo(), &stubOptimizer{})

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/purchase-requests/PR-X/approval",
		`{"approver": "manager1", "decision": "maybe"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
