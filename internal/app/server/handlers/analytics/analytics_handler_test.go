package analytics

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/entity/etprocurement"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/repo/rpdataset"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/services/svanalytics"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/ginx"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/logger"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	d1, _ := time.Parse("2006-01-02", "2024-01-10")
	d2, _ := time.Parse("2006-01-02", "2024-02-05")
	dataset := rpdataset.NewMemoryRepository([]*etprocurement.Record{
		{POID: "PO-1", SupplierName: "Acme Supply", OrderType: "Standard PO", TotalAmount: 1000, PODate: d1},
		{POID: "PO-2", SupplierName: "Dell Marketing LP", OrderType: "Technology PO", TotalAmount: 3000, PODate: d2},
	})
	handler := NewAnalyticsHandler(svanalytics.NewAnalyticsService(dataset, nil, logger.NewNopLogger()))

	router := gin.New()
	group := router.Group("/api/v1/analytics")
	{
		group.GET("/spend-summary", handler.SpendSummary)
		group.GET("/monthly-trends", handler.MonthlyTrends)
		group.GET("/top-suppliers", handler.TopSuppliers)
		group.GET("/category-breakdown", handler.CategoryBreakdown)
	}
	return router
}

func doGet(t *testing.T, router *gin.Engine, path string) (*httptest.ResponseRecorder, ginx.Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var envelope ginx.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func TestSpendSummaryEndpoint(t *testing.T) {
	w, envelope := doGet(t, newTestRouter(), "/api/v1/analytics/spend-summary")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 200, envelope.Meta.Code)

	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, 4000.0, data["total_spend"])
	assert.Equal(t, 2.0, data["total_orders"])
}

func TestMonthlyTrendsEndpoint(t *testing.T) {
	w, envelope := doGet(t, newTestRouter(), "/api/v1/analytics/monthly-trends")

	assert.Equal(t, http.StatusOK, w.Code)
	data := envelope.Data.(map[string]interface{})
	months := data["months"].([]interface{})
	assert.Equal(t, []interface{}{"2024-01", "2024-02"}, months)
}

func TestTopSuppliersEndpoint(t *testing.T) {
	w, envelope := doGet(t, newTestRouter(), "/api/v1/analytics/top-suppliers?limit=1")

	assert.Equal(t, http.StatusOK, w.Code)
	data := envelope.Data.(map[string]interface{})
	suppliers := data["suppliers"].([]interface{})
	require.Len(t, suppliers, 1)
	assert.Equal(t, "Dell Marketing LP", suppliers[0])
}

func TestTopSuppliersRejectsBadLimit(t *testing.T) {
	w, envelope := doGet(t, newTestRouter(), "/api/v1/analytics/top-suppliers?limit=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 400, envelope.Meta.Code)

	w, _ = doGet(t, newTestRouter(), "/api/v1/analytics/top-suppliers?limit=-1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCategoryBreakdownEndpoint(t *testing.T) {
	w, envelope := doGet(t, newTestRouter(), "/api/v1/analytics/category-breakdown")

	assert.Equal(t, http.StatusOK, w.Code)
	data := envelope.Data.(map[string]interface{})
	categories := data["categories"].([]interface{})
	assert.Equal(t, []interface{}{"Standard PO", "Technology PO"}, categories)
}
