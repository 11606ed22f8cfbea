package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/entity/etshipment"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/repo/rpdataset"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/services/svshipment"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/services/svshipping"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/errorx"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/ginx"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/idgen"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/logger"
)

type stubShipmentRepo struct {
	byTracking map[string]*etshipment.Shipment
}

func (r *stubShipmentRepo) Create(_ context.Context, s *etshipment.Shipment) error {
	r.byTracking[s.TrackingNumber] = s
	return nil
}

func (r *stubShipmentRepo) GetByTrackingNumber(_ context.Context, trackingNumber string) (*etshipment.Shipment, error) {
	if s, ok := r.byTracking[trackingNumber]; ok {
		return s, nil
	}
	return nil, errorx.ErrShipmentNotFound
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	shippingService := svshipping.NewShippingService(rpdataset.NewMemoryRepository(nil))
	shipmentService := svshipment.NewShipmentService(
		&stubShipmentRepo{byTracking: make(map[string]*etshipment.Shipment)},
		idgen.NewSnowflakeIDGenerator(1),
		logger.NewNopLogger(),
	)
	handler := NewPaymentHandler(shipmentService, shippingService)

	router := gin.New()
	router.POST("/api/v1/payments", handler.Create)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, body string) (*httptest.ResponseRecorder, ginx.Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var envelope ginx.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

const quoteBody = `{
	"pickup_location": "Cal Poly Campus",
	"dropoff_location": "1 Grand Ave",
	"items": [{"description": "Lab equipment", "weight": 10}]
}`

func TestCreatePaymentEndpoint(t *testing.T) {
	body := `{
		"method": "credit-card",
		"card_number": "4111111111111111",
		"card_expiration": "12/27",
		"quote": ` + quoteBody + `
	}`
	w, envelope := doJSON(t, newTestRouter(), body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 200, envelope.Meta.Code)

	data := envelope.Data.(map[string]interface{})
	assert.Len(t, data["tracking_number"], 16)
	// 50 base + 10 lb * 2 + 25 distance + basic insurance 5.
	assert.Equal(t, 100.0, data["amount_charged"])
}

func TestCreatePaymentEndpointMissingCard(t *testing.T) {
	body := `{"method": "credit-card", "quote": ` + quoteBody + `}`
	w, envelope := doJSON(t, newTestRouter(), body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 400, envelope.Meta.Code)
}
