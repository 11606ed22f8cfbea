package shipping

import (
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/services/svshipment"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/services/svshipping"
)

// ShippingHandler serves quoting, recommendation, SLA performance and
// tracking.
type ShippingHandler struct {
	shippingService *svshipping.ShippingService
	shipmentService *svshipment.ShipmentService
}

func NewShippingHandler(shippingService *svshipping.ShippingService, shipmentService *svshipment.ShipmentService) *ShippingHandler {
	return &ShippingHandler{
		shippingService: shippingService,
		shipmentService: shipmentService,
	}
}
