package payment

import (
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/services/svshipment"
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/services/svshipping"
)

// PaymentHandler books shipments at checkout.
type PaymentHandler struct {
	shipmentService *svshipment.ShipmentService
	shippingService *svshipping.ShippingService
}

func NewPaymentHandler(shipmentService *svshipment.ShipmentService, shippingService *svshipping.ShippingService) *PaymentHandler {
	return &PaymentHandler{
		shipmentService: shipmentService,
		shippingService: shippingService,
	}
}
