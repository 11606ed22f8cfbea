package request

// QuoteRequest prices a shipment.
type QuoteRequest struct {
	PickupLocation  string       `json:"pickup_location" binding:"required" example:"Cal Poly Campus, San Luis Obispo, CA"`
	DropoffLocation string       `json:"dropoff_location" binding:"required" example:"1 Grand Ave, San Luis Obispo, CA"`
	Items           []*QuoteItem `json:"items" binding:"required,min=1,dive"`
	Insurance       string       `json:"insurance" binding:"omitempty,oneof=basic standard premium custom" example:"standard"`
}

// QuoteItem is one line in a quote request.
type QuoteItem struct {
	Description string  `json:"description" binding:"required" example:"Lab equipment"`
	Weight      float64 `json:"weight" binding:"required,gt=0" example:"12.5"`
	Quantity    int     `json:"quantity" binding:"omitempty,gt=0" example:"2"`
}

// RecommendRequest asks for a ranked carrier recommendation.
type RecommendRequest struct {
	OrderValue     float64 `json:"order_value" binding:"required,gt=0" example:"5000"`
	WeightCategory string  `json:"weight_category" binding:"omitempty,oneof=light medium heavy" example:"medium"`
	Urgency        string  `json:"urgency" binding:"omitempty,oneof=standard expedited overnight" example:"standard"`
}

// TrackRequest looks up a shipment's event history.
type TrackRequest struct {
	TrackingNumber string `json:"tracking_number" binding:"required" example:"0000001712345001"`
}

// PaymentRequest books a shipment against a priced quote.
type PaymentRequest struct {
	Method         string        `json:"method" binding:"required,oneof=credit-card purchase-card invoice" example:"credit-card"`
	CardNumber     string        `json:"card_number" example:"4111111111111111"`
	CardExpiration string        `json:"card_expiration" example:"12/27"`
	Carrier        string        `json:"carrier" example:"UPS"`
	Quote          *QuoteRequest `json:"quote" binding:"required"`
}
