package etshipment

import (
	"errors"
	"time"
)

var (
	ErrInvalidTrackingNumber = errors.New("tracking number cannot be empty")
	ErrInvalidCarrier        = errors.New("carrier cannot be empty")
)

// ShipmentStatus is the delivery state of a booked shipment.
type ShipmentStatus string

const (
	StatusCreated   ShipmentStatus = "CREATED"
	StatusPickedUp  ShipmentStatus = "PICKED_UP"
	StatusInTransit ShipmentStatus = "IN_TRANSIT"
	StatusDelivered ShipmentStatus = "DELIVERED"
)

// Shipment is a booked shipment created by a successful payment.
type Shipment struct {
	TrackingNumber    string
	OrderID           string
	Carrier           string
	Status            ShipmentStatus
	Quote             *Quote
	Events            []*TrackingEvent
	EstimatedDelivery time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Quote is the priced shipping quote attached to a shipment.
type Quote struct {
	PickupLocation    string            `json:"pickup_location"`
	DropoffLocation   string            `json:"dropoff_location"`
	Items             []QuoteItem       `json:"items"`
	Insurance         string            `json:"insurance"`
	TotalWeight       float64           `json:"total_weight"`
	TotalItems        int               `json:"total_items"`
	EstimatedCost     float64           `json:"estimated_cost"`
	CarrierOptions    []string          `json:"carrier_options"`
	DeliveryEstimates map[string]string `json:"delivery_estimates"`
}

// QuoteItem is one line in a quote.
type QuoteItem struct {
	Description string  `json:"description"`
	Weight      float64 `json:"weight"`
	Quantity    int     `json:"quantity"`
}

// TrackingEvent is one scan in a shipment's history, newest first.
type TrackingEvent struct {
	Type      string    `json:"type"` // pending / pickup / in_transit / delivered
	Title     string    `json:"title"`
	Location  string    `json:"location"`
	Timestamp time.Time `json:"timestamp"`
}

// NewShipment creates a shipment with its initial event trail.
func NewShipment(trackingNumber, orderID, carrier string, quote *Quote) (*Shipment, error) {
	if trackingNumber == "" {
		return nil, ErrInvalidTrackingNumber
	}
	if carrier == "" {
		return nil, ErrInvalidCarrier
	}

	now := time.Now()
	return &Shipment{
		TrackingNumber:    trackingNumber,
		OrderID:           orderID,
		Carrier:           carrier,
		Status:            StatusCreated,
		Quote:             quote,
		EstimatedDelivery: now.AddDate(0, 0, 3),
		Events: []*TrackingEvent{
			{
				Type:      "pending",
				Title:     "Shipment created",
				Location:  "Cal Poly Campus",
				Timestamp: now,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
