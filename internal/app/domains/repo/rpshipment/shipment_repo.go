package rpshipment

import (
	"context"

	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/entity/etshipment"
)

// ShipmentRepository is the storage contract for booked shipments.
type ShipmentRepository interface {
	// Create persists a newly booked shipment.
	Create(ctx context.Context, shipment *etshipment.Shipment) error

	// GetByTrackingNumber returns a shipment or errorx.ErrShipmentNotFound.
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*etshipment.Shipment, error)
}
