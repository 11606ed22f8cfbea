package rpshipment

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/entity/etshipment"
	"github.com/isaiahriv1234/Freight-Project/internal/app/infra/persistence/entity"
	"github.com/isaiahriv1234/Freight-Project/internal/app/pkg/errorx"
)

// ShipmentRepositoryImpl is the MySQL implementation.
type ShipmentRepositoryImpl struct {
	db *gorm.DB
}

// NewShipmentRepository creates the repository.
func NewShipmentRepository(db *gorm.DB) ShipmentRepository {
	return &ShipmentRepositoryImpl{db: db}
}

func (r *ShipmentRepositoryImpl) Create(ctx context.Context, shipment *etshipment.Shipment) error {
	po, err := r.toGormModel(shipment)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(po).Error
}

func (r *ShipmentRepositoryImpl) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*etshipment.Shipment, error) {
	var po entity.Shipment
	err := r.db.WithContext(ctx).Where("tracking_number = ?", trackingNumber).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.ErrShipmentNotFound
		}
		return nil, err
	}
	return r.toDomainModel(&po)
}

func (r *ShipmentRepositoryImpl) toGormModel(s *etshipment.Shipment) (*entity.Shipment, error) {
	po := &entity.Shipment{
		TrackingNumber:    s.TrackingNumber,
		OrderID:           s.OrderID,
		Carrier:           s.Carrier,
		Status:            string(s.Status),
		EstimatedDelivery: s.EstimatedDelivery,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}

	if s.Quote != nil {
		b, err := json.Marshal(s.Quote)
		if err != nil {
			return nil, err
		}
		po.Quote = b
	}
	if len(s.Events) > 0 {
		b, err := json.Marshal(s.Events)
		if err != nil {
			return nil, err
		}
		po.Events = b
	}

	return po, nil
}

func (r *ShipmentRepositoryImpl) toDomainModel(po *entity.Shipment) (*etshipment.Shipment, error) {
	s := &etshipment.Shipment{
		TrackingNumber:    po.TrackingNumber,
		OrderID:           po.OrderID,
		Carrier:           po.Carrier,
		Status:            etshipment.ShipmentStatus(po.Status),
		EstimatedDelivery: po.EstimatedDelivery,
		CreatedAt:         po.CreatedAt,
		UpdatedAt:         po.UpdatedAt,
	}

	if len(po.Quote) > 0 {
		var quote etshipment.Quote
		if err := json.Unmarshal(po.Quote, &quote); err != nil {
			return nil, err
		}
		s.Quote = &quote
	}
	if len(po.Events) > 0 {
		if err := json.Unmarshal(po.Events, &s.Events); err != nil {
			return nil, err
		}
	}

	return s, nil
}
