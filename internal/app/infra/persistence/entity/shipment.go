package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Shipment is the MySQL row for a booked shipment.
type Shipment struct {
	TrackingNumber string `gorm:"column:tracking_number;primaryKey;type:varchar(32)"`
	OrderID        string `gorm:"column:order_id;type:varchar(32);not null;index:idx_order_id"`
	Carrier        string `gorm:"column:carrier;type:varchar(32);not null"`
	Status         string `gorm:"column:status;type:varchar(16);not null;default:'CREATED'"`

	Quote  datatypes.JSON `gorm:"column:quote;type:json"`
	Events datatypes.JSON `gorm:"column:events;type:json"`

	EstimatedDelivery time.Time `gorm:"column:estimated_delivery"`
	CreatedAt         time.Time `gorm:"column:created_at;not null;index:idx_created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at;not null"`
}

// TableName pins the table name.
func (Shipment) TableName() string {
	return "shipments"
}
