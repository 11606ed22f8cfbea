package entity

import (
	"time"

	"gorm.io/datatypes"
)

// PurchaseRequest is the MySQL row for a centralized purchasing request.
type PurchaseRequest struct {
	ID          string `gorm:"column:id;primaryKey;type:varchar(64)"`
	Requester   string `gorm:"column:requester;type:varchar(128);not null"`
	Department  string `gorm:"column:department;type:varchar(128);index:idx_department"`
	Supplier    string `gorm:"column:supplier;type:varchar(255);not null;index:idx_supplier"`
	Description string `gorm:"column:description;type:varchar(512)"`
	TotalAmount float64 `gorm:"column:total_amount;not null"`
	Urgency     string `gorm:"column:urgency;type:varchar(16);not null;default:'standard'"`

	DiversityCategory     string `gorm:"column:diversity_category;type:varchar(32)"`
	ApprovalLevel         string `gorm:"column:approval_level;type:varchar(16);not null"`
	Status                string `gorm:"column:status;type:varchar(32);not null;default:'PENDING_OPTIMIZATION';index:idx_status"`
	ConsolidationEligible bool   `gorm:"column:consolidation_eligible;not null;default:false"`

	Optimization datatypes.JSON `gorm:"column:optimization;type:json"`
	Approval     datatypes.JSON `gorm:"column:approval;type:json"`

	CreatedAt time.Time `gorm:"column:created_at;not null;index:idx_created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName pins the table name.
func (PurchaseRequest) TableName() string {
	return "purchase_requests"
}
