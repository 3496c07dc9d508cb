package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ShoppingLogModel mirrors the 'shopping_logs' table.
type ShoppingLogModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Topic       string         `gorm:"type:varchar(200);not null"`
	StoreName   string         `gorm:"type:varchar(200)"`
	Date        datatypes.Date `gorm:"not null"`
	Status      string         `gorm:"type:varchar(16);not null"`
	ReceiptRef  *string        `gorm:"type:varchar(255)"`
	TotalAmount float64        `gorm:"type:numeric(12,2);not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Details []*ShoppingDetailModel `gorm:"foreignKey:ShoppingLogID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ShoppingLogModel) TableName() string {
	return "shopping_logs"
}

// ShoppingDetailModel mirrors the 'shopping_details' table.
type ShoppingDetailModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShoppingLogID uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemName      string    `gorm:"type:varchar(200);not null"`
	Quantity      float64   `gorm:"type:numeric(12,3);not null"`
	Unit          string    `gorm:"type:varchar(32)"`
	UnitCost      float64   `gorm:"type:numeric(12,2);not null"`
	IsChecked     bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShoppingDetailModel) TableName() string {
	return "shopping_details"
}
