package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SnackLogModel mirrors the 'snack_logs' table.
type SnackLogModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID      `gorm:"type:uuid;not null;index:idx_snack_logs_owner_date"`
	Date      datatypes.Date `gorm:"not null;index:idx_snack_logs_owner_date"`
	ItemName  string         `gorm:"type:varchar(200);not null"`
	Place     *string        `gorm:"type:varchar(200)"`
	Amount    float64        `gorm:"type:numeric(12,2);not null"`
	Note      *string        `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SnackLogModel) TableName() string {
	return "snack_logs"
}
