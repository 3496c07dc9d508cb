package entity

import (
	"time"

	"github.com/google/uuid"
)

// SnackLog is a flat expense record for snacks bought outside planned shopping.
type SnackLog struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Date      time.Time
	ItemName  string
	Place     *string
	Amount    float64
	Note      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetOwnerID implements Owned. A nil receiver has no owner.
func (s *SnackLog) GetOwnerID() uuid.UUID {
	if s == nil {
		return uuid.Nil
	}

	return s.OwnerID
}
