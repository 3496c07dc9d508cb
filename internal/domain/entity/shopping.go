package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// ShoppingStatus is the two-state lifecycle of a shopping log.
type ShoppingStatus string

const (
	ShoppingStatusPlanned ShoppingStatus = "Planned"
	ShoppingStatusDone    ShoppingStatus = "Done"
)

// Valid reports whether s is a known status.
func (s ShoppingStatus) Valid() bool {
	return s == ShoppingStatusPlanned || s == ShoppingStatusDone
}

// ShoppingLog is the root of the ShoppingLog → ShoppingDetail aggregate.
// TotalAmount is a cache over the details and may be recomputed at any time.
type ShoppingLog struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Topic       string
	StoreName   string
	Date        time.Time
	Status      ShoppingStatus
	ReceiptRef  *string
	TotalAmount float64
	Details     []*ShoppingDetail
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ShoppingDetail is one line of a shopping log. Unlike meal plan children,
// details are edited individually and never replaced wholesale.
type ShoppingDetail struct {
	ID            uuid.UUID
	ShoppingLogID uuid.UUID
	ItemName      string
	Quantity      float64
	Unit          string
	UnitCost      float64
	IsChecked     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// GetOwnerID implements Owned. A nil receiver has no owner.
func (l *ShoppingLog) GetOwnerID() uuid.UUID {
	if l == nil {
		return uuid.Nil
	}

	return l.OwnerID
}

// LineCost is quantity times unit cost.
func (d *ShoppingDetail) LineCost() float64 {
	return d.Quantity * d.UnitCost
}

// SumLineCosts totals the line costs of details, rounded to cents.
func SumLineCosts(details []*ShoppingDetail) float64 {
	var total float64
	for _, d := range details {
		total += d.LineCost()
	}

	return RoundAmount(total)
}

// RoundAmount rounds a money amount to two decimals.
func RoundAmount(v float64) float64 {
	return math.Round(v*100) / 100
}
