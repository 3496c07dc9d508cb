package usecase

import (
	"context"

	"mealplanner/internal/domain/entity"

	"github.com/google/uuid"
)

// ShoppingDetailInput is one line of a shopping payload.
type ShoppingDetailInput struct {
	ItemName  string
	Quantity  float64
	Unit      string
	UnitCost  float64
	IsChecked bool
}

// CreateShoppingLogInput creates a log with optional initial details.
type CreateShoppingLogInput struct {
	Topic       string
	StoreName   string
	Date        string // YYYY-MM-DD
	Status      string // defaults to Planned
	ReceiptRef  *string
	TotalAmount *float64 // only honoured when Details is empty
	Details     []ShoppingDetailInput
}

// UpdateShoppingLogInput changes scalar fields only; nil fields are kept.
type UpdateShoppingLogInput struct {
	Topic       *string
	StoreName   *string
	Date        *string
	Status      *string
	ReceiptRef  *string
	TotalAmount *float64 // ignored when the log has details
}

// UpdateShoppingDetailInput changes one detail; nil fields are kept.
type UpdateShoppingDetailInput struct {
	ItemName  *string
	Quantity  *float64
	Unit      *string
	UnitCost  *float64
	IsChecked *bool
}

// ReceiptInput is an uploaded receipt image.
type ReceiptInput struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Receipt is a stored receipt image.
type Receipt struct {
	ContentType string
	Data        []byte
}

// ShoppingUsecase manages the ShoppingLog → ShoppingDetail aggregate.
// Log updates never touch details; details are edited one by one.
type ShoppingUsecase interface {
	CreateShoppingLog(ctx context.Context, ownerID uuid.UUID, input *CreateShoppingLogInput) (*entity.ShoppingLog, error)
	UpdateShoppingLog(ctx context.Context, ownerID, logID uuid.UUID, input *UpdateShoppingLogInput) (*entity.ShoppingLog, error)
	GetShoppingLogs(ctx context.Context, ownerID uuid.UUID) ([]*entity.ShoppingLog, error)
	GetShoppingLog(ctx context.Context, ownerID, logID uuid.UUID) (*entity.ShoppingLog, error)
	DeleteShoppingLog(ctx context.Context, ownerID, logID uuid.UUID) error

	CreateShoppingDetails(ctx context.Context, ownerID, logID uuid.UUID, items []ShoppingDetailInput) ([]*entity.ShoppingDetail, error)
	GetShoppingDetails(ctx context.Context, ownerID, logID uuid.UUID) ([]*entity.ShoppingDetail, error)
	UpdateShoppingDetail(ctx context.Context, ownerID, detailID uuid.UUID, input *UpdateShoppingDetailInput) (*entity.ShoppingDetail, error)
	DeleteShoppingDetail(ctx context.Context, ownerID, detailID uuid.UUID) error

	// RecomputeTotal rewrites the cached total from the details.
	RecomputeTotal(ctx context.Context, ownerID, logID uuid.UUID) (*entity.ShoppingLog, error)
	// ReconcileTotal recomputes a log's total without an ownership check; used by the ledger worker.
	ReconcileTotal(ctx context.Context, logID uuid.UUID) (changed bool, err error)

	AttachReceipt(ctx context.Context, ownerID, logID uuid.UUID, input *ReceiptInput) (*entity.ShoppingLog, error)
	GetReceipt(ctx context.Context, ownerID, logID uuid.UUID) (*Receipt, error)
}
