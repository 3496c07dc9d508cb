package usecase

import (
	"context"

	"mealplanner/internal/domain/entity"

	"github.com/google/uuid"
)

// SnackInput creates a snack log.
type SnackInput struct {
	Date     string // YYYY-MM-DD
	ItemName string
	Place    *string
	Amount   float64
	Note     *string
}

// UpdateSnackInput changes a snack log; nil fields are kept.
type UpdateSnackInput struct {
	Date     *string
	ItemName *string
	Place    *string
	Amount   *float64
	Note     *string
}

// SnackQuery optionally bounds listings by date.
type SnackQuery struct {
	StartDate string
	EndDate   string
}

// SnackUsecase manages flat snack log records.
type SnackUsecase interface {
	CreateSnack(ctx context.Context, ownerID uuid.UUID, input *SnackInput) (*entity.SnackLog, error)
	UpdateSnack(ctx context.Context, ownerID, snackID uuid.UUID, input *UpdateSnackInput) (*entity.SnackLog, error)
	GetSnacks(ctx context.Context, ownerID uuid.UUID, query *SnackQuery) ([]*entity.SnackLog, error)
	GetSnack(ctx context.Context, ownerID, snackID uuid.UUID) (*entity.SnackLog, error)
	DeleteSnack(ctx context.Context, ownerID, snackID uuid.UUID) error
}
