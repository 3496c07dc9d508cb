package repository

import (
	"context"
	"time"

	"mealplanner/internal/domain/entity"
	"mealplanner/internal/errors"

	"github.com/google/uuid"
)

// ErrSnackLogNotFound is returned when a snack log is not found.
var ErrSnackLogNotFound = errors.New("snack log not found")

// SnackFilter narrows snack log listings. Nil bounds are open.
type SnackFilter struct {
	From *time.Time
	To   *time.Time
}

// SnackRepository persists flat snack log records.
type SnackRepository interface {
	Create(ctx context.Context, snack *entity.SnackLog) error
	Update(ctx context.Context, snack *entity.SnackLog) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SnackLog, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID, filter SnackFilter) ([]*entity.SnackLog, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
