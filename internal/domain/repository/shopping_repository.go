package repository

import (
	"context"

	"mealplanner/internal/domain/entity"
	"mealplanner/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for shopping persistence.
var (
	ErrShoppingLogNotFound    = errors.New("shopping log not found")
	ErrShoppingDetailNotFound = errors.New("shopping detail not found")
)

// ShoppingRepository persists the ShoppingLog → ShoppingDetail aggregate.
type ShoppingRepository interface {
	// CreateShoppingLog inserts the root row only.
	CreateShoppingLog(ctx context.Context, log *entity.ShoppingLog) error

	// UpdateShoppingLog writes scalar fields of the root and never touches details.
	UpdateShoppingLog(ctx context.Context, log *entity.ShoppingLog) error

	// UpdateShoppingLogTotal overwrites only the cached total.
	UpdateShoppingLogTotal(ctx context.Context, id uuid.UUID, total float64) error

	// FindShoppingLogByID loads a log with its details.
	FindShoppingLogByID(ctx context.Context, id uuid.UUID) (*entity.ShoppingLog, error)

	// FindShoppingLogsByOwner loads every log of ownerID with details, newest date first.
	FindShoppingLogsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.ShoppingLog, error)

	// DeleteShoppingLog removes the log and all of its details.
	DeleteShoppingLog(ctx context.Context, id uuid.UUID) error

	// CreateShoppingDetails bulk-inserts details.
	CreateShoppingDetails(ctx context.Context, details []*entity.ShoppingDetail) error

	// FindShoppingDetailsByLogID lists details in insertion order.
	FindShoppingDetailsByLogID(ctx context.Context, logID uuid.UUID) ([]*entity.ShoppingDetail, error)

	// FindShoppingDetailByID loads one detail.
	FindShoppingDetailByID(ctx context.Context, id uuid.UUID) (*entity.ShoppingDetail, error)

	// UpdateShoppingDetail writes one detail row.
	UpdateShoppingDetail(ctx context.Context, detail *entity.ShoppingDetail) error

	// DeleteShoppingDetail removes one detail row.
	DeleteShoppingDetail(ctx context.Context, id uuid.UUID) error
}
