package repository

import (
	"context"
	"time"

	"mealplanner/internal/domain/entity"
	"mealplanner/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for meal plan persistence.
var (
	ErrMealPlanNotFound = errors.New("meal plan not found")
	ErrSessionNotFound  = errors.New("meal session not found")
)

// MealPlanRepository persists the MealPlan → Session → Menu aggregate.
// Reads of a single plan always return the full tree.
type MealPlanRepository interface {
	// CreateMealPlan inserts the root row only.
	CreateMealPlan(ctx context.Context, plan *entity.MealPlan) error

	// UpdateMealPlan writes the scalar fields of the root.
	UpdateMealPlan(ctx context.Context, plan *entity.MealPlan) error

	// FindMealPlanByID loads a plan with its sessions and menus.
	FindMealPlanByID(ctx context.Context, id uuid.UUID) (*entity.MealPlan, error)

	// FindMealPlansByOwner loads every plan of ownerID with children, newest date first.
	FindMealPlansByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.MealPlan, error)

	// FindMealPlansByOwnerAndDateRange loads plans whose date is within [start, end].
	FindMealPlansByOwnerAndDateRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time) ([]*entity.MealPlan, error)

	// DeleteMealPlan removes the plan together with all sessions and menus.
	DeleteMealPlan(ctx context.Context, id uuid.UUID) error

	// CreateSessions inserts sessions and bulk-inserts the menus attached to each.
	CreateSessions(ctx context.Context, sessions []*entity.Session) error

	// DeleteSessionsByMealPlanID removes every session of a plan and their menus.
	DeleteSessionsByMealPlanID(ctx context.Context, mealPlanID uuid.UUID) error

	// FindSessionByID loads a session without its menus.
	FindSessionByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// CountSessions returns how many sessions a plan has.
	CountSessions(ctx context.Context, mealPlanID uuid.UUID) (int, error)

	// CreateMenus bulk-inserts menus.
	CreateMenus(ctx context.Context, menus []*entity.Menu) error

	// CountMenus returns how many menus a session has.
	CountMenus(ctx context.Context, sessionID uuid.UUID) (int, error)
}
