package usecase

import (
	"context"

	"mealplanner/internal/domain/entity"

	"github.com/google/uuid"
)

// MenuInput is one dish of a session payload.
type MenuInput struct {
	Name string
	Note *string
}

// SessionInput is one mealtime of a plan payload.
type SessionInput struct {
	Mealtime string
	Menus    []MenuInput
}

// MealPlanInput is the full payload of a create or replace-update.
type MealPlanInput struct {
	Date     string // YYYY-MM-DD
	Weekday  string
	Sessions []SessionInput
}

// DateRangeInput bounds a range query, both ends inclusive.
type DateRangeInput struct {
	StartDate string
	EndDate   string
}

// MealPlanUsecase manages the MealPlan → Session → Menu aggregate.
//
// UpdateMealPlan replaces the whole session/menu subtree with the payload:
// every existing session and menu is deleted and recreated, so child IDs
// change on every update and callers must not hold on to them.
type MealPlanUsecase interface {
	CreateMealPlan(ctx context.Context, ownerID uuid.UUID, input *MealPlanInput) (*entity.MealPlan, error)
	UpdateMealPlan(ctx context.Context, ownerID, mealPlanID uuid.UUID, input *MealPlanInput) (*entity.MealPlan, error)
	AddSession(ctx context.Context, ownerID, mealPlanID uuid.UUID, input *SessionInput) (*entity.Session, error)
	AddMenuToSession(ctx context.Context, ownerID, sessionID uuid.UUID, input *MenuInput) (*entity.Menu, error)
	GetMealPlans(ctx context.Context, ownerID uuid.UUID) ([]*entity.MealPlan, error)
	GetMealPlan(ctx context.Context, ownerID, mealPlanID uuid.UUID) (*entity.MealPlan, error)
	GetMealPlansByDate(ctx context.Context, ownerID uuid.UUID, date string) ([]*entity.MealPlan, error)
	GetMealPlansByRange(ctx context.Context, ownerID uuid.UUID, input *DateRangeInput) ([]*entity.MealPlan, error)
	DeleteMealPlan(ctx context.Context, ownerID, mealPlanID uuid.UUID) error
}
