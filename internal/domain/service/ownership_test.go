package service_test

import (
	"testing"

	"mealplanner/internal/domain/entity"
	domainerrors "mealplanner/internal/domain/errors"
	"mealplanner/internal/domain/service"
	"mealplanner/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAssertOwned(t *testing.T) {
	ownerID := uuid.New()

	var nilPlan *entity.MealPlan
	var nilLog *entity.ShoppingLog
	var nilSnack *entity.SnackLog

	tests := []struct {
		name      string
		root      service.Owned
		callerID  uuid.UUID
		wantError bool
	}{
		{name: "owner", root: &entity.MealPlan{OwnerID: ownerID}, callerID: ownerID},
		{name: "foreign meal plan", root: &entity.MealPlan{OwnerID: uuid.New()}, callerID: ownerID, wantError: true},
		{name: "foreign shopping log", root: &entity.ShoppingLog{OwnerID: uuid.New()}, callerID: ownerID, wantError: true},
		{name: "nil interface", root: nil, callerID: ownerID, wantError: true},
		{name: "typed nil meal plan", root: nilPlan, callerID: ownerID, wantError: true},
		{name: "typed nil shopping log", root: nilLog, callerID: ownerID, wantError: true},
		{name: "typed nil snack", root: nilSnack, callerID: ownerID, wantError: true},
		{name: "unowned root with nil caller", root: &entity.SnackLog{}, callerID: uuid.Nil, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			assert.NotPanics(t, func() { err = service.AssertOwned(tt.root, tt.callerID) })

			if tt.wantError {
				assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
