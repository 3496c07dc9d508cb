// Package demo holds sample data shown when neither the API nor the cache has anything.
package demo

import (
	"time"

	"mealplanner/internal/delivery/api/dto"

	"github.com/google/uuid"
)

var (
	demoOwner = uuid.MustParse("00000000-0000-4000-8000-000000000001")
	seededAt  = time.Date(2026, time.March, 2, 7, 0, 0, 0, time.UTC)
)

func strPtr(s string) *string { return &s }

func MealPlans() []dto.MealPlanResponse {
	planID := uuid.MustParse("00000000-0000-4000-8000-000000000101")
	breakfastID := uuid.MustParse("00000000-0000-4000-8000-000000000111")
	dinnerID := uuid.MustParse("00000000-0000-4000-8000-000000000112")

	return []dto.MealPlanResponse{
		{
			ID:      planID,
			OwnerID: demoOwner,
			Date:    "2026-03-02",
			Weekday: "Monday",
			Sessions: []dto.SessionResponse{
				{
					ID:         breakfastID,
					MealPlanID: planID,
					Mealtime:   "Breakfast",
					Menus: []dto.MenuResponse{
						{ID: uuid.MustParse("00000000-0000-4000-8000-000000000121"), SessionID: breakfastID, Name: "Nasi uduk"},
						{ID: uuid.MustParse("00000000-0000-4000-8000-000000000122"), SessionID: breakfastID, Name: "Teh manis", Position: 1},
					},
				},
				{
					ID:         dinnerID,
					MealPlanID: planID,
					Mealtime:   "Dinner",
					Position:   1,
					Menus: []dto.MenuResponse{
						{ID: uuid.MustParse("00000000-0000-4000-8000-000000000123"), SessionID: dinnerID, Name: "Sayur asem", Note: strPtr("less salt")},
					},
				},
			},
			CreatedAt: seededAt,
			UpdatedAt: seededAt,
		},
	}
}

func ShoppingLogs() []dto.ShoppingLogResponse {
	logID := uuid.MustParse("00000000-0000-4000-8000-000000000201")

	return []dto.ShoppingLogResponse{
		{
			ID:          logID,
			OwnerID:     demoOwner,
			Topic:       "Weekly groceries",
			StoreName:   "Pasar Minggu",
			Date:        "2026-03-01",
			Status:      "Planned",
			TotalAmount: 5.5,
			Details: []dto.ShoppingDetailResponse{
				{ID: uuid.MustParse("00000000-0000-4000-8000-000000000211"), ShoppingLogID: logID, ItemName: "Rice", Quantity: 2, Unit: "kg", UnitCost: 1.5, LineCost: 3},
				{ID: uuid.MustParse("00000000-0000-4000-8000-000000000212"), ShoppingLogID: logID, ItemName: "Tempeh", Quantity: 5, Unit: "pcs", UnitCost: 0.5, LineCost: 2.5, IsChecked: true},
			},
			CreatedAt: seededAt,
			UpdatedAt: seededAt,
		},
	}
}

func Snacks() []dto.SnackResponse {
	return []dto.SnackResponse{
		{
			ID:        uuid.MustParse("00000000-0000-4000-8000-000000000301"),
			OwnerID:   demoOwner,
			Date:      "2026-03-02",
			ItemName:  "Martabak manis",
			Place:     strPtr("Night market"),
			Amount:    3.25,
			CreatedAt: seededAt,
			UpdatedAt: seededAt,
		},
	}
}
