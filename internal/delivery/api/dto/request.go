// Package dto holds the JSON payloads of the REST API. The server binds and
// validates them; the plannerctl client marshals the same types.
package dto

import "mealplanner/internal/usecase"

// RegisterRequest creates an account.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest authenticates with email and password.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest carries a refresh token for rotation or logout.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// MenuRequest is one dish.
type MenuRequest struct {
	Name string  `json:"name" validate:"required,max=200"`
	Note *string `json:"note,omitempty" validate:"omitempty,max=500"`
}

// SessionRequest is one mealtime with its dishes.
type SessionRequest struct {
	Mealtime string        `json:"mealtime" validate:"required,oneof=Breakfast Lunch Dinner Snack"`
	Menus    []MenuRequest `json:"menus" validate:"dive"`
}

// MealPlanRequest is the full body of a meal plan create or update.
type MealPlanRequest struct {
	Date     string           `json:"date" validate:"required,datetime=2006-01-02"`
	Weekday  string           `json:"weekday" validate:"required"`
	Sessions []SessionRequest `json:"sessions" validate:"dive"`
}

// ShoppingDetailRequest is one shopping line.
type ShoppingDetailRequest struct {
	ItemName  string  `json:"itemName" validate:"required,max=200"`
	Quantity  float64 `json:"quantity" validate:"gte=0"`
	Unit      string  `json:"unit" validate:"max=30"`
	UnitCost  float64 `json:"unitCost" validate:"gte=0"`
	IsChecked bool    `json:"isChecked"`
}

// CreateShoppingLogRequest creates a log with optional initial details.
type CreateShoppingLogRequest struct {
	Topic       string                  `json:"topic" validate:"required,max=200"`
	StoreName   string                  `json:"storeName" validate:"max=200"`
	Date        string                  `json:"date" validate:"required,datetime=2006-01-02"`
	Status      string                  `json:"status" validate:"omitempty,oneof=Planned Done"`
	TotalAmount *float64                `json:"totalAmount,omitempty" validate:"omitempty,gte=0"`
	Details     []ShoppingDetailRequest `json:"details" validate:"dive"`
}

// UpdateShoppingLogRequest patches the scalar fields of a log.
type UpdateShoppingLogRequest struct {
	Topic       *string  `json:"topic,omitempty" validate:"omitempty,max=200"`
	StoreName   *string  `json:"storeName,omitempty" validate:"omitempty,max=200"`
	Date        *string  `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status      *string  `json:"status,omitempty" validate:"omitempty,oneof=Planned Done"`
	TotalAmount *float64 `json:"totalAmount,omitempty" validate:"omitempty,gte=0"`
}

// CreateShoppingDetailsRequest appends details to a log.
type CreateShoppingDetailsRequest struct {
	Details []ShoppingDetailRequest `json:"details" validate:"required,min=1,dive"`
}

// UpdateShoppingDetailRequest patches one detail.
type UpdateShoppingDetailRequest struct {
	ItemName  *string  `json:"itemName,omitempty" validate:"omitempty,max=200"`
	Quantity  *float64 `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	Unit      *string  `json:"unit,omitempty" validate:"omitempty,max=30"`
	UnitCost  *float64 `json:"unitCost,omitempty" validate:"omitempty,gte=0"`
	IsChecked *bool    `json:"isChecked,omitempty"`
}

// SnackRequest creates a snack log.
type SnackRequest struct {
	Date     string  `json:"date" validate:"required,datetime=2006-01-02"`
	ItemName string  `json:"itemName" validate:"required,max=200"`
	Place    *string `json:"place,omitempty" validate:"omitempty,max=200"`
	Amount   float64 `json:"amount" validate:"gte=0"`
	Note     *string `json:"note,omitempty" validate:"omitempty,max=500"`
}

// UpdateSnackRequest patches a snack log.
type UpdateSnackRequest struct {
	Date     *string  `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ItemName *string  `json:"itemName,omitempty" validate:"omitempty,max=200"`
	Place    *string  `json:"place,omitempty" validate:"omitempty,max=200"`
	Amount   *float64 `json:"amount,omitempty" validate:"omitempty,gte=0"`
	Note     *string  `json:"note,omitempty" validate:"omitempty,max=500"`
}

func (r *MealPlanRequest) ToInput() *usecase.MealPlanInput {
	sessions := make([]usecase.SessionInput, 0, len(r.Sessions))
	for i := range r.Sessions {
		sessions = append(sessions, *r.Sessions[i].ToInput())
	}

	return &usecase.MealPlanInput{
		Date:     r.Date,
		Weekday:  r.Weekday,
		Sessions: sessions,
	}
}

func (r *SessionRequest) ToInput() *usecase.SessionInput {
	menus := make([]usecase.MenuInput, 0, len(r.Menus))
	for _, m := range r.Menus {
		menus = append(menus, *m.ToInput())
	}

	return &usecase.SessionInput{Mealtime: r.Mealtime, Menus: menus}
}

func (r *MenuRequest) ToInput() *usecase.MenuInput {
	return &usecase.MenuInput{Name: r.Name, Note: r.Note}
}

func (r *ShoppingDetailRequest) ToInput() usecase.ShoppingDetailInput {
	return usecase.ShoppingDetailInput{
		ItemName:  r.ItemName,
		Quantity:  r.Quantity,
		Unit:      r.Unit,
		UnitCost:  r.UnitCost,
		IsChecked: r.IsChecked,
	}
}

func detailInputs(details []ShoppingDetailRequest) []usecase.ShoppingDetailInput {
	inputs := make([]usecase.ShoppingDetailInput, 0, len(details))
	for i := range details {
		inputs = append(inputs, details[i].ToInput())
	}

	return inputs
}

func (r *CreateShoppingLogRequest) ToInput() *usecase.CreateShoppingLogInput {
	return &usecase.CreateShoppingLogInput{
		Topic:       r.Topic,
		StoreName:   r.StoreName,
		Date:        r.Date,
		Status:      r.Status,
		TotalAmount: r.TotalAmount,
		Details:     detailInputs(r.Details),
	}
}

func (r *UpdateShoppingLogRequest) ToInput() *usecase.UpdateShoppingLogInput {
	return &usecase.UpdateShoppingLogInput{
		Topic:       r.Topic,
		StoreName:   r.StoreName,
		Date:        r.Date,
		Status:      r.Status,
		TotalAmount: r.TotalAmount,
	}
}

func (r *CreateShoppingDetailsRequest) ToInput() []usecase.ShoppingDetailInput {
	return detailInputs(r.Details)
}

func (r *UpdateShoppingDetailRequest) ToInput() *usecase.UpdateShoppingDetailInput {
	return &usecase.UpdateShoppingDetailInput{
		ItemName:  r.ItemName,
		Quantity:  r.Quantity,
		Unit:      r.Unit,
		UnitCost:  r.UnitCost,
		IsChecked: r.IsChecked,
	}
}

func (r *SnackRequest) ToInput() *usecase.SnackInput {
	return &usecase.SnackInput{
		Date:     r.Date,
		ItemName: r.ItemName,
		Place:    r.Place,
		Amount:   r.Amount,
		Note:     r.Note,
	}
}

func (r *UpdateSnackRequest) ToInput() *usecase.UpdateSnackInput {
	return &usecase.UpdateSnackInput{
		Date:     r.Date,
		ItemName: r.ItemName,
		Place:    r.Place,
		Amount:   r.Amount,
		Note:     r.Note,
	}
}
