package dto

import (
	"time"

	"mealplanner/internal/domain/entity"
	"mealplanner/internal/usecase"

	"github.com/google/uuid"
)

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse is returned by register, login and refresh.
type AuthResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	User         *UserResponse `json:"user,omitempty"`
}

type MenuResponse struct {
	ID        uuid.UUID `json:"id"`
	SessionID uuid.UUID `json:"sessionId"`
	Name      string    `json:"name"`
	Note      *string   `json:"note,omitempty"`
	Position  int       `json:"position"`
}

type SessionResponse struct {
	ID         uuid.UUID      `json:"id"`
	MealPlanID uuid.UUID      `json:"mealPlanId"`
	Mealtime   string         `json:"mealtime"`
	Position   int            `json:"position"`
	Menus      []MenuResponse `json:"menus"`
}

type MealPlanResponse struct {
	ID        uuid.UUID         `json:"id"`
	OwnerID   uuid.UUID         `json:"ownerId"`
	Date      string            `json:"date"`
	Weekday   string            `json:"weekday"`
	Sessions  []SessionResponse `json:"sessions"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

type ShoppingDetailResponse struct {
	ID            uuid.UUID `json:"id"`
	ShoppingLogID uuid.UUID `json:"shoppingLogId"`
	ItemName      string    `json:"itemName"`
	Quantity      float64   `json:"quantity"`
	Unit          string    `json:"unit"`
	UnitCost      float64   `json:"unitCost"`
	LineCost      float64   `json:"lineCost"`
	IsChecked     bool      `json:"isChecked"`
}

type ShoppingLogResponse struct {
	ID          uuid.UUID                `json:"id"`
	OwnerID     uuid.UUID                `json:"ownerId"`
	Topic       string                   `json:"topic"`
	StoreName   string                   `json:"storeName"`
	Date        string                   `json:"date"`
	Status      string                   `json:"status"`
	ReceiptRef  *string                  `json:"receiptRef,omitempty"`
	TotalAmount float64                  `json:"totalAmount"`
	Details     []ShoppingDetailResponse `json:"details"`
	CreatedAt   time.Time                `json:"createdAt"`
	UpdatedAt   time.Time                `json:"updatedAt"`
}

type SnackResponse struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"ownerId"`
	Date      string    `json:"date"`
	ItemName  string    `json:"itemName"`
	Place     *string   `json:"place,omitempty"`
	Amount    float64   `json:"amount"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}

	return &UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}

func NewAuthResponse(out *usecase.AuthOutput) *AuthResponse {
	return &AuthResponse{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		User:         NewUserResponse(out.User),
	}
}

func NewMenuResponse(m *entity.Menu) MenuResponse {
	return MenuResponse{ID: m.ID, SessionID: m.SessionID, Name: m.Name, Note: m.Note, Position: m.Position}
}

func NewSessionResponse(s *entity.Session) SessionResponse {
	menus := make([]MenuResponse, 0, len(s.Menus))
	for _, m := range s.Menus {
		menus = append(menus, NewMenuResponse(m))
	}

	return SessionResponse{
		ID:         s.ID,
		MealPlanID: s.MealPlanID,
		Mealtime:   string(s.Mealtime),
		Position:   s.Position,
		Menus:      menus,
	}
}

func NewMealPlanResponse(p *entity.MealPlan) MealPlanResponse {
	sessions := make([]SessionResponse, 0, len(p.Sessions))
	for _, s := range p.Sessions {
		sessions = append(sessions, NewSessionResponse(s))
	}

	return MealPlanResponse{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Date:      p.Date.Format(entity.DateLayout),
		Weekday:   p.Weekday,
		Sessions:  sessions,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func NewMealPlanResponses(plans []*entity.MealPlan) []MealPlanResponse {
	out := make([]MealPlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, NewMealPlanResponse(p))
	}

	return out
}

func NewShoppingDetailResponse(d *entity.ShoppingDetail) ShoppingDetailResponse {
	return ShoppingDetailResponse{
		ID:            d.ID,
		ShoppingLogID: d.ShoppingLogID,
		ItemName:      d.ItemName,
		Quantity:      d.Quantity,
		Unit:          d.Unit,
		UnitCost:      d.UnitCost,
		LineCost:      entity.RoundAmount(d.LineCost()),
		IsChecked:     d.IsChecked,
	}
}

func NewShoppingDetailResponses(details []*entity.ShoppingDetail) []ShoppingDetailResponse {
	out := make([]ShoppingDetailResponse, 0, len(details))
	for _, d := range details {
		out = append(out, NewShoppingDetailResponse(d))
	}

	return out
}

func NewShoppingLogResponse(l *entity.ShoppingLog) ShoppingLogResponse {
	return ShoppingLogResponse{
		ID:          l.ID,
		OwnerID:     l.OwnerID,
		Topic:       l.Topic,
		StoreName:   l.StoreName,
		Date:        l.Date.Format(entity.DateLayout),
		Status:      string(l.Status),
		ReceiptRef:  l.ReceiptRef,
		TotalAmount: l.TotalAmount,
		Details:     NewShoppingDetailResponses(l.Details),
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func NewShoppingLogResponses(logs []*entity.ShoppingLog) []ShoppingLogResponse {
	out := make([]ShoppingLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, NewShoppingLogResponse(l))
	}

	return out
}

func NewSnackResponse(s *entity.SnackLog) SnackResponse {
	return SnackResponse{
		ID:        s.ID,
		OwnerID:   s.OwnerID,
		Date:      s.Date.Format(entity.DateLayout),
		ItemName:  s.ItemName,
		Place:     s.Place,
		Amount:    s.Amount,
		Note:      s.Note,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func NewSnackResponses(snacks []*entity.SnackLog) []SnackResponse {
	out := make([]SnackResponse, 0, len(snacks))
	for _, s := range snacks {
		out = append(out, NewSnackResponse(s))
	}

	return out
}
