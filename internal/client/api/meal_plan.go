package api

import (
	"context"
	"net/http"
	"net/url"

	"mealplanner/internal/client/transport"
	"mealplanner/internal/delivery/api/dto"

	"github.com/google/uuid"
)

// MealPlanAPI calls /mealplan.
type MealPlanAPI struct {
	client *transport.Client
}

func NewMealPlanAPI(client *transport.Client) *MealPlanAPI {
	return &MealPlanAPI{client: client}
}

func (a *MealPlanAPI) List(ctx context.Context) ([]dto.MealPlanResponse, error) {
	var out []dto.MealPlanResponse
	if err := a.client.Do(ctx, http.MethodGet, "/mealplan", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (a *MealPlanAPI) Get(ctx context.Context, id uuid.UUID) (*dto.MealPlanResponse, error) {
	var out dto.MealPlanResponse
	if err := a.client.Do(ctx, http.MethodGet, "/mealplan/"+id.String(), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *MealPlanAPI) Create(ctx context.Context, req *dto.MealPlanRequest) (*dto.MealPlanResponse, error) {
	var out dto.MealPlanResponse
	if err := a.client.Do(ctx, http.MethodPost, "/mealplan", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *MealPlanAPI) Update(ctx context.Context, id uuid.UUID, req *dto.MealPlanRequest) (*dto.MealPlanResponse, error) {
	var out dto.MealPlanResponse
	if err := a.client.Do(ctx, http.MethodPut, "/mealplan/"+id.String(), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *MealPlanAPI) Delete(ctx context.Context, id uuid.UUID) error {
	return a.client.Do(ctx, http.MethodDelete, "/mealplan/"+id.String(), nil, nil)
}

func (a *MealPlanAPI) ByDate(ctx context.Context, date string) ([]dto.MealPlanResponse, error) {
	var out []dto.MealPlanResponse
	if err := a.client.Do(ctx, http.MethodGet, "/mealplan/date/"+url.PathEscape(date), nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (a *MealPlanAPI) ByRange(ctx context.Context, startDate, endDate string) ([]dto.MealPlanResponse, error) {
	query := url.Values{"startDate": {startDate}, "endDate": {endDate}}

	var out []dto.MealPlanResponse
	if err := a.client.Do(ctx, http.MethodGet, "/mealplan/range?"+query.Encode(), nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (a *MealPlanAPI) AddSession(ctx context.Context, planID uuid.UUID, req *dto.SessionRequest) (*dto.SessionResponse, error) {
	var out dto.SessionResponse
	if err := a.client.Do(ctx, http.MethodPost, "/mealplan/"+planID.String()+"/sessions", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *MealPlanAPI) AddMenu(ctx context.Context, sessionID uuid.UUID, req *dto.MenuRequest) (*dto.MenuResponse, error) {
	var out dto.MenuResponse
	if err := a.client.Do(ctx, http.MethodPost, "/mealplan/sessions/"+sessionID.String()+"/menus", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
