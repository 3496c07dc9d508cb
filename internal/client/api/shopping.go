package api

import (
	"context"
	"net/http"

	"mealplanner/internal/client/transport"
	"mealplanner/internal/delivery/api/dto"

	"github.com/google/uuid"
)

// ShoppingAPI calls /shopping.
type ShoppingAPI struct {
	client *transport.Client
}

func NewShoppingAPI(client *transport.Client) *ShoppingAPI {
	return &ShoppingAPI{client: client}
}

func (a *ShoppingAPI) List(ctx context.Context) ([]dto.ShoppingLogResponse, error) {
	var out []dto.ShoppingLogResponse
	if err := a.client.Do(ctx, http.MethodGet, "/shopping", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (a *ShoppingAPI) Get(ctx context.Context, id uuid.UUID) (*dto.ShoppingLogResponse, error) {
	var out dto.ShoppingLogResponse
	if err := a.client.Do(ctx, http.MethodGet, "/shopping/"+id.String(), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *ShoppingAPI) Create(ctx context.Context, req *dto.CreateShoppingLogRequest) (*dto.ShoppingLogResponse, error) {
	var out dto.ShoppingLogResponse
	if err := a.client.Do(ctx, http.MethodPost, "/shopping", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *ShoppingAPI) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateShoppingLogRequest) (*dto.ShoppingLogResponse, error) {
	var out dto.ShoppingLogResponse
	if err := a.client.Do(ctx, http.MethodPut, "/shopping/"+id.String(), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *ShoppingAPI) Delete(ctx context.Context, id uuid.UUID) error {
	return a.client.Do(ctx, http.MethodDelete, "/shopping/"+id.String(), nil, nil)
}

func (a *ShoppingAPI) Details(ctx context.Context, logID uuid.UUID) ([]dto.ShoppingDetailResponse, error) {
	var out []dto.ShoppingDetailResponse
	if err := a.client.Do(ctx, http.MethodGet, "/shopping/"+logID.String()+"/details", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (a *ShoppingAPI) AddDetails(ctx context.Context, logID uuid.UUID, req *dto.CreateShoppingDetailsRequest) ([]dto.ShoppingDetailResponse, error) {
	var out []dto.ShoppingDetailResponse
	if err := a.client.Do(ctx, http.MethodPost, "/shopping/"+logID.String()+"/details", req, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (a *ShoppingAPI) UpdateDetail(ctx context.Context, detailID uuid.UUID, req *dto.UpdateShoppingDetailRequest) (*dto.ShoppingDetailResponse, error) {
	var out dto.ShoppingDetailResponse
	if err := a.client.Do(ctx, http.MethodPut, "/shopping/details/"+detailID.String(), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *ShoppingAPI) DeleteDetail(ctx context.Context, detailID uuid.UUID) error {
	return a.client.Do(ctx, http.MethodDelete, "/shopping/details/"+detailID.String(), nil, nil)
}

func (a *ShoppingAPI) Recompute(ctx context.Context, logID uuid.UUID) (*dto.ShoppingLogResponse, error) {
	var out dto.ShoppingLogResponse
	if err := a.client.Do(ctx, http.MethodPost, "/shopping/"+logID.String()+"/recompute", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
