package api

import (
	"context"
	"net/http"
	"net/url"

	"mealplanner/internal/client/transport"
	"mealplanner/internal/delivery/api/dto"

	"github.com/google/uuid"
)

// SnackAPI calls /jajanlog.
type SnackAPI struct {
	client *transport.Client
}

func NewSnackAPI(client *transport.Client) *SnackAPI {
	return &SnackAPI{client: client}
}

// List returns snack logs, bounded by the dates when both are set.
func (a *SnackAPI) List(ctx context.Context, startDate, endDate string) ([]dto.SnackResponse, error) {
	path := "/jajanlog"
	if startDate != "" || endDate != "" {
		path += "?" + url.Values{"startDate": {startDate}, "endDate": {endDate}}.Encode()
	}

	var out []dto.SnackResponse
	if err := a.client.Do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (a *SnackAPI) Get(ctx context.Context, id uuid.UUID) (*dto.SnackResponse, error) {
	var out dto.SnackResponse
	if err := a.client.Do(ctx, http.MethodGet, "/jajanlog/"+id.String(), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *SnackAPI) Create(ctx context.Context, req *dto.SnackRequest) (*dto.SnackResponse, error) {
	var out dto.SnackResponse
	if err := a.client.Do(ctx, http.MethodPost, "/jajanlog", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *SnackAPI) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateSnackRequest) (*dto.SnackResponse, error) {
	var out dto.SnackResponse
	if err := a.client.Do(ctx, http.MethodPut, "/jajanlog/"+id.String(), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *SnackAPI) Delete(ctx context.Context, id uuid.UUID) error {
	return a.client.Do(ctx, http.MethodDelete, "/jajanlog/"+id.String(), nil, nil)
}
