package handler

import (
	"log/slog"
	"net/http"

	"mealplanner/internal/delivery/api/dto"
	"mealplanner/internal/delivery/api/middleware"
	"mealplanner/internal/delivery/api/response"
	"mealplanner/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SnackHandlerParams holds dependencies for SnackHandler, injected by Fx.
type SnackHandlerParams struct {
	fx.In

	SnackUC usecase.SnackUsecase
	Logger  *slog.Logger
}

// SnackHandler serves the /jajanlog endpoints.
type SnackHandler struct {
	snackUC usecase.SnackUsecase
	logger  *slog.Logger
}

// NewSnackHandler is the constructor for SnackHandler
func NewSnackHandler(params SnackHandlerParams) *SnackHandler {
	return &SnackHandler{
		snackUC: params.SnackUC,
		logger:  params.Logger,
	}
}

// List returns the caller's snack logs, optionally bounded by startDate and endDate.
func (h *SnackHandler) List(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	var query *usecase.SnackQuery
	if start, end := c.QueryParam("startDate"), c.QueryParam("endDate"); start != "" || end != "" {
		query = &usecase.SnackQuery{StartDate: start, EndDate: end}
	}

	snacks, err := h.snackUC.GetSnacks(c.Request().Context(), userID, query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.NewSnackResponses(snacks), "OK")
}

func (h *SnackHandler) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	var req dto.SnackRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	snack, err := h.snackUC.CreateSnack(c.Request().Context(), userID, req.ToInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, dto.NewSnackResponse(snack), "Snack log created")
}

func (h *SnackHandler) Get(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	snackID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	snack, err := h.snackUC.GetSnack(c.Request().Context(), userID, snackID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.NewSnackResponse(snack), "OK")
}

func (h *SnackHandler) Update(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	snackID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req dto.UpdateSnackRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	snack, err := h.snackUC.UpdateSnack(c.Request().Context(), userID, snackID, req.ToInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.NewSnackResponse(snack), "Snack log updated")
}

func (h *SnackHandler) Delete(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	snackID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.snackUC.DeleteSnack(c.Request().Context(), userID, snackID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Snack log deleted")
}
