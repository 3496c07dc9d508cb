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

// MealPlanHandlerParams holds dependencies for MealPlanHandler, injected by Fx.
type MealPlanHandlerParams struct {
	fx.In

	MealPlanUC usecase.MealPlanUsecase
	Logger     *slog.Logger
}

// MealPlanHandler serves the /mealplan endpoints.
type MealPlanHandler struct {
	mealPlanUC usecase.MealPlanUsecase
	logger     *slog.Logger
}

// NewMealPlanHandler is the constructor for MealPlanHandler
func NewMealPlanHandler(params MealPlanHandlerParams) *MealPlanHandler {
	return &MealPlanHandler{
		mealPlanUC: params.MealPlanUC,
		logger:     params.Logger,
	}
}

// List returns every plan of the caller.
func (h *MealPlanHandler) List(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	plans, err := h.mealPlanUC.GetMealPlans(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.NewMealPlanResponses(plans), "OK")
}

// Create stores a plan with its sessions and menus.
func (h *MealPlanHandler) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	var req dto.MealPlanRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	plan, err := h.mealPlanUC.CreateMealPlan(c.Request().Context(), userID, req.ToInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, dto.NewMealPlanResponse(plan), "Meal plan created")
}

// Get returns one plan.
func (h *MealPlanHandler) Get(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	planID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	plan, err := h.mealPlanUC.GetMealPlan(c.Request().Context(), userID, planID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.NewMealPlanResponse(plan), "OK")
}

// Update replaces the plan's date, weekday and whole session tree.
func (h *MealPlanHandler) Update(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	planID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req dto.MealPlanRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	plan, err := h.mealPlanUC.UpdateMealPlan(c.Request().Context(), userID, planID, req.ToInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.NewMealPlanResponse(plan), "Meal plan updated")
}

// Delete removes a plan and its children.
func (h *MealPlanHandler) Delete(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	planID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.mealPlanUC.DeleteMealPlan(c.Request().Context(), userID, planID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Meal plan deleted")
}

// ByDate returns the plans of one day.
func (h *MealPlanHandler) ByDate(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	plans, err := h.mealPlanUC.GetMealPlansByDate(c.Request().Context(), userID, c.Param("date"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.NewMealPlanResponses(plans), "OK")
}

// ByRange returns the plans between startDate and endDate, both inclusive.
func (h *MealPlanHandler) ByRange(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	plans, err := h.mealPlanUC.GetMealPlansByRange(c.Request().Context(), userID, &usecase.DateRangeInput{
		StartDate: c.QueryParam("startDate"),
		EndDate:   c.QueryParam("endDate"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.NewMealPlanResponses(plans), "OK")
}

// AddSession appends a session to a plan.
func (h *MealPlanHandler) AddSession(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	planID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req dto.SessionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.mealPlanUC.AddSession(c.Request().Context(), userID, planID, req.ToInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, dto.NewSessionResponse(session), "Session added")
}

// AddMenu appends a menu to a session.
func (h *MealPlanHandler) AddMenu(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	sessionID, err := pathID(c, "sessionId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req dto.MenuRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	menu, err := h.mealPlanUC.AddMenuToSession(c.Request().Context(), userID, sessionID, req.ToInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, dto.NewMenuResponse(menu), "Menu added")
}
