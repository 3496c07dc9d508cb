package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"mealplanner/config"
	"mealplanner/internal/delivery/api"
	"mealplanner/internal/delivery/api/dto"
	apimiddleware "mealplanner/internal/delivery/api/middleware"
	"mealplanner/internal/delivery/api/router"
	"mealplanner/internal/delivery/api/router/handler"
	"mealplanner/internal/delivery/middleware"
	"mealplanner/internal/domain/entity"
	domainerrors "mealplanner/internal/domain/errors"
	"mealplanner/internal/domain/service"
	"mealplanner/internal/errors"
	"mealplanner/internal/infra/metrics"
	mockSvc "mealplanner/internal/mocks/service"
	mockUsecase "mealplanner/internal/mocks/usecase"
	"mealplanner/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validToken = "valid-access-token"

type apiFixtures struct {
	e          *echo.Echo
	userUC     *mockUsecase.MockUserUsecase
	mealPlanUC *mockUsecase.MockMealPlanUsecase
	shoppingUC *mockUsecase.MockShoppingUsecase
	snackUC    *mockUsecase.MockSnackUsecase
	userID     uuid.UUID
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string          `json:"code"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func createTestAPI(t *testing.T) apiFixtures {
	t.Helper()

	cfg := &config.Config{
		Receipts:  &config.ReceiptsConfig{MaxBytes: 1024},
		RateLimit: &config.RateLimitConfig{Enabled: true, RequestsPerMinute: 60, Burst: 2},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	fx := apiFixtures{
		userUC:     mockUsecase.NewMockUserUsecase(t),
		mealPlanUC: mockUsecase.NewMockMealPlanUsecase(t),
		shoppingUC: mockUsecase.NewMockShoppingUsecase(t),
		snackUC:    mockUsecase.NewMockSnackUsecase(t),
		userID:     uuid.New(),
	}

	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateAccessToken(validToken).
		Return(&service.Claims{UserID: fx.userID, Type: service.TokenTypeAccess}, nil).Maybe()
	tokenSvc.EXPECT().ValidateAccessToken(mock.Anything).
		Return(nil, domainerrors.ErrTokenInvalid).Maybe()

	fx.e = api.NewEcho(cfg, logger, metrics.Nop{})
	router.NewRouter(router.RouterParams{
		AuthHandler:     handler.NewAuthHandler(handler.AuthHandlerParams{UserUC: fx.userUC, Logger: logger}),
		MealPlanHandler: handler.NewMealPlanHandler(handler.MealPlanHandlerParams{MealPlanUC: fx.mealPlanUC, Logger: logger}),
		ShoppingHandler: handler.NewShoppingHandler(handler.ShoppingHandlerParams{ShoppingUC: fx.shoppingUC, Config: cfg, Logger: logger}),
		SnackHandler:    handler.NewSnackHandler(handler.SnackHandlerParams{SnackUC: fx.snackUC, Logger: logger}),
		HealthHandler:   handler.NewHealthHandler(handler.HealthHandlerParams{}),
		AuthMiddleware:  apimiddleware.NewAuthMiddleware(tokenSvc),
		RateLimiter:     middleware.NewRateLimiter(cfg, metrics.Nop{}),
		Config:          cfg,
	}).RegisterRoutes(fx.e)

	return fx
}

func (fx apiFixtures) do(t *testing.T, method, path string, body any, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	return fx.serve(t, req)
}

func (fx apiFixtures) serve(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))

	return out
}

func TestAuthMiddleware_RejectsMissingAndInvalidTokens(t *testing.T) {
	fx := createTestAPI(t)

	rec, env := fx.do(t, http.MethodGet, "/mealplan", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "MISSING_TOKEN", env.Error.Code)

	rec, env = fx.do(t, http.MethodGet, "/mealplan", nil, "forged")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "TOKEN_INVALID", env.Error.Code)
}

func TestMealPlanRoutes_Create(t *testing.T) {
	fx := createTestAPI(t)

	planID := uuid.New()
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	fx.mealPlanUC.EXPECT().
		CreateMealPlan(mock.Anything, fx.userID, mock.MatchedBy(func(in *usecase.MealPlanInput) bool {
			return in.Date == "2026-03-02" && len(in.Sessions) == 2 &&
				in.Sessions[0].Mealtime == "Lunch" && len(in.Sessions[0].Menus) == 1
		})).
		Return(&entity.MealPlan{
			ID:      planID,
			OwnerID: fx.userID,
			Date:    date,
			Weekday: "Monday",
			Sessions: []*entity.Session{
				{ID: uuid.New(), MealPlanID: planID, Mealtime: entity.MealtimeBreakfast, Position: 1},
				{ID: uuid.New(), MealPlanID: planID, Mealtime: entity.MealtimeLunch, Position: 0, Menus: []*entity.Menu{{ID: uuid.New(), Name: "Nasi Goreng"}}},
			},
		}, nil)

	rec, env := fx.do(t, http.MethodPost, "/mealplan", dto.MealPlanRequest{
		Date:    "2026-03-02",
		Weekday: "Monday",
		Sessions: []dto.SessionRequest{
			{Mealtime: "Lunch", Menus: []dto.MenuRequest{{Name: "Nasi Goreng"}}},
			{Mealtime: "Breakfast"},
		},
	}, validToken)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, http.StatusCreated, env.Code)

	plan := decodeData[dto.MealPlanResponse](t, env)
	assert.Equal(t, planID, plan.ID)
	assert.Equal(t, "2026-03-02", plan.Date)
	require.Len(t, plan.Sessions, 2)
	assert.Equal(t, "Breakfast", plan.Sessions[0].Mealtime)
	assert.Equal(t, "Nasi Goreng", plan.Sessions[1].Menus[0].Name)
}

func TestMealPlanRoutes_Create_ValidationDetails(t *testing.T) {
	fx := createTestAPI(t)

	rec, env := fx.do(t, http.MethodPost, "/mealplan", dto.MealPlanRequest{
		Date:     "02-03-2026",
		Weekday:  "Monday",
		Sessions: []dto.SessionRequest{{Mealtime: "Brunch"}},
	}, validToken)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	var fields []domainerrors.FieldError
	require.NoError(t, json.Unmarshal(env.Error.Details, &fields))
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Field)
	}
	assert.ElementsMatch(t, []string{"date", "sessions[0].mealtime"}, names)
}

func TestMealPlanRoutes_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "forbidden", err: domainerrors.ErrForbidden, wantStatus: http.StatusForbidden, wantCode: "FORBIDDEN"},
		{name: "not found", err: domainerrors.ErrMealPlanNotFound, wantStatus: http.StatusNotFound, wantCode: "MEAL_PLAN_NOT_FOUND"},
		{
			name:       "persistence",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "find meal plan"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "DATABASE_EXECUTE_FAILED",
		},
		{name: "unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAPI(t)
			planID := uuid.New()

			fx.mealPlanUC.EXPECT().GetMealPlan(mock.Anything, fx.userID, planID).Return(nil, tt.err)

			rec, env := fx.do(t, http.MethodGet, "/mealplan/"+planID.String(), nil, validToken)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			assert.NotContains(t, rec.Body.String(), "connection reset")
		})
	}
}

func TestMealPlanRoutes_InvalidID(t *testing.T) {
	fx := createTestAPI(t)

	rec, env := fx.do(t, http.MethodDelete, "/mealplan/not-a-uuid", nil, validToken)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestMealPlanRoutes_StaticSegmentsBeatIDs(t *testing.T) {
	fx := createTestAPI(t)
	sessionID := uuid.New()

	fx.mealPlanUC.EXPECT().
		GetMealPlansByRange(mock.Anything, fx.userID, &usecase.DateRangeInput{StartDate: "2026-03-01", EndDate: "2026-03-07"}).
		Return([]*entity.MealPlan{}, nil)
	fx.mealPlanUC.EXPECT().
		GetMealPlansByDate(mock.Anything, fx.userID, "2026-03-02").
		Return([]*entity.MealPlan{}, nil)
	fx.mealPlanUC.EXPECT().
		AddMenuToSession(mock.Anything, fx.userID, sessionID, &usecase.MenuInput{Name: "Soto Ayam"}).
		Return(&entity.Menu{ID: uuid.New(), SessionID: sessionID, Name: "Soto Ayam"}, nil)

	rec, _ := fx.do(t, http.MethodGet, "/mealplan/range?startDate=2026-03-01&endDate=2026-03-07", nil, validToken)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = fx.do(t, http.MethodGet, "/mealplan/date/2026-03-02", nil, validToken)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := fx.do(t, http.MethodPost, "/mealplan/sessions/"+sessionID.String()+"/menus", dto.MenuRequest{Name: "Soto Ayam"}, validToken)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Soto Ayam", decodeData[dto.MenuResponse](t, env).Name)
}

func TestShoppingRoutes_DetailLifecycle(t *testing.T) {
	fx := createTestAPI(t)
	logID := uuid.New()
	detailID := uuid.New()

	fx.shoppingUC.EXPECT().
		CreateShoppingDetails(mock.Anything, fx.userID, logID, []usecase.ShoppingDetailInput{
			{ItemName: "Telur", Quantity: 10, Unit: "butir", UnitCost: 0.25},
		}).
		Return([]*entity.ShoppingDetail{{ID: detailID, ShoppingLogID: logID, ItemName: "Telur", Quantity: 10, UnitCost: 0.25}}, nil)
	fx.shoppingUC.EXPECT().
		UpdateShoppingDetail(mock.Anything, fx.userID, detailID, mock.MatchedBy(func(in *usecase.UpdateShoppingDetailInput) bool {
			return in.IsChecked != nil && *in.IsChecked && in.ItemName == nil
		})).
		Return(&entity.ShoppingDetail{ID: detailID, ShoppingLogID: logID, ItemName: "Telur", IsChecked: true}, nil)
	fx.shoppingUC.EXPECT().DeleteShoppingDetail(mock.Anything, fx.userID, detailID).Return(nil)

	rec, env := fx.do(t, http.MethodPost, "/shopping/"+logID.String()+"/details", dto.CreateShoppingDetailsRequest{
		Details: []dto.ShoppingDetailRequest{{ItemName: "Telur", Quantity: 10, Unit: "butir", UnitCost: 0.25}},
	}, validToken)
	require.Equal(t, http.StatusCreated, rec.Code)
	details := decodeData[[]dto.ShoppingDetailResponse](t, env)
	require.Len(t, details, 1)
	assert.InDelta(t, 2.5, details[0].LineCost, 0.0001)

	checked := true
	rec, env = fx.do(t, http.MethodPut, "/shopping/details/"+detailID.String(), dto.UpdateShoppingDetailRequest{IsChecked: &checked}, validToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeData[dto.ShoppingDetailResponse](t, env).IsChecked)

	rec, _ = fx.do(t, http.MethodDelete, "/shopping/details/"+detailID.String(), nil, validToken)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestShoppingRoutes_CreateDetails_RequiresItems(t *testing.T) {
	fx := createTestAPI(t)

	rec, env := fx.do(t, http.MethodPost, "/shopping/"+uuid.NewString()+"/details", dto.CreateShoppingDetailsRequest{}, validToken)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func newReceiptRequest(t *testing.T, path, contentType string, data []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="receipt"; filename="struk.jpg"`)
	header.Set(echo.HeaderContentType, contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPut, path, body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+validToken)

	return req
}

func TestShoppingRoutes_Receipt(t *testing.T) {
	t.Run("upload", func(t *testing.T) {
		fx := createTestAPI(t)
		logID := uuid.New()
		data := []byte("jpeg-bytes")
		ref := "receipts/" + fx.userID.String() + "/x.jpg"

		fx.shoppingUC.EXPECT().
			AttachReceipt(mock.Anything, fx.userID, logID, &usecase.ReceiptInput{
				Filename:    "struk.jpg",
				ContentType: "image/jpeg",
				Data:        data,
			}).
			Return(&entity.ShoppingLog{ID: logID, OwnerID: fx.userID, ReceiptRef: &ref}, nil)

		rec, env := fx.serve(t, newReceiptRequest(t, "/shopping/"+logID.String()+"/receipt", "image/jpeg", data))

		require.Equal(t, http.StatusOK, rec.Code)
		got := decodeData[dto.ShoppingLogResponse](t, env)
		require.NotNil(t, got.ReceiptRef)
		assert.Equal(t, ref, *got.ReceiptRef)
	})

	t.Run("too large", func(t *testing.T) {
		fx := createTestAPI(t)

		rec, env := fx.serve(t, newReceiptRequest(t, "/shopping/"+uuid.NewString()+"/receipt", "image/png", make([]byte, 2048)))

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "RECEIPT_TOO_LARGE", env.Error.Code)
	})

	t.Run("download", func(t *testing.T) {
		fx := createTestAPI(t)
		logID := uuid.New()

		fx.shoppingUC.EXPECT().GetReceipt(mock.Anything, fx.userID, logID).
			Return(&usecase.Receipt{ContentType: "image/png", Data: []byte("png")}, nil)

		req := httptest.NewRequest(http.MethodGet, "/shopping/"+logID.String()+"/receipt", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+validToken)
		rec := httptest.NewRecorder()
		fx.e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "png", rec.Body.String())
	})
}

func TestSnackRoutes_ListQuery(t *testing.T) {
	fx := createTestAPI(t)

	fx.snackUC.EXPECT().GetSnacks(mock.Anything, fx.userID, (*usecase.SnackQuery)(nil)).Return([]*entity.SnackLog{}, nil)
	fx.snackUC.EXPECT().
		GetSnacks(mock.Anything, fx.userID, &usecase.SnackQuery{StartDate: "2026-03-01", EndDate: "2026-03-31"}).
		Return([]*entity.SnackLog{{ID: uuid.New(), OwnerID: fx.userID, ItemName: "Cilok", Amount: 1.5}}, nil)

	rec, env := fx.do(t, http.MethodGet, "/jajanlog", nil, validToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeData[[]dto.SnackResponse](t, env))

	rec, env = fx.do(t, http.MethodGet, "/jajanlog?startDate=2026-03-01&endDate=2026-03-31", nil, validToken)
	require.Equal(t, http.StatusOK, rec.Code)
	snacks := decodeData[[]dto.SnackResponse](t, env)
	require.Len(t, snacks, 1)
	assert.Equal(t, "Cilok", snacks[0].ItemName)
}

func TestAuthRoutes_RegisterAndCurrentUser(t *testing.T) {
	fx := createTestAPI(t)
	user := &entity.User{ID: fx.userID, Name: "Sari", Email: "sari@example.com"}

	fx.userUC.EXPECT().
		RegisterUser(mock.Anything, &usecase.RegisterUserInput{Name: "Sari", Email: "sari@example.com", Password: "rahasia123"}).
		Return(&usecase.AuthOutput{AccessToken: "a", RefreshToken: "r", User: user}, nil)
	fx.userUC.EXPECT().GetUser(mock.Anything, fx.userID).Return(user, nil)

	rec, env := fx.do(t, http.MethodPost, "/auth/register", dto.RegisterRequest{
		Name: "Sari", Email: "sari@example.com", Password: "rahasia123",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	auth := decodeData[dto.AuthResponse](t, env)
	assert.Equal(t, "a", auth.AccessToken)
	assert.Equal(t, "r", auth.RefreshToken)
	require.NotNil(t, auth.User)
	assert.Equal(t, "sari@example.com", auth.User.Email)

	rec, env = fx.do(t, http.MethodGet, "/auth/user", nil, validToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Sari", decodeData[dto.UserResponse](t, env).Name)
}

func TestAuthRoutes_LoginIsRateLimited(t *testing.T) {
	fx := createTestAPI(t)

	fx.userUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials).Times(2)

	body := dto.LoginRequest{Email: "sari@example.com", Password: "wrong-password1"}
	for range 2 {
		rec, env := fx.do(t, http.MethodPost, "/auth/login", body, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
	}

	rec, env := fx.do(t, http.MethodPost, "/auth/login", body, "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.False(t, env.Success)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Contains(t, env.Message, "retry in")
}

func TestHealthRoute(t *testing.T) {
	fx := createTestAPI(t)

	rec, env := fx.do(t, http.MethodGet, "/health", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}
