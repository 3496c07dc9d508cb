package middleware

import (
	"strings"

	"mealplanner/internal/delivery/api/response"
	deliverycontext "mealplanner/internal/delivery/context"
	domainerrors "mealplanner/internal/domain/errors"
	"mealplanner/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const userIDKey = "userID"

// AuthMiddleware authenticates requests carrying a bearer access token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token and stores the caller's user ID on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil || claims.UserID == uuid.Nil {
			return response.Unauthorized(c, domainerrors.ErrTokenInvalid.ErrorCode(), domainerrors.ErrTokenInvalid.Message())
		}

		c.Set(userIDKey, claims.UserID)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithUserID(c.Request().Context(), claims.UserID)))

		return next(c)
	}
}

// GetUserID returns the authenticated caller set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(userIDKey).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}
