package handler

import (
	"mealplanner/internal/delivery/api/response"
	domainerrors "mealplanner/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the body into req and runs the struct validator.
// Both failures come back as a *domainerrors.ValidationError.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.NewValidationError("body", "malformed request payload")
	}

	return c.Validate(req)
}

// pathID parses a UUID path parameter.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError(name, "must be a valid UUID")
	}

	return id, nil
}

func invalidToken(c echo.Context) error {
	return response.Unauthorized(c, domainerrors.ErrTokenInvalid.ErrorCode(), "Invalid user ID in token")
}
