package repository

import (
	"context"

	"mealplanner/internal/domain/entity"
	"mealplanner/internal/errors"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when a refresh token is not found or already expired.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines session persistence.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new refresh token, representing a user session.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves a non-expired refresh token by its hash.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteRefreshTokenByHash deletes a refresh token by its hash, ending that session.
	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error

	// CountActiveSessionsByUserID returns the number of non-expired sessions for a user.
	CountActiveSessionsByUserID(ctx context.Context, userID uuid.UUID) (int, error)

	// DeleteExpiredRefreshTokens removes expired sessions and reports how many were removed.
	DeleteExpiredRefreshTokens(ctx context.Context) (int64, error)
}
