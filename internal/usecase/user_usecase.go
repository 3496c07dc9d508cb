// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"mealplanner/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput carries the refresh token presented by the client.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput carries the refresh token of the session to end.
type LogoutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// AuthOutput returns the issued tokens and the authenticated user.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserUsecase defines the interface for account and session operations.
type UserUsecase interface {
	// RegisterUser creates the account and logs it in.
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	// RefreshToken rotates the refresh token and issues a new access token.
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*AuthOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	// CleanupExpiredSessions removes expired refresh tokens.
	CleanupExpiredSessions(ctx context.Context) (int64, error)
}
