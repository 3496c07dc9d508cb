// Package api wraps the REST endpoints with typed calls.
package api

import (
	"context"
	"net/http"

	"mealplanner/internal/client/auth"
	"mealplanner/internal/client/transport"
	"mealplanner/internal/delivery/api/dto"
)

// AuthAPI calls /auth. Register, login and refresh must go through a client
// without a token source so a rejected login is not mistaken for an expired token.
type AuthAPI struct {
	public *transport.Client
	authed *transport.Client
}

// NewAuthAPI takes the unauthenticated client and, for CurrentUser, the authenticated one.
func NewAuthAPI(public, authed *transport.Client) *AuthAPI {
	return &AuthAPI{public: public, authed: authed}
}

func (a *AuthAPI) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	if err := a.public.Do(ctx, http.MethodPost, "/auth/register", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *AuthAPI) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	if err := a.public.Do(ctx, http.MethodPost, "/auth/login", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Refresh rotates the pair. It matches auth.RefreshFunc.
func (a *AuthAPI) Refresh(ctx context.Context, refreshToken string) (auth.Tokens, error) {
	var out dto.AuthResponse
	if err := a.public.Do(ctx, http.MethodPost, "/auth/refresh", &dto.RefreshTokenRequest{RefreshToken: refreshToken}, &out); err != nil {
		return auth.Tokens{}, err
	}

	return auth.Tokens{AccessToken: out.AccessToken, RefreshToken: out.RefreshToken}, nil
}

func (a *AuthAPI) Logout(ctx context.Context, refreshToken string) error {
	return a.public.Do(ctx, http.MethodPost, "/auth/logout", &dto.RefreshTokenRequest{RefreshToken: refreshToken}, nil)
}

func (a *AuthAPI) CurrentUser(ctx context.Context) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if err := a.authed.Do(ctx, http.MethodGet, "/auth/user", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
