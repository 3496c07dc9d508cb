// Package auth keeps the client's tokens and coordinates refreshes.
package auth

import (
	"context"
	"log/slog"
	"sync"

	"mealplanner/internal/client/flight"
	"mealplanner/internal/client/notify"
	"mealplanner/internal/errors"
)

var (
	// ErrNoRefreshToken is returned by Refresh when nothing is stored to refresh with.
	ErrNoRefreshToken = errors.New("no refresh token stored")
	// ErrReauthRequired wraps every failed refresh; the user has to log in again.
	ErrReauthRequired = errors.New("re-authentication required")
)

// Tokens is the pair issued by login, register and refresh.
type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// IsZero reports whether no token is held.
func (t Tokens) IsZero() bool {
	return t.AccessToken == "" && t.RefreshToken == ""
}

// TokenStore persists tokens between runs. LoadTokens returns zero Tokens when nothing is stored.
type TokenStore interface {
	LoadTokens(ctx context.Context) (Tokens, error)
	SaveTokens(ctx context.Context, tokens Tokens) error
	ClearTokens(ctx context.Context) error
}

// RefreshFunc exchanges a refresh token for a new pair.
type RefreshFunc func(ctx context.Context, refreshToken string) (Tokens, error)

// Coordinator owns the current token pair. Concurrent Refresh calls share one
// in-flight exchange.
type Coordinator struct {
	store    TokenStore
	refresh  RefreshFunc
	notifier notify.Notifier
	logger   *slog.Logger

	mu     sync.RWMutex
	tokens Tokens
	loaded bool

	refreshing flight.Cell[string]
}

// NewCoordinator builds a Coordinator. refresh is typically api.AuthAPI.Refresh bound
// to a transport client that does not itself retry on 401.
func NewCoordinator(store TokenStore, refresh RefreshFunc, notifier notify.Notifier, logger *slog.Logger) *Coordinator {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Coordinator{
		store:    store,
		refresh:  refresh,
		notifier: notifier,
		logger:   logger,
	}
}

// Token returns the current access token, or "" when logged out.
func (c *Coordinator) Token(ctx context.Context) (string, error) {
	tokens, err := c.current(ctx)
	if err != nil {
		return "", err
	}

	return tokens.AccessToken, nil
}

// RefreshToken returns the current refresh token, or "" when logged out.
func (c *Coordinator) RefreshToken(ctx context.Context) (string, error) {
	tokens, err := c.current(ctx)
	if err != nil {
		return "", err
	}

	return tokens.RefreshToken, nil
}

// SetToken stores a new pair.
func (c *Coordinator) SetToken(ctx context.Context, tokens Tokens) error {
	if err := c.store.SaveTokens(ctx, tokens); err != nil {
		return errors.Wrap(err, "save tokens")
	}

	c.mu.Lock()
	c.tokens = tokens
	c.loaded = true
	c.mu.Unlock()

	return nil
}

// RemoveToken forgets the pair in memory and in the store.
func (c *Coordinator) RemoveToken(ctx context.Context) error {
	c.mu.Lock()
	c.tokens = Tokens{}
	c.loaded = true
	c.mu.Unlock()

	if err := c.store.ClearTokens(ctx); err != nil {
		return errors.Wrap(err, "clear tokens")
	}

	return nil
}

// IsRefreshing reports whether a refresh is in flight.
func (c *Coordinator) IsRefreshing() bool {
	return c.refreshing.InFlight()
}

// Refresh exchanges the stored refresh token for a new pair and returns the new
// access token. rejected is the access token the server turned down; when the
// stored token has already moved past it, the stored token is returned without an
// exchange. Callers arriving during an exchange wait for it instead of starting
// another. A failed exchange removes the tokens and raises ReauthRequired.
func (c *Coordinator) Refresh(ctx context.Context, rejected string) (string, error) {
	token, shared, err := c.refreshing.Do(ctx, func(ctx context.Context) (string, error) {
		return c.doRefresh(ctx, rejected)
	})
	if shared {
		c.logger.DebugContext(ctx, "Joined in-flight token refresh")
	}

	return token, err
}

func (c *Coordinator) doRefresh(ctx context.Context, rejected string) (string, error) {
	tokens, err := c.current(ctx)
	if err != nil {
		return "", err
	}

	if tokens.AccessToken != "" && tokens.AccessToken != rejected {
		c.logger.DebugContext(ctx, "Access token already rotated")

		return tokens.AccessToken, nil
	}

	if tokens.RefreshToken == "" {
		return "", c.fail(ctx, ErrNoRefreshToken)
	}

	tokens, err = c.refresh(ctx, tokens.RefreshToken)
	if err != nil {
		return "", c.fail(ctx, err)
	}

	if err := c.SetToken(ctx, tokens); err != nil {
		return "", err
	}

	c.logger.InfoContext(ctx, "Access token refreshed")

	return tokens.AccessToken, nil
}

func (c *Coordinator) fail(ctx context.Context, cause error) error {
	if err := c.RemoveToken(ctx); err != nil {
		c.logger.WarnContext(ctx, "Failed to clear tokens after refresh failure", slog.Any("error", err))
	}

	err := errors.Wrap(errors.Join(ErrReauthRequired, cause), "refresh token")
	c.notifier.ReauthRequired(err)

	return err
}

func (c *Coordinator) current(ctx context.Context) (Tokens, error) {
	c.mu.RLock()
	if c.loaded {
		tokens := c.tokens
		c.mu.RUnlock()

		return tokens, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return c.tokens, nil
	}

	tokens, err := c.store.LoadTokens(ctx)
	if err != nil {
		return Tokens{}, errors.Wrap(err, "load tokens")
	}
	c.tokens = tokens
	c.loaded = true

	return tokens, nil
}
