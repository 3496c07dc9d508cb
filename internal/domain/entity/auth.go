package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderTypeEmail is the only credential provider: email plus bcrypt password.
const ProviderTypeEmail = "email"

// Authentication represents a single method of logging in (a credential).
type Authentication struct {
	ID             uuid.UUID // The unique ID for this authentication record.
	UserID         uuid.UUID // Links this authentication method to the User it belongs to.
	Provider       string    // The authentication provider, currently always "email".
	ProviderUserID string    // The login identifier at the provider (the email address).
	PasswordHash   string    // bcrypt hash of the password.
	CreatedAt      time.Time // Timestamp of when this credential was created.
}

// RefreshToken represents a long-lived, authorized user session.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this refresh token record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token.
	ExpiresAt time.Time // When this refresh token becomes invalid.
	CreatedAt time.Time // When this session was created.
}

// IsExpired reports whether the token is past its expiry at now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
