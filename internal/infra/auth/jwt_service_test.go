package auth

import (
	"testing"
	"time"

	"mealplanner/config"
	"mealplanner/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: time.Minute, RefreshTokenTTL: time.Hour}}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userID := uuid.New()
	accessToken, refreshToken, err := svc.GenerateTokens(userID)
	require.NoError(t, err)
	assert.NotEqual(t, accessToken, refreshToken)

	accessClaims, err := svc.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := svc.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
	assert.Equal(t, time.Hour, svc.GetRefreshTokenDuration())
}

func TestJWTService_RejectsWrongTokenType(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	accessToken, refreshToken, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(accessToken)
	assert.Error(t, err)

	_, err = svc.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	impl := svc.(*jwtService)
	issued := time.Now().Add(-2 * time.Minute)
	impl.now = func() time.Time { return issued }
	accessToken, _, err := impl.GenerateTokens(uuid.New())
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.ValidateAccessToken(accessToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	other := newTestConfig()
	other.SecretKey.Access = "another_secret_of_reasonable_length_1234"
	otherSvc, err := NewJWTService(other)
	require.NoError(t, err)

	token, _, err := otherSvc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_HashTokenIsStable(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	assert.Equal(t, svc.HashToken("abc"), svc.HashToken("abc"))
	assert.NotEqual(t, svc.HashToken("abc"), svc.HashToken("abd"))
	assert.Len(t, svc.HashToken("abc"), 64)
}
