package auth

import (
	"testing"
	"time"

	"kitchen/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{AccessTokenTTL: time.Hour},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	userID := uuid.New()
	token, expiresAt, err := svc.GenerateAccessToken(userID, "staff@shamshiri.com", []string{"Staff"}, []string{"North York"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, "staff@shamshiri.com", claims.Email)
	assert.Equal(t, []string{"Staff"}, claims.Roles)
	assert.Equal(t, []string{"North York"}, claims.Locations)
}

func TestJWTService_RequiresSecretAndTTL(t *testing.T) {
	_, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{AccessTokenTTL: time.Hour}})
	assert.Error(t, err)

	cfg := newTestJWTConfig()
	cfg.Auth.AccessTokenTTL = 0
	_, err = NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_RejectsInvalidTokens(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	_, err = svc.ValidateToken("invalid.token.string")
	assert.Error(t, err)

	otherCfg := newTestJWTConfig()
	otherCfg.SecretKey.Access = "a_completely_different_secret_value"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	foreign, _, err := other.GenerateAccessToken(uuid.New(), "a@b.c", []string{"Admin"}, nil)
	require.NoError(t, err)

	_, err = svc.ValidateToken(foreign)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	tokenSvc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	svc := tokenSvc.(*jwtService)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := svc.GenerateAccessToken(uuid.New(), "a@b.c", []string{"Staff"}, nil)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
