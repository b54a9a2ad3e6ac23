package jwt

import (
	"FreshKeep-Backend/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	service := NewJWTService(func() time.Time { return now })

	token, expiresIn, err := service.GenerateAccessToken("user-123")
	require.NoError(t, err)
	assert.Equal(t, int64(7200), expiresIn)

	userID, err := service.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestAccessTokenExpiry(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	service := NewJWTService(func() time.Time { return now })

	token, _, err := service.GenerateAccessToken("user-123")
	require.NoError(t, err)

	late := NewJWTService(func() time.Time { return now.Add(121 * time.Minute) })
	_, err = late.GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestGarbageToken(t *testing.T) {
	service := NewJWTService(nil)

	_, err := service.GetUserIDByToken("not.a.token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestVerifyEmailTokenRoundTrip(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	service := NewJWTService(func() time.Time { return now })

	token, err := service.GenerateTokenVerifyEmail(map[string]any{"user_id": "user-123"}, time.Hour)
	require.NoError(t, err)

	claims, err := service.ValidateTokenVerifyEmail(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims["user_id"])

	late := NewJWTService(func() time.Time { return now.Add(2 * time.Hour) })
	_, err = late.ValidateTokenVerifyEmail(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}
