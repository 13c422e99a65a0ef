package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	service := NewJWTService("test-secret-key", "1h")

	tokenString, expiresAt, err := service.GenerateAccessToken("user-1", "admin@example.com", true)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	token, err := service.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	userID, _ := token.Get("user_id")
	assert.Equal(t, "user-1", userID)

	email, _ := token.Get("email")
	assert.Equal(t, "admin@example.com", email)

	isAdmin, _ := token.Get("is_admin")
	assert.Equal(t, true, isAdmin)

	tokenType, _ := token.Get("type")
	assert.Equal(t, "access", tokenType)
}

func TestGenerateAccessToken_InvalidExpiration(t *testing.T) {
	service := NewJWTService("test-secret-key", "not-a-duration")

	_, _, err := service.GenerateAccessToken("user-1", "admin@example.com", false)
	assert.Error(t, err)
}
