package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon-booking-api/internal/auth"
	"salon-booking-api/internal/model"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := auth.HashPassword("senha123")
	require.NoError(t, err)
	assert.NotEqual(t, "senha123", hash)

	assert.True(t, auth.CheckPassword(hash, "senha123"))
	assert.False(t, auth.CheckPassword(hash, "senha124"))
}

func TestTokenRoundTrip(t *testing.T) {
	tok, err := auth.MakeToken("user-1", model.RoleProvider, "Carlos", "secret")
	require.NoError(t, err)

	c, err := auth.ParseToken(tok, "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", c.UserID)
	assert.Equal(t, model.RoleProvider, c.Role)
	assert.Equal(t, "Carlos", c.Name)
}

func TestParseTokenWrongSecret(t *testing.T) {
	tok, err := auth.MakeToken("user-1", model.RoleClient, "Joana", "secret")
	require.NoError(t, err)

	_, err = auth.ParseToken(tok, "other")
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := auth.ParseToken("not-a-jwt", "secret")
	assert.Error(t, err)
}

func TestRefreshTokenHashing(t *testing.T) {
	raw, hash, err := auth.GenerateRefreshToken()
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
	assert.NotEqual(t, raw, hash)
	assert.Equal(t, hash, auth.HashRefreshToken(raw))

	raw2, _, err := auth.GenerateRefreshToken()
	require.NoError(t, err)
	assert.NotEqual(t, raw, raw2)
}
