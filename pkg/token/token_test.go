package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func TestGenerateAndValidate(t *testing.T) {
	signed, err := GenerateJWT("u1", []string{"SCORER"}, secret, time.Minute)
	require.NoError(t, err)

	claims, err := ValidateJWT(signed, secret)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.True(t, claims.HasRole("ADMIN", "SCORER"))
	assert.False(t, claims.HasRole("ADMIN"))
}

func TestValidateJWT_Rejects(t *testing.T) {
	expired, err := GenerateJWT("u1", nil, secret, -time.Minute)
	require.NoError(t, err)
	_, err = ValidateJWT(expired, secret)
	assert.EqualError(t, err, "token has expired")

	signed, err := GenerateJWT("u1", nil, secret, time.Minute)
	require.NoError(t, err)
	_, err = ValidateJWT(signed, "other-secret")
	assert.EqualError(t, err, "token signature is invalid")

	anonymous, err := GenerateJWT("", nil, secret, time.Minute)
	require.NoError(t, err)
	_, err = ValidateJWT(anonymous, secret)
	assert.Error(t, err)

	_, err = ValidateJWT("", secret)
	assert.Error(t, err)
}
