package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-signing-key")

	userID := uuid.New()
	token, err := CreateToken(userID, "ana@example.com")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
}

func TestValidateToken_BadToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-signing-key")

	_, err := ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateToken_WrongKey(t *testing.T) {
	t.Setenv("JWT_SECRET", "key-one")
	token, err := CreateToken(uuid.New(), "ana@example.com")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "key-two")
	_, err = ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
