package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateYParse(t *testing.T) {
	token, err := Generate("secret", "user-1", "logistica-api", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := Parse("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := Generate("secret", "user-1", "logistica-api", 60)
	require.NoError(t, err)

	_, err = Parse("otro-secret", token)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := Generate("secret", "user-1", "logistica-api", -1)
	require.NoError(t, err)

	_, err = Parse("secret", token)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := Generate("", "user-1", "logistica-api", 60)
	assert.Error(t, err)
}
