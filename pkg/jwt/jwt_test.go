package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bloodbank-api/pkg/jwt"
)

const secret = "test-secret"

func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := jwt.Generate(secret, "u1", "John Doe", "user", "bloodbank-api", 5)
	require.NoError(t, err)

	id, err := jwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", id.SubjectID)
	assert.Equal(t, "John Doe", id.Name)
	assert.Equal(t, "user", id.Role)
	assert.False(t, id.IssuedAt.IsZero())
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := jwt.Generate(secret, "a1", "admin", "admin", "bloodbank-api", 5)
	require.NoError(t, err)

	_, err = jwt.Parse("otro-secret", tok)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := jwt.Generate(secret, "u1", "John", "user", "bloodbank-api", -1)
	require.NoError(t, err)

	_, err = jwt.Parse(secret, tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "u1", "John", "user", "x", 5)
	assert.Error(t, err)
}
