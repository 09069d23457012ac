package utils

import (
	"testing"
	"time"

	"github.com/maheshrc27/contentops/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "0123456789abcdef0123456789abcdef"

func TestEncryptDecrypt(t *testing.T) {
	sealed, err := Encrypt([]byte("EAAG-page-token"), []byte(testKey))
	require.NoError(t, err)
	assert.NotContains(t, sealed, "EAAG")

	plain, err := Decrypt(sealed, []byte(testKey))
	require.NoError(t, err)
	assert.Equal(t, "EAAG-page-token", plain)
}

func TestEncryptUsesFreshNonce(t *testing.T) {
	a, err := Encrypt([]byte("same"), []byte(testKey))
	require.NoError(t, err)
	b, err := Encrypt([]byte("same"), []byte(testKey))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestDecryptFailures(t *testing.T) {
	sealed, err := Encrypt([]byte("token"), []byte(testKey))
	require.NoError(t, err)

	_, err = Decrypt(sealed, []byte("fedcba9876543210fedcba9876543210"))
	assert.Error(t, err)

	_, err = Decrypt("not base64!", []byte(testKey))
	assert.Error(t, err)

	_, err = Decrypt("AAAA", []byte(testKey))
	assert.EqualError(t, err, "ciphertext too short")

	_, err = Encrypt([]byte("token"), []byte("short"))
	assert.Error(t, err)
}

func TestTokenRoundTrip(t *testing.T) {
	user := &models.User{ID: "u1", Email: "editor@example.com", Role: models.RoleEditor}

	token, err := GenerateToken(testKey, user, time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(testKey, token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "editor@example.com", claims.Email)
	assert.Equal(t, models.RoleEditor, claims.Role)
}

func TestValidateTokenRejects(t *testing.T) {
	user := &models.User{ID: "u1"}

	expired, err := GenerateToken(testKey, user, -time.Minute)
	require.NoError(t, err)
	_, err = ValidateToken(testKey, expired)
	assert.Error(t, err)

	token, err := GenerateToken(testKey, user, time.Hour)
	require.NoError(t, err)
	_, err = ValidateToken("another-secret", token)
	assert.Error(t, err)
}

func TestGenerateRandomKey(t *testing.T) {
	a, err := GenerateRandomKey(16)
	require.NoError(t, err)
	b, err := GenerateRandomKey(16)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 22)
}
