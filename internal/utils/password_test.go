package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "secret123", hash)

	require.True(t, VerifyPassword(hash, "secret123"))
	require.False(t, VerifyPassword(hash, "secret124"))
}

func TestVerifyPasswordGarbageHash(t *testing.T) {
	require.False(t, VerifyPassword("not-a-bcrypt-hash", "secret123"))
}

func TestHashPasswordDistinctSalts(t *testing.T) {
	h1, err := HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)
	// bcrypt salts every hash, so equal inputs produce distinct digests
	require.NotEqual(t, h1, h2)
}
