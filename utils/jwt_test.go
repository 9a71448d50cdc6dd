package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("acct-1", "admin", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, parsed.Valid)

	sub, err := ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "acct-1", sub)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("acct-1", "admin", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)

	_, err = ExtractIDFromToken("")
	assert.Error(t, err)
}

func TestHashTokenIsStableAndOpaque(t *testing.T) {
	h1 := HashToken("token-a")
	h2 := HashToken("token-a")
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64) // hex-encoded SHA-256
	assert.NotEqual(t, h1, HashToken("token-b"))
	assert.NotContains(t, h1, "token-a")
}
