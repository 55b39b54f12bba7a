package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessToken_RoundTrip(t *testing.T) {
	secret := []byte("secret")
	tok, err := GenerateAccessToken("player-1", secret, time.Hour, time.Now())
	require.NoError(t, err)

	claims, err := VerifyToken(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, "player-1", claims.Subject)
}

func TestVerifyToken_Rejects(t *testing.T) {
	secret := []byte("secret")

	expired, err := GenerateAccessToken("player-1", secret, time.Minute, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	_, err = VerifyToken(expired, secret)
	assert.Error(t, err)

	valid, err := GenerateAccessToken("player-1", secret, time.Hour, time.Now())
	require.NoError(t, err)
	_, err = VerifyToken(valid, []byte("other"))
	assert.Error(t, err)

	_, err = VerifyToken("garbage", secret)
	assert.Error(t, err)
}
