package auth

import (
	"context"
	"royal_casino/internal/clock"
	"royal_casino/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type jwtConfig struct{}

func (jwtConfig) AccessTokenSecretKey() []byte       { return []byte("test-secret") }
func (jwtConfig) AccessTokenDuration() time.Duration { return time.Hour }

func TestGuestThenPlayerID(t *testing.T) {
	ctx := context.Background()
	s := NewAuthService(jwtConfig{}, nil)

	a, err := s.Guest(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, a.PlayerID)

	b, err := s.Guest(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, a.PlayerID, b.PlayerID)

	id, err := s.PlayerID(ctx, a.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, a.PlayerID, id)
}

func TestPlayerID_Expired(t *testing.T) {
	ctx := context.Background()
	old := clock.NewFakeClock(time.Now().Add(-2 * time.Hour))
	s := NewAuthService(jwtConfig{}, old)

	a, err := s.Guest(ctx)
	require.NoError(t, err)

	_, err = NewAuthService(jwtConfig{}, nil).PlayerID(ctx, a.AccessToken)
	assert.ErrorIs(t, err, model.ErrUnauthorized)
}
