package auth

import (
	"context"
	"fmt"
	"royal_casino/internal/clock"
	"royal_casino/internal/config"
	"royal_casino/internal/model"
	"royal_casino/internal/service"
	"royal_casino/pkg/token"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type serv struct {
	jwtConfig config.JWTConfig
	clock     clock.Clock
}

func NewAuthService(jwtConfig config.JWTConfig, clk clock.Clock) service.AuthService {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &serv{
		jwtConfig: jwtConfig,
		clock:     clk,
	}
}

// Guest issues a fresh player identity. Balances are created lazily on
// first settlement, so nothing is persisted here.
func (s *serv) Guest(ctx context.Context) (*model.AuthData, error) {
	playerID := uuid.NewString()

	accessToken, err := token.GenerateAccessToken(
		playerID,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration(),
		s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	log.WithField("player", playerID).Info("guest session opened")

	return &model.AuthData{
		AccessToken: accessToken,
		PlayerID:    playerID,
	}, nil
}

func (s *serv) PlayerID(ctx context.Context, accessToken string) (string, error) {
	claims, err := token.VerifyToken(accessToken, s.jwtConfig.AccessTokenSecretKey())
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrUnauthorized, err)
	}
	return claims.Subject, nil
}
