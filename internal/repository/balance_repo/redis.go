package balance_repo

import (
	"context"
	"errors"
	"fmt"
	"royal_casino/internal/repository"

	"github.com/redis/go-redis/v9"
)

const balanceKeyPrefix = "balance:"

type redisRepo struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) repository.BalanceRepository {
	return &redisRepo{
		client: client,
	}
}

func balanceKey(playerID string) string {
	return balanceKeyPrefix + playerID
}

// GetBalance reads balance:<player>. A missing key is not an error.
func (r *redisRepo) GetBalance(ctx context.Context, playerID string) (int, bool, error) {
	balance, err := r.client.Get(ctx, balanceKey(playerID)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("redis get balance: %w", err)
	}
	return balance, true, nil
}

func (r *redisRepo) UpdateBalance(ctx context.Context, playerID string, balance int) error {
	if err := r.client.Set(ctx, balanceKey(playerID), balance, 0).Err(); err != nil {
		return fmt.Errorf("redis set balance: %w", err)
	}
	return nil
}
