package repository

import (
	"context"
	"royal_casino/internal/model"
)

// BalanceRepository is the external balance store. found is false when the
// player has never been saved.
type BalanceRepository interface {
	GetBalance(ctx context.Context, playerID string) (balance int, found bool, err error)
	UpdateBalance(ctx context.Context, playerID string, balance int) error
}

// LedgerRepository keeps settled entries. Recent returns newest first.
type LedgerRepository interface {
	Append(ctx context.Context, entry model.LedgerEntry) error
	Recent(ctx context.Context, playerID string, limit int) ([]model.LedgerEntry, error)
}

type StatsRepository interface {
	Record(game model.GameKind, stake, payout float64)
	GameStats(game model.GameKind) model.GameStats
	All() []model.GameStats
}

type VaultRepository interface {
	Owned(ctx context.Context, playerID string) (map[string]bool, error)
	AddOwned(ctx context.Context, playerID, itemID string) error
}
