package service

import (
	"context"
	"royal_casino/internal/model"
)

// Wallet is the settlement contract bound to one player. It is the only
// path through which an engine changes balance.
type Wallet interface {
	PlayerID() string
	Balance(ctx context.Context) (int, error)
	// Debit fails with model.ErrInsufficientFunds when amount exceeds the balance.
	Debit(ctx context.Context, game model.GameKind, amount int) (int, error)
	Credit(ctx context.Context, game model.GameKind, amount int) (int, error)
	// Apply settles a signed delta, clamping the balance at zero.
	Apply(ctx context.Context, game model.GameKind, delta int) (int, error)
}

type SettlementService interface {
	Wallet(playerID string) Wallet
	Balance(ctx context.Context, playerID string) (int, error)
	Apply(ctx context.Context, playerID string, game model.GameKind, delta int) (int, error)
	// Adjust applies delta(balance) under the player lock without a ledger entry.
	Adjust(ctx context.Context, playerID string, delta func(balance int) int) (int, error)
	Debit(ctx context.Context, playerID string, game model.GameKind, amount int) (int, error)
	Credit(ctx context.Context, playerID string, game model.GameKind, amount int) (int, error)
	Ledger(ctx context.Context, playerID string) ([]model.LedgerEntry, error)
}

// GameEngine is the shape shared by every game: place a bet, step through
// per-game actions, resolve to a terminal result.
type GameEngine interface {
	Kind() model.GameKind
	PlaceBet(ctx context.Context, amount int, selection string) error
	Act(ctx context.Context, action model.Action) error
	Resolve(ctx context.Context) (*model.RoundResult, error)
	Snapshot() model.Snapshot
}

// Ticker is implemented by engines whose rounds advance with time.
type Ticker interface {
	Tick(ctx context.Context) error
}

// EngineFactory builds a fresh engine for one player's wallet.
type EngineFactory func(w Wallet) GameEngine

type JackpotService interface {
	Value() int
	// Award returns the current jackpot and resets it to the floor.
	Award() int
	// Restore puts back an award whose credit failed.
	Restore(amount int)
	Tick() int
	Start(ctx context.Context)
	Stop()
}

type SessionService interface {
	PlaceBet(ctx context.Context, playerID string, game model.GameKind, amount int, selection string) (model.Snapshot, error)
	Act(ctx context.Context, playerID string, game model.GameKind, action model.Action) (model.Snapshot, error)
	Resolve(ctx context.Context, playerID string, game model.GameKind) (model.Snapshot, error)
	Snapshot(ctx context.Context, playerID string, game model.GameKind) (model.Snapshot, error)
	Overview(ctx context.Context, playerID string) (model.SessionView, error)
	Players() []string
	Start(ctx context.Context)
	Stop()
}

type NotificationService interface {
	Notify(n model.Notification)
	Close()
}

type AuthService interface {
	Guest(ctx context.Context) (*model.AuthData, error)
	PlayerID(ctx context.Context, accessToken string) (string, error)
}

type VaultService interface {
	Items(ctx context.Context, playerID string) ([]model.VaultItem, error)
	Purchase(ctx context.Context, playerID, itemID string) (model.VaultItem, error)
}

type ConciergeService interface {
	Ask(ctx context.Context, prompt string) model.ConciergeReply
}

type LeaderboardService interface {
	Standings(ctx context.Context, playerID string) ([]model.Standing, error)
}

type DividendService interface {
	Pay(ctx context.Context) int
	Start(ctx context.Context)
	Stop()
}
