package settlement

import (
	"context"
	"fmt"
	"royal_casino/internal/clock"
	"royal_casino/internal/model"
	"royal_casino/internal/repository"
	"royal_casino/internal/service"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// TxManager runs fn atomically. trm.Manager satisfies it.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type passThroughTx struct{}

// NewPassThroughTx is used with stores that have no transactions.
func NewPassThroughTx() TxManager {
	return passThroughTx{}
}

func (passThroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type serv struct {
	balances  repository.BalanceRepository
	ledger    repository.LedgerRepository
	txManager TxManager
	clock     clock.Clock
	initial   int

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewSettlementService(
	balances repository.BalanceRepository,
	ledger repository.LedgerRepository,
	txManager TxManager,
	clk clock.Clock,
	initialBalance int,
) service.SettlementService {
	if txManager == nil {
		txManager = NewPassThroughTx()
	}
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &serv{
		balances:  balances,
		ledger:    ledger,
		txManager: txManager,
		clock:     clk,
		initial:   initialBalance,
		locks:     make(map[string]*sync.Mutex),
	}
}

// ApplyDelta is the clamped balance update: max(0, balance+delta).
func ApplyDelta(balance, delta int) int {
	next := balance + delta
	if next < 0 {
		return 0
	}
	return next
}

func (s *serv) lock(playerID string) func() {
	s.mu.Lock()
	m, ok := s.locks[playerID]
	if !ok {
		m = &sync.Mutex{}
		s.locks[playerID] = m
	}
	s.mu.Unlock()

	m.Lock()
	return m.Unlock
}

func (s *serv) load(ctx context.Context, playerID string) (int, error) {
	balance, found, err := s.balances.GetBalance(ctx, playerID)
	if err != nil {
		return 0, fmt.Errorf("load balance: %w", err)
	}
	if !found {
		return s.initial, nil
	}
	return balance, nil
}

func (s *serv) Balance(ctx context.Context, playerID string) (int, error) {
	return s.load(ctx, playerID)
}

// settle stores the new balance and, for a non-zero delta, exactly one
// ledger entry. Caller holds the player lock.
func (s *serv) settle(ctx context.Context, playerID string, game model.GameKind, delta int, check func(balance int) error) (int, error) {
	var next int
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, err := s.load(txCtx, playerID)
		if err != nil {
			return err
		}
		if check != nil {
			if err := check(balance); err != nil {
				return err
			}
		}

		next = ApplyDelta(balance, delta)
		if err := s.balances.UpdateBalance(txCtx, playerID, next); err != nil {
			return fmt.Errorf("save balance: %w", err)
		}
		if delta == 0 {
			return nil
		}

		entry := model.LedgerEntry{
			ID:        uuid.NewString(),
			PlayerID:  playerID,
			Game:      game,
			Amount:    abs(delta),
			Result:    model.LedgerLoss,
			Timestamp: s.clock.Now(),
		}
		if delta > 0 {
			entry.Result = model.LedgerWin
		}
		if err := s.ledger.Append(txCtx, entry); err != nil {
			return fmt.Errorf("append ledger: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.WithFields(log.Fields{
		"player":  playerID,
		"game":    game,
		"delta":   delta,
		"balance": next,
	}).Debug("settled")
	return next, nil
}

func (s *serv) Apply(ctx context.Context, playerID string, game model.GameKind, delta int) (int, error) {
	unlock := s.lock(playerID)
	defer unlock()
	return s.settle(ctx, playerID, game, delta, nil)
}

func (s *serv) Adjust(ctx context.Context, playerID string, delta func(balance int) int) (int, error) {
	unlock := s.lock(playerID)
	defer unlock()

	var next int
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, err := s.load(txCtx, playerID)
		if err != nil {
			return err
		}
		next = ApplyDelta(balance, delta(balance))
		if err := s.balances.UpdateBalance(txCtx, playerID, next); err != nil {
			return fmt.Errorf("save balance: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return next, nil
}

func (s *serv) Debit(ctx context.Context, playerID string, game model.GameKind, amount int) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("debit %d: %w", amount, model.ErrInvalidSelection)
	}
	unlock := s.lock(playerID)
	defer unlock()

	return s.settle(ctx, playerID, game, -amount, func(balance int) error {
		if amount > balance {
			return model.ErrInsufficientFunds
		}
		return nil
	})
}

func (s *serv) Credit(ctx context.Context, playerID string, game model.GameKind, amount int) (int, error) {
	if amount < 0 {
		return 0, fmt.Errorf("credit %d: %w", amount, model.ErrInvalidSelection)
	}
	if amount == 0 {
		return s.Balance(ctx, playerID)
	}
	unlock := s.lock(playerID)
	defer unlock()
	return s.settle(ctx, playerID, game, amount, nil)
}

func (s *serv) Ledger(ctx context.Context, playerID string) ([]model.LedgerEntry, error) {
	return s.ledger.Recent(ctx, playerID, model.LedgerCap)
}

func (s *serv) Wallet(playerID string) service.Wallet {
	return &wallet{s: s, playerID: playerID}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
