package balance_repo

import (
	"context"
	"royal_casino/internal/repository"
	"sync"
)

type memoryRepo struct {
	mtx      sync.RWMutex
	balances map[string]int
}

func NewMemoryRepository() repository.BalanceRepository {
	return &memoryRepo{
		balances: make(map[string]int),
	}
}

func (r *memoryRepo) GetBalance(_ context.Context, playerID string) (int, bool, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	b, ok := r.balances[playerID]
	return b, ok, nil
}

func (r *memoryRepo) UpdateBalance(_ context.Context, playerID string, balance int) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.balances[playerID] = balance
	return nil
}
