package vault_repo

import (
	"context"
	"royal_casino/internal/repository"
	"sync"
)

type memoryRepo struct {
	mtx   sync.RWMutex
	owned map[string]map[string]bool
}

func NewMemoryRepository() repository.VaultRepository {
	return &memoryRepo{
		owned: make(map[string]map[string]bool),
	}
}

func (r *memoryRepo) Owned(_ context.Context, playerID string) (map[string]bool, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	out := make(map[string]bool, len(r.owned[playerID]))
	for k, v := range r.owned[playerID] {
		out[k] = v
	}
	return out, nil
}

func (r *memoryRepo) AddOwned(_ context.Context, playerID, itemID string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	items, ok := r.owned[playerID]
	if !ok {
		items = make(map[string]bool)
		r.owned[playerID] = items
	}
	items[itemID] = true
	return nil
}
