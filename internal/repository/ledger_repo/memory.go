package ledger_repo

import (
	"context"
	"royal_casino/internal/model"
	"royal_casino/internal/repository"
	"sync"
)

type memoryRepo struct {
	mtx     sync.RWMutex
	cap     int
	entries map[string][]model.LedgerEntry
}

// NewMemoryRepository keeps at most capacity entries per player, newest first.
func NewMemoryRepository(capacity int) repository.LedgerRepository {
	if capacity <= 0 {
		capacity = model.LedgerCap
	}
	return &memoryRepo{
		cap:     capacity,
		entries: make(map[string][]model.LedgerEntry),
	}
}

func (r *memoryRepo) Append(_ context.Context, entry model.LedgerEntry) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	list := r.entries[entry.PlayerID]
	list = append([]model.LedgerEntry{entry}, list...)
	if len(list) > r.cap {
		list = list[:r.cap]
	}
	r.entries[entry.PlayerID] = list
	return nil
}

func (r *memoryRepo) Recent(_ context.Context, playerID string, limit int) ([]model.LedgerEntry, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	list := r.entries[playerID]
	if limit <= 0 || limit > len(list) {
		limit = len(list)
	}
	out := make([]model.LedgerEntry, limit)
	copy(out, list[:limit])
	return out, nil
}
