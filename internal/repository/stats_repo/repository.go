package stats_repo

import (
	"royal_casino/internal/model"
	"sort"
	"sync"
	"time"
)

const defaultWindowSize = 500

// StateRepo keeps return-to-player statistics per game in memory.
type StateRepo struct {
	mtx        sync.RWMutex
	windowSize int
	games      map[model.GameKind]*model.GameStats
}

// NewStatsRepository - windowSize <= 0 uses the default window of 500 rounds
func NewStatsRepository(windowSize int) *StateRepo {
	if windowSize <= 0 {
		windowSize = defaultWindowSize
	}
	return &StateRepo{
		windowSize: windowSize,
		games:      make(map[model.GameKind]*model.GameStats),
	}
}

// Record - adds a settled round to the totals and the sliding window
func (r *StateRepo) Record(game model.GameKind, stake, payout float64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	st, ok := r.games[game]
	if !ok {
		st = &model.GameStats{Game: game, WindowSize: r.windowSize}
		r.games[game] = st
	}

	st.TotalRounds++
	st.TotalStake += stake
	st.TotalPayout += payout
	if st.TotalStake > 0 {
		st.CurrentRTP = st.TotalPayout / st.TotalStake * 100
	}

	roundRTP := 0.0
	if stake > 0 {
		roundRTP = payout / stake * 100
	}
	st.Window = append(st.Window, model.RoundSample{
		Stake:  stake,
		Payout: payout,
		RTP:    roundRTP,
	})
	if len(st.Window) > st.WindowSize {
		st.Window = st.Window[1:]
	}

	var windowStake, windowPayout float64
	for _, s := range st.Window {
		windowStake += s.Stake
		windowPayout += s.Payout
	}
	if windowStake > 0 {
		st.WindowRTP = windowPayout / windowStake * 100
	} else {
		st.WindowRTP = 0
	}
	st.LastUpdate = time.Now()
}

// GameStats - copy of the game's statistics
func (r *StateRepo) GameStats(game model.GameKind) model.GameStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	st, ok := r.games[game]
	if !ok {
		return model.GameStats{Game: game, WindowSize: r.windowSize}
	}
	out := *st
	out.Window = append([]model.RoundSample(nil), st.Window...)
	return out
}

// All - statistics of every game that has settled at least one round
func (r *StateRepo) All() []model.GameStats {
	r.mtx.RLock()
	keys := make([]model.GameKind, 0, len(r.games))
	for k := range r.games {
		keys = append(keys, k)
	}
	r.mtx.RUnlock()

	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	out := make([]model.GameStats, 0, len(keys))
	for _, k := range keys {
		out = append(out, r.GameStats(k))
	}
	return out
}
