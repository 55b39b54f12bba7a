package keno

import (
	"context"
	"fmt"
	"royal_casino/internal/config"
	"royal_casino/internal/model"
	"royal_casino/internal/service"
	"royal_casino/internal/service/game"
	"royal_casino/pkg/rng"
	"sort"
	"strconv"
	"strings"
	"sync"
)

type View struct {
	Picks []int `json:"picks"`
	Drawn []int `json:"drawn,omitempty"`
	Hits  int   `json:"hits"`
}

type serv struct {
	mu     sync.Mutex
	wallet service.Wallet
	src    rng.Source
	table  config.KenoTable

	round game.Round
	picks []int
	drawn []int
	hits  int
}

func NewKenoService(w service.Wallet, src rng.Source, table config.KenoTable) service.GameEngine {
	steps := append([]config.KenoStep(nil), table.Steps...)
	sort.Slice(steps, func(i, j int) bool { return steps[i].Hits > steps[j].Hits })
	table.Steps = steps

	return &serv{
		wallet: w,
		src:    src,
		table:  table,
		round:  game.NewRound(model.Keno),
	}
}

func (s *serv) Kind() model.GameKind {
	return model.Keno
}

// ParsePicks reads a comma separated list of unique numbers in [1, pool].
func ParsePicks(selection string, pool, max int) ([]int, error) {
	fields := strings.FieldsFunc(selection, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) == 0 || len(fields) > max {
		return nil, fmt.Errorf("keno picks %q: %w", selection, model.ErrInvalidSelection)
	}

	seen := make(map[int]bool, len(fields))
	picks := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 || n > pool || seen[n] {
			return nil, fmt.Errorf("keno pick %q: %w", f, model.ErrInvalidSelection)
		}
		seen[n] = true
		picks = append(picks, n)
	}
	sort.Ints(picks)
	return picks, nil
}

// multiplier walks the steps from the highest hit threshold down.
func (s *serv) multiplier(hits int) int {
	for _, st := range s.table.Steps {
		if hits >= st.Hits {
			return st.Multiplier
		}
	}
	return 0
}

func (s *serv) PlaceBet(ctx context.Context, amount int, selection string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.round.Active() {
		return model.ErrRoundInProgress
	}
	picks, err := ParsePicks(selection, s.table.Pool, s.table.MaxPicks)
	if err != nil {
		return err
	}

	s.round.Reset()
	s.drawn, s.hits = nil, 0
	if err := s.round.Stake(ctx, s.wallet, amount, selection); err != nil {
		return err
	}
	s.picks = picks
	s.round.Message = "Ready to draw"
	return nil
}

func (s *serv) Act(ctx context.Context, action model.Action) error {
	if action.Name != "draw" {
		return game.UnknownAction(model.Keno, action.Name)
	}
	_, err := s.Resolve(ctx)
	return err
}

// Resolve draws numbers without replacement and pays by hit count.
func (s *serv) Resolve(ctx context.Context) (*model.RoundResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.round.Active() {
		return nil, model.ErrNoActiveRound
	}

	drawn := rng.Sample(s.src, s.table.Pool, s.table.Drawn)
	s.drawn = make([]int, len(drawn))
	hit := make(map[int]bool, len(drawn))
	for i, d := range drawn {
		s.drawn[i] = d + 1
		hit[d+1] = true
	}
	s.hits = 0
	for _, p := range s.picks {
		if hit[p] {
			s.hits++
		}
	}

	stake := s.round.Bet.Amount
	label := fmt.Sprintf("%d HITS", s.hits)
	return s.round.Settle(ctx, s.wallet, stake, stake*s.multiplier(s.hits), label, "")
}

func (s *serv) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.round.Snapshot(View{
		Picks: append([]int(nil), s.picks...),
		Drawn: append([]int(nil), s.drawn...),
		Hits:  s.hits,
	})
}
