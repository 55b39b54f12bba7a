package wheel

import (
	"context"
	"royal_casino/internal/config"
	"royal_casino/internal/model"
	"royal_casino/internal/service"
	"royal_casino/internal/service/game"
	"royal_casino/pkg/rng"
	"sync"
)

type View struct {
	Prizes []string `json:"prizes"`
	Last   string   `json:"last,omitempty"`
	Index  int      `json:"index"`
}

// serv is the free wheel of fortune. Spins cost nothing and may pay out
// the progressive jackpot.
type serv struct {
	mu      sync.Mutex
	wallet  service.Wallet
	src     rng.Source
	jackpot service.JackpotService
	table   []rng.Weighted[int]
	prizes  []config.WheelPrize

	round game.Round
	last  int
}

func NewWheelService(w service.Wallet, src rng.Source, jackpot service.JackpotService, table config.WheelTable) service.GameEngine {
	weighted := make([]rng.Weighted[int], len(table.Prizes))
	for i, p := range table.Prizes {
		weighted[i] = rng.Weighted[int]{Value: i, Probability: p.Probability}
	}
	return &serv{
		wallet:  w,
		src:     src,
		jackpot: jackpot,
		table:   weighted,
		prizes:  table.Prizes,
		round:   game.NewRound(model.Wheel),
		last:    -1,
	}
}

func (s *serv) Kind() model.GameKind {
	return model.Wheel
}

// PlaceBet only arms the wheel; nothing is debited.
func (s *serv) PlaceBet(_ context.Context, _ int, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.round.Reset()
	s.round.Message = "Spin the wheel"
	return nil
}

func (s *serv) Act(ctx context.Context, action model.Action) error {
	if action.Name != "spin" {
		return game.UnknownAction(model.Wheel, action.Name)
	}
	_, err := s.Resolve(ctx)
	return err
}

func (s *serv) Resolve(ctx context.Context) (*model.RoundResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.round.Reset()
	i := rng.WeightedPick(s.src, s.table)
	s.last = i
	prize := s.prizes[i]

	payout := prize.Amount
	if prize.Jackpot {
		payout = s.jackpot.Award()
	}
	res, err := s.round.Settle(ctx, s.wallet, 0, payout, prize.Label, "")
	if err != nil && prize.Jackpot {
		s.jackpot.Restore(payout)
	}
	return res, err
}

func (s *serv) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{Prizes: make([]string, len(s.prizes)), Index: s.last}
	for i, p := range s.prizes {
		v.Prizes[i] = p.Label
	}
	if s.last >= 0 {
		v.Last = s.prizes[s.last].Label
	}
	return s.round.Snapshot(v)
}
