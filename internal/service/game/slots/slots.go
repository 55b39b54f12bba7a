package slots

import (
	"context"
	"royal_casino/internal/config"
	"royal_casino/internal/model"
	"royal_casino/internal/service"
	"royal_casino/internal/service/game"
	"royal_casino/pkg/rng"
	"strings"
	"sync"
)

const Reels = 3

type View struct {
	Reels []string `json:"reels"`
}

type serv struct {
	mu     sync.Mutex
	wallet service.Wallet
	src    rng.Source
	table  config.SlotsTable

	round game.Round
	reels []string
}

func NewSlotsService(w service.Wallet, src rng.Source, table config.SlotsTable) service.GameEngine {
	return &serv{
		wallet: w,
		src:    src,
		table:  table,
		round:  game.NewRound(model.Slots),
	}
}

func (s *serv) Kind() model.GameKind {
	return model.Slots
}

func (s *serv) PlaceBet(ctx context.Context, amount int, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.round.Active() {
		return model.ErrRoundInProgress
	}
	s.round.Reset()
	if err := s.round.Stake(ctx, s.wallet, amount, ""); err != nil {
		return err
	}
	s.round.Message = "Spin"
	return nil
}

func (s *serv) Act(ctx context.Context, action model.Action) error {
	if action.Name != "spin" {
		return game.UnknownAction(model.Slots, action.Name)
	}
	_, err := s.Resolve(ctx)
	return err
}

// Resolve spins three reels. Three of a kind pays the symbol multiplier,
// any two matching pays the pair multiplier.
func (s *serv) Resolve(ctx context.Context) (*model.RoundResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.round.Active() {
		return nil, model.ErrNoActiveRound
	}

	picks := make([]config.SlotSymbol, Reels)
	s.reels = make([]string, Reels)
	for i := range picks {
		picks[i] = s.table.Symbols[s.src.Intn(len(s.table.Symbols))]
		s.reels[i] = picks[i].Symbol
	}

	stake := s.round.Bet.Amount
	payout, label := 0, "NO MATCH"
	switch {
	case picks[0].Symbol == picks[1].Symbol && picks[1].Symbol == picks[2].Symbol:
		payout, label = stake*picks[0].Multiplier, "JACKPOT"
	case picks[0].Symbol == picks[1].Symbol || picks[1].Symbol == picks[2].Symbol || picks[0].Symbol == picks[2].Symbol:
		payout, label = game.Floor(stake, s.table.PairMultiplier), "PAIR"
	}
	return s.round.Settle(ctx, s.wallet, stake, payout, label, strings.Join(s.reels, " "))
}

func (s *serv) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.round.Snapshot(View{Reels: append([]string(nil), s.reels...)})
}
