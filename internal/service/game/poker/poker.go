package poker

import (
	"context"
	"fmt"
	"royal_casino/internal/cards"
	"royal_casino/internal/config"
	"royal_casino/internal/model"
	"royal_casino/internal/service"
	"royal_casino/internal/service/game"
	"royal_casino/pkg/rng"
	"sync"
)

// Street is the number of community cards face up.
type Street string

const (
	StreetPreflop  Street = "PREFLOP"
	StreetFlop     Street = "FLOP"
	StreetTurn     Street = "TURN"
	StreetRiver    Street = "RIVER"
	StreetShowdown Street = "SHOWDOWN"
)

var visible = map[Street]int{
	StreetPreflop:  0,
	StreetFlop:     3,
	StreetTurn:     4,
	StreetRiver:    5,
	StreetShowdown: 5,
}

var next = map[Street]Street{
	StreetPreflop: StreetFlop,
	StreetFlop:    StreetTurn,
	StreetTurn:    StreetRiver,
	StreetRiver:   StreetShowdown,
}

type View struct {
	Street    Street           `json:"street"`
	Hole      []model.Card     `json:"hole"`
	Community []model.Card     `json:"community"`
	Hand      *cards.HandValue `json:"hand,omitempty"`
}

type serv struct {
	mu     sync.Mutex
	wallet service.Wallet
	src    rng.Source
	table  config.PokerTable

	round     game.Round
	street    Street
	hole      []model.Card
	community []model.Card
	hand      *cards.HandValue
}

func NewPokerService(w service.Wallet, src rng.Source, table config.PokerTable) service.GameEngine {
	return &serv{
		wallet: w,
		src:    src,
		table:  table,
		round:  game.NewRound(model.Poker),
		street: StreetPreflop,
	}
}

func (s *serv) Kind() model.GameKind {
	return model.Poker
}

// PlaceBet deals two hole cards and the five community cards face down.
func (s *serv) PlaceBet(ctx context.Context, amount int, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.round.Active() {
		return model.ErrRoundInProgress
	}
	s.round.Reset()
	s.hole, s.community, s.hand = nil, nil, nil
	s.street = StreetPreflop

	deck := cards.NewStandard(s.src)
	if err := s.round.Stake(ctx, s.wallet, amount, ""); err != nil {
		return err
	}

	hole, err := deck.Draw(2)
	if err != nil {
		return err
	}
	community, err := deck.Draw(5)
	if err != nil {
		return err
	}
	s.hole, s.community = hole, community
	s.round.Message = string(s.street)
	return nil
}

func (s *serv) Act(ctx context.Context, action model.Action) error {
	if action.Name != "next" {
		return game.UnknownAction(model.Poker, action.Name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.round.Active() {
		return model.ErrNoActiveRound
	}
	s.street = next[s.street]
	if s.street == StreetShowdown {
		_, err := s.showdown(ctx)
		return err
	}
	s.round.Message = string(s.street)
	return nil
}

// Resolve goes straight to showdown from any street.
func (s *serv) Resolve(ctx context.Context) (*model.RoundResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.round.Active() {
		return nil, model.ErrNoActiveRound
	}
	s.street = StreetShowdown
	return s.showdown(ctx)
}

func (s *serv) showdown(ctx context.Context) (*model.RoundResult, error) {
	all := append(append([]model.Card(nil), s.hole...), s.community...)
	hv, err := cards.EvaluateBest(all)
	if err != nil {
		return nil, err
	}
	s.hand = &hv

	stake := s.round.Bet.Amount
	payout := 0
	if hv.Category >= cards.Pair {
		payout = game.Floor(stake, s.table.Base+float64(hv.Category)*s.table.Step)
	}

	detail := hv.Category.String()
	if d := cards.Describe(all); d != "" {
		detail = fmt.Sprintf("%s (%s)", detail, d)
	}
	return s.round.Settle(ctx, s.wallet, stake, payout, hv.Category.String(), detail)
}

func (s *serv) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		Street: s.street,
		Hole:   append([]model.Card(nil), s.hole...),
	}
	if n := visible[s.street]; n <= len(s.community) {
		v.Community = append([]model.Card(nil), s.community[:n]...)
	}
	if s.hand != nil {
		hv := *s.hand
		v.Hand = &hv
	}
	return s.round.Snapshot(v)
}
