package videopoker

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

const HandSize = 5

type View struct {
	Hand []model.Card     `json:"hand"`
	Held []bool           `json:"held"`
	Eval *cards.HandValue `json:"eval,omitempty"`
}

type serv struct {
	mu     sync.Mutex
	wallet service.Wallet
	src    rng.Source
	table  config.VideoPokerTable

	round game.Round
	deck  cards.Deck
	hand  []model.Card
	held  [HandSize]bool
	eval  *cards.HandValue
}

func NewVideoPokerService(w service.Wallet, src rng.Source, table config.VideoPokerTable) service.GameEngine {
	return &serv{
		wallet: w,
		src:    src,
		table:  table,
		round:  game.NewRound(model.VideoPoker),
	}
}

func (s *serv) Kind() model.GameKind {
	return model.VideoPoker
}

func (s *serv) PlaceBet(ctx context.Context, amount int, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.round.Active() {
		return model.ErrRoundInProgress
	}
	s.round.Reset()
	s.hand, s.eval = nil, nil
	s.held = [HandSize]bool{}

	s.deck = cards.NewStandard(s.src)
	if err := s.round.Stake(ctx, s.wallet, amount, ""); err != nil {
		return err
	}
	hand, err := s.deck.Draw(HandSize)
	if err != nil {
		return err
	}
	s.hand = hand
	s.round.Message = "Hold cards, then draw"
	return nil
}

// Act "hold" toggles the hold flag on Index, or on every entry of Indices.
func (s *serv) Act(ctx context.Context, action model.Action) error {
	switch action.Name {
	case "hold":
	case "draw":
		_, err := s.Resolve(ctx)
		return err
	default:
		return game.UnknownAction(model.VideoPoker, action.Name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.round.Active() {
		return model.ErrNoActiveRound
	}
	indices := action.Indices
	if len(indices) == 0 {
		indices = []int{action.Index}
	}
	for _, i := range indices {
		if i < 0 || i >= HandSize {
			return fmt.Errorf("hold index %d: %w", i, model.ErrInvalidSelection)
		}
	}
	for _, i := range indices {
		s.held[i] = !s.held[i]
	}
	return nil
}

// Resolve replaces every card not held and pays by the final hand.
func (s *serv) Resolve(ctx context.Context) (*model.RoundResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.round.Active() {
		return nil, model.ErrNoActiveRound
	}

	for i := range s.hand {
		if s.held[i] {
			continue
		}
		c, err := s.deck.DrawOne()
		if err != nil {
			return nil, err
		}
		s.hand[i] = c
	}

	hv, err := cards.Evaluate5(s.hand)
	if err != nil {
		return nil, err
	}
	s.eval = &hv

	mult := s.table.Payouts[int(hv.Category)]
	if hv.Category == cards.Pair && !cards.IsJacksOrBetter(hv) {
		mult = 0
	}
	stake := s.round.Bet.Amount
	return s.round.Settle(ctx, s.wallet, stake, stake*mult, hv.Name, cards.Describe(s.hand))
}

func (s *serv) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		Hand: append([]model.Card(nil), s.hand...),
		Held: append([]bool(nil), s.held[:]...),
	}
	if s.eval != nil {
		hv := *s.eval
		v.Eval = &hv
	}
	return s.round.Snapshot(v)
}
