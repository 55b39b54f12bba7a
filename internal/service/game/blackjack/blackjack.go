package blackjack

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

// View hides the dealer's hole card until the round resolves.
type View struct {
	Player      []model.Card `json:"player"`
	Dealer      []model.Card `json:"dealer"`
	PlayerScore int          `json:"player_score"`
	DealerScore int          `json:"dealer_score,omitempty"`
	HoleHidden  bool         `json:"hole_hidden"`
}

type serv struct {
	mu     sync.Mutex
	wallet service.Wallet
	src    rng.Source
	table  config.BlackjackTable

	round  game.Round
	deck   cards.Deck
	player []model.Card
	dealer []model.Card
}

func NewBlackjackService(w service.Wallet, src rng.Source, table config.BlackjackTable) service.GameEngine {
	return &serv{
		wallet: w,
		src:    src,
		table:  table,
		round:  game.NewRound(model.Blackjack),
		deck:   cards.NewStandard(src),
	}
}

func (s *serv) Kind() model.GameKind {
	return model.Blackjack
}

// draw tops the shoe up from a fresh deck, minus the cards on the table,
// whenever it runs short mid-round.
func (s *serv) draw(n int) ([]model.Card, error) {
	if s.deck.Len() < n {
		s.deck = cards.NewStandard(s.src).Without(s.player, s.dealer)
	}
	return s.deck.Draw(n)
}

func (s *serv) drawOne() (model.Card, error) {
	c, err := s.draw(1)
	if err != nil {
		return model.Card{}, err
	}
	return c[0], nil
}

// PlaceBet deals two cards each. A two-card 21 settles immediately.
func (s *serv) PlaceBet(ctx context.Context, amount int, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.round.Active() {
		return model.ErrRoundInProgress
	}
	s.round.Reset()
	s.player, s.dealer = nil, nil

	if s.deck.Len() < s.table.ReshuffleBelow {
		s.deck = cards.NewStandard(s.src)
	}

	err := s.round.Stake(ctx, s.wallet, amount, "")
	if err != nil {
		return err
	}

	if s.player, err = s.draw(2); err != nil {
		return err
	}
	if s.dealer, err = s.draw(2); err != nil {
		return err
	}

	if cards.IsBlackjack(s.player) {
		_, err := s.round.Settle(ctx, s.wallet, amount, game.Floor(amount, s.table.BlackjackPayout), "BLACKJACK", s.detail())
		return err
	}
	s.round.Message = "Hit or Stand?"
	return nil
}

func (s *serv) Act(ctx context.Context, action model.Action) error {
	switch action.Name {
	case "hit":
		return s.hit(ctx)
	case "stand":
		_, err := s.Resolve(ctx)
		return err
	}
	return game.UnknownAction(model.Blackjack, action.Name)
}

func (s *serv) hit(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.round.Active() {
		return model.ErrNoActiveRound
	}
	c, err := s.drawOne()
	if err != nil {
		return err
	}
	s.player = append(s.player, c)

	if cards.BlackjackScore(s.player) > 21 {
		_, err := s.round.Settle(ctx, s.wallet, s.round.Bet.Amount, 0, "BUST", s.detail())
		return err
	}
	return nil
}

// Resolve stands: the dealer draws below the stand threshold, then hands
// are compared.
func (s *serv) Resolve(ctx context.Context) (*model.RoundResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.round.Active() {
		return nil, model.ErrNoActiveRound
	}

	for cards.BlackjackScore(s.dealer) < s.table.DealerStand {
		c, err := s.drawOne()
		if err != nil {
			return nil, err
		}
		s.dealer = append(s.dealer, c)
	}

	stake := s.round.Bet.Amount
	p, d := cards.BlackjackScore(s.player), cards.BlackjackScore(s.dealer)

	var (
		payout int
		label  string
	)
	switch {
	case p > 21:
		label = "BUST"
	case d > 21 || p > d:
		payout, label = stake*s.table.WinMultiplier, "WIN"
	case p == d:
		payout, label = stake, "PUSH"
	default:
		label = "HOUSE WINS"
	}
	return s.round.Settle(ctx, s.wallet, stake, payout, label, s.detail())
}

func (s *serv) detail() string {
	return fmt.Sprintf("player %d, dealer %d", cards.BlackjackScore(s.player), cards.BlackjackScore(s.dealer))
}

func (s *serv) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		Player:      append([]model.Card(nil), s.player...),
		PlayerScore: cards.BlackjackScore(s.player),
	}
	if s.round.Active() && len(s.dealer) > 0 {
		v.Dealer = []model.Card{s.dealer[0]}
		v.HoleHidden = true
	} else {
		v.Dealer = append([]model.Card(nil), s.dealer...)
		v.DealerScore = cards.BlackjackScore(s.dealer)
	}
	return s.round.Snapshot(v)
}
