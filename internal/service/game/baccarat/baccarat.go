package baccarat

import (
	"context"
	"fmt"
	"royal_casino/internal/cards"
	"royal_casino/internal/config"
	"royal_casino/internal/model"
	"royal_casino/internal/service"
	"royal_casino/internal/service/game"
	"royal_casino/pkg/rng"
	"strings"
	"sync"
)

const (
	BetPlayer = "PLAYER"
	BetBanker = "BANKER"
	BetTie    = "TIE"
)

type View struct {
	Player      []model.Card `json:"player"`
	Banker      []model.Card `json:"banker"`
	PlayerScore int          `json:"player_score"`
	BankerScore int          `json:"banker_score"`
}

type serv struct {
	mu     sync.Mutex
	wallet service.Wallet
	src    rng.Source
	table  config.BaccaratTable

	round  game.Round
	player []model.Card
	banker []model.Card
}

func NewBaccaratService(w service.Wallet, src rng.Source, table config.BaccaratTable) service.GameEngine {
	return &serv{
		wallet: w,
		src:    src,
		table:  table,
		round:  game.NewRound(model.Baccarat),
	}
}

func (s *serv) Kind() model.GameKind {
	return model.Baccarat
}

func (s *serv) PlaceBet(ctx context.Context, amount int, selection string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	betType := strings.ToUpper(strings.TrimSpace(selection))
	switch betType {
	case BetPlayer, BetBanker, BetTie:
	default:
		return fmt.Errorf("baccarat bet %q: %w", selection, model.ErrInvalidSelection)
	}
	if s.round.Phase == model.PhaseResolved {
		s.player, s.banker = nil, nil
	}
	return s.round.AddBet(ctx, s.wallet, amount, betType)
}

func (s *serv) Act(ctx context.Context, action model.Action) error {
	switch action.Name {
	case "clear":
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.round.Refund(ctx, s.wallet)
	case "deal":
		_, err := s.Resolve(ctx)
		return err
	}
	return game.UnknownAction(model.Baccarat, action.Name)
}

// Resolve deals from a fresh deck. Without a natural 8 or 9, each side
// draws a third card on 5 or less.
func (s *serv) Resolve(ctx context.Context) (*model.RoundResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.round.Bet.Active {
		return nil, model.ErrNoActiveRound
	}
	return s.deal(ctx, cards.NewStandard(s.src))
}

func (s *serv) deal(ctx context.Context, deck cards.Deck) (*model.RoundResult, error) {
	p, err := deck.Draw(2)
	if err != nil {
		return nil, err
	}
	b, err := deck.Draw(2)
	if err != nil {
		return nil, err
	}

	ps, bs := cards.BaccaratScore(p), cards.BaccaratScore(b)
	if ps < 8 && bs < 8 {
		if ps <= 5 {
			c, err := deck.DrawOne()
			if err != nil {
				return nil, err
			}
			p = append(p, c)
		}
		if bs <= 5 {
			c, err := deck.DrawOne()
			if err != nil {
				return nil, err
			}
			b = append(b, c)
		}
	}
	s.player, s.banker = p, b
	ps, bs = cards.BaccaratScore(p), cards.BaccaratScore(b)

	bet := s.round.Bet
	payout, label := 0, "HOUSE WINS"
	switch {
	case ps > bs && bet.Type == BetPlayer:
		payout, label = game.Floor(bet.Amount, s.table.Player), "PLAYER WINS"
	case bs > ps && bet.Type == BetBanker:
		payout, label = game.Floor(bet.Amount, s.table.Banker), "BANKER WINS"
	case ps == bs && bet.Type == BetTie:
		payout, label = game.Floor(bet.Amount, s.table.Tie), "TIE"
	case ps == bs:
		payout, label = bet.Amount, "PUSH"
	}
	return s.round.Settle(ctx, s.wallet, bet.Amount, payout, label, fmt.Sprintf("player %d, banker %d", ps, bs))
}

func (s *serv) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.round.Snapshot(View{
		Player:      append([]model.Card(nil), s.player...),
		Banker:      append([]model.Card(nil), s.banker...),
		PlayerScore: cards.BaccaratScore(s.player),
		BankerScore: cards.BaccaratScore(s.banker),
	})
}
