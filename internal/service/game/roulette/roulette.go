package roulette

import (
	"context"
	"fmt"
	"royal_casino/internal/config"
	"royal_casino/internal/model"
	"royal_casino/internal/service"
	"royal_casino/internal/service/game"
	"royal_casino/pkg/rng"
	"strconv"
	"strings"
	"sync"
)

const (
	BetRed   = "RED"
	BetBlack = "BLACK"
	BetGreen = "GREEN"
)

// View is the roulette state shown to the player.
type View struct {
	LastNumber *int   `json:"last_number,omitempty"`
	LastColor  string `json:"last_color,omitempty"`
	History    []int  `json:"history"`
}

type serv struct {
	mu     sync.Mutex
	wallet service.Wallet
	src    rng.Source
	table  config.RouletteTable
	red    map[int]bool

	round   game.Round
	history []int
	last    *int
}

func NewRouletteService(w service.Wallet, src rng.Source, table config.RouletteTable) service.GameEngine {
	red := make(map[int]bool, len(table.Red))
	for _, n := range table.Red {
		red[n] = true
	}
	return &serv{
		wallet: w,
		src:    src,
		table:  table,
		red:    red,
		round:  game.NewRound(model.Roulette),
	}
}

func (s *serv) Kind() model.GameKind {
	return model.Roulette
}

// Color of a pocket. Zero is neither red nor black.
func (s *serv) Color(n int) string {
	switch {
	case n == 0:
		return BetGreen
	case s.red[n]:
		return BetRed
	}
	return BetBlack
}

// PlaceBet adds to a bet of the same type. Switching type refunds the prior
// amount before the new one is debited.
func (s *serv) PlaceBet(ctx context.Context, amount int, selection string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	betType := strings.ToUpper(strings.TrimSpace(selection))
	switch betType {
	case BetRed, BetBlack, BetGreen:
	default:
		return fmt.Errorf("roulette bet %q: %w", selection, model.ErrInvalidSelection)
	}
	return s.round.AddBet(ctx, s.wallet, amount, betType)
}

func (s *serv) Act(ctx context.Context, action model.Action) error {
	switch action.Name {
	case "clear":
		return s.clear(ctx)
	case "spin":
		_, err := s.Resolve(ctx)
		return err
	}
	return game.UnknownAction(model.Roulette, action.Name)
}

// clear refunds the pending bet.
func (s *serv) clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.round.Refund(ctx, s.wallet)
}

func (s *serv) Resolve(ctx context.Context) (*model.RoundResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.round.Bet.Active {
		return nil, model.ErrNoActiveRound
	}

	n := s.table.Wheel[s.src.Intn(len(s.table.Wheel))]
	return s.settle(ctx, n)
}

func (s *serv) settle(ctx context.Context, n int) (*model.RoundResult, error) {
	color := s.Color(n)
	bet := s.round.Bet

	payout := 0
	if bet.Type == color {
		mult := s.table.ColorMultiplier
		if color == BetGreen {
			mult = s.table.GreenMultiplier
		}
		payout = bet.Amount * mult
	}

	s.last = &n
	s.history = append([]int{n}, s.history...)
	if len(s.history) > 10 {
		s.history = s.history[:10]
	}

	return s.round.Settle(ctx, s.wallet, bet.Amount, payout, color, strconv.Itoa(n))
}

func (s *serv) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{History: append([]int(nil), s.history...)}
	if s.last != nil {
		n := *s.last
		v.LastNumber = &n
		v.LastColor = s.Color(n)
	}
	return s.round.Snapshot(v)
}
