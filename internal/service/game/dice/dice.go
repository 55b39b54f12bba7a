package dice

import (
	"context"
	"fmt"
	"royal_casino/internal/config"
	"royal_casino/internal/model"
	"royal_casino/internal/service"
	"royal_casino/internal/service/game"
	"royal_casino/pkg/rng"
	"slices"
	"sync"
)

type View struct {
	Dice  [2]int `json:"dice"`
	Point int    `json:"point,omitempty"`
	Rolls int    `json:"rolls"`
}

// serv plays pass-line craps. The stake is debited once at the come-out
// and stays on the table until the point resolves.
type serv struct {
	mu     sync.Mutex
	wallet service.Wallet
	src    rng.Source
	table  config.DiceTable

	round game.Round
	dice  [2]int
	point int
	rolls int
}

func NewDiceService(w service.Wallet, src rng.Source, table config.DiceTable) service.GameEngine {
	return &serv{
		wallet: w,
		src:    src,
		table:  table,
		round:  game.NewRound(model.Dice),
	}
}

func (s *serv) Kind() model.GameKind {
	return model.Dice
}

func (s *serv) PlaceBet(ctx context.Context, amount int, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.round.Active() {
		return model.ErrRoundInProgress
	}
	s.round.Reset()
	s.point, s.rolls = 0, 0
	if err := s.round.Stake(ctx, s.wallet, amount, ""); err != nil {
		return err
	}
	s.round.Message = "Come-out roll"
	return nil
}

func (s *serv) Act(ctx context.Context, action model.Action) error {
	if action.Name != "roll" {
		return game.UnknownAction(model.Dice, action.Name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.round.Active() {
		return model.ErrNoActiveRound
	}
	_, err := s.roll(ctx)
	return err
}

// Resolve keeps rolling until the round reaches a terminal result.
func (s *serv) Resolve(ctx context.Context) (*model.RoundResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.round.Active() {
		return nil, model.ErrNoActiveRound
	}
	for {
		res, err := s.roll(ctx)
		if err != nil || res != nil {
			return res, err
		}
	}
}

// roll throws both dice once. It returns a result only when the round ends.
func (s *serv) roll(ctx context.Context) (*model.RoundResult, error) {
	s.dice = [2]int{1 + s.src.Intn(6), 1 + s.src.Intn(6)}
	s.rolls++
	total := s.dice[0] + s.dice[1]
	stake := s.round.Bet.Amount
	win := stake * s.table.WinMultiplier

	if s.point == 0 {
		switch {
		case slices.Contains(s.table.Naturals, total):
			return s.round.Settle(ctx, s.wallet, stake, win, "NATURAL", s.detail())
		case slices.Contains(s.table.Craps, total):
			return s.round.Settle(ctx, s.wallet, stake, 0, "CRAPS", s.detail())
		}
		s.point = total
		s.round.Message = fmt.Sprintf("Point is %d", total)
		return nil, nil
	}

	switch total {
	case s.point:
		return s.round.Settle(ctx, s.wallet, stake, win, "POINT", s.detail())
	case 7:
		return s.round.Settle(ctx, s.wallet, stake, 0, "SEVEN OUT", s.detail())
	}
	s.round.Message = fmt.Sprintf("Rolled %d, point is %d", total, s.point)
	return nil, nil
}

func (s *serv) detail() string {
	return fmt.Sprintf("%d + %d", s.dice[0], s.dice[1])
}

func (s *serv) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.round.Snapshot(View{Dice: s.dice, Point: s.point, Rolls: s.rolls})
}
