package crash

import (
	"context"
	"fmt"
	"math"
	"royal_casino/internal/clock"
	"royal_casino/internal/config"
	"royal_casino/internal/model"
	"royal_casino/internal/service"
	"royal_casino/internal/service/game"
	"royal_casino/pkg/rng"
	"sync"
	"time"
)

type View struct {
	Multiplier float64   `json:"multiplier"`
	StartsAt   time.Time `json:"starts_at"`
	Flying     bool      `json:"flying"`
	// CrashPoint is only shown after the round resolves.
	CrashPoint float64 `json:"crash_point,omitempty"`
}

type serv struct {
	mu     sync.Mutex
	wallet service.Wallet
	src    rng.Source
	clk    clock.Clock
	table  config.CrashTable

	round   game.Round
	point   float64
	startAt time.Time
	final   float64
}

func NewCrashService(w service.Wallet, src rng.Source, clk clock.Clock, table config.CrashTable) service.GameEngine {
	return &serv{
		wallet: w,
		src:    src,
		clk:    clk,
		table:  table,
		round:  game.NewRound(model.Rocket),
	}
}

func (s *serv) Kind() model.GameKind {
	return model.Rocket
}

// CrashPoint maps a uniform u in [0,1) to edge/(1−u) clamped to the table
// bounds. u at or above 1 yields the maximum.
func CrashPoint(u float64, table config.CrashTable) float64 {
	if u >= 1 {
		return table.MaxPoint
	}
	c := table.HouseEdge / (1 - u)
	return math.Max(table.MinPoint, math.Min(c, table.MaxPoint))
}

// MultiplierAt is e^(growth·t) for t seconds of flight.
func MultiplierAt(elapsed time.Duration, growth float64) float64 {
	if elapsed <= 0 {
		return 1
	}
	return math.Exp(growth * elapsed.Seconds())
}

func (s *serv) PlaceBet(ctx context.Context, amount int, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.round.Active() {
		return model.ErrRoundInProgress
	}
	s.round.Reset()
	s.final = 0
	if err := s.round.Stake(ctx, s.wallet, amount, ""); err != nil {
		return err
	}
	s.point = CrashPoint(s.src.Float64(), s.table)
	s.startAt = s.clk.Now().Add(s.table.Countdown)
	s.round.Message = "Launching"
	return nil
}

func (s *serv) Act(ctx context.Context, action model.Action) error {
	if action.Name != "cashout" {
		return game.UnknownAction(model.Rocket, action.Name)
	}
	_, err := s.Resolve(ctx)
	return err
}

// Tick settles the round as lost once the multiplier reaches the crash point.
func (s *serv) Tick(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.round.Active() {
		return nil
	}
	_, err := s.crashIfDue(ctx, s.clk.Now())
	return err
}

func (s *serv) crashIfDue(ctx context.Context, now time.Time) (*model.RoundResult, error) {
	if now.Before(s.startAt) || MultiplierAt(now.Sub(s.startAt), s.table.Growth) < s.point {
		return nil, nil
	}
	s.final = s.point
	return s.round.Settle(ctx, s.wallet, s.round.Bet.Amount, 0, "CRASHED", fmt.Sprintf("x%.2f", s.point))
}

// Resolve cashes out at the current multiplier. Cashing out before launch
// is rejected.
func (s *serv) Resolve(ctx context.Context) (*model.RoundResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.round.Active() {
		return nil, model.ErrNoActiveRound
	}
	now := s.clk.Now()
	if now.Before(s.startAt) {
		return nil, fmt.Errorf("rocket has not launched: %w", model.ErrInvalidSelection)
	}
	if res, err := s.crashIfDue(ctx, now); res != nil || err != nil {
		return res, err
	}

	m := MultiplierAt(now.Sub(s.startAt), s.table.Growth)
	s.final = m
	stake := s.round.Bet.Amount
	return s.round.Settle(ctx, s.wallet, stake, game.Floor(stake, m), "CASHED OUT", fmt.Sprintf("x%.2f", m))
}

func (s *serv) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{StartsAt: s.startAt, Multiplier: 1}
	switch {
	case s.round.Active():
		now := s.clk.Now()
		v.Flying = !now.Before(s.startAt)
		v.Multiplier = math.Min(MultiplierAt(now.Sub(s.startAt), s.table.Growth), s.point)
	case s.round.Phase == model.PhaseResolved:
		v.Multiplier = s.final
		v.CrashPoint = s.point
	}
	return s.round.Snapshot(v)
}
