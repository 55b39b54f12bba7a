package billiards

import (
	"context"
	"fmt"
	"royal_casino/internal/config"
	"royal_casino/internal/model"
	"royal_casino/internal/service"
	"royal_casino/internal/service/game"
	"sync"
)

const (
	MinPower = 5.0
	MaxPower = 150.0
)

type View struct {
	Balls     []Ball `json:"balls"`
	Potted    int    `json:"potted"`
	Shots     int    `json:"shots"`
	Scratches int    `json:"scratches"`
	Net       int    `json:"net"`
}

// serv is a pay-per-shot table. The bet sets the stake every cost and
// reward is scaled by; money moves shot by shot.
type serv struct {
	mu     sync.Mutex
	wallet service.Wallet
	table  config.BilliardsTable

	round     game.Round
	felt      *Table
	shots     int
	scratches int
	spent     int
	earned    int
}

func NewBilliardsService(w service.Wallet, table config.BilliardsTable) service.GameEngine {
	return &serv{
		wallet: w,
		table:  table,
		round:  game.NewRound(model.Billiards),
		felt:   Rack(),
	}
}

func (s *serv) Kind() model.GameKind {
	return model.Billiards
}

// PlaceBet racks a new table. The balance must cover the stake, but only
// shots are charged.
func (s *serv) PlaceBet(ctx context.Context, amount int, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.round.Active() {
		return model.ErrRoundInProgress
	}
	if amount <= 0 {
		return fmt.Errorf("bet %d: %w", amount, model.ErrInvalidSelection)
	}
	balance, err := s.wallet.Balance(ctx)
	if err != nil {
		return err
	}
	if amount > balance {
		return model.ErrInsufficientFunds
	}

	s.round.Reset()
	s.felt = Rack()
	s.shots, s.scratches, s.spent, s.earned = 0, 0, 0, 0
	s.round.Phase = model.PhaseActive
	s.round.Bet = model.BetState{Amount: amount, Active: true}
	s.round.Message = "Break"
	return nil
}

func (s *serv) Act(ctx context.Context, action model.Action) error {
	switch action.Name {
	case "shoot":
		return s.shoot(ctx, action.Angle, action.Power)
	case "leave":
		_, err := s.Resolve(ctx)
		return err
	}
	return game.UnknownAction(model.Billiards, action.Name)
}

func (s *serv) shoot(ctx context.Context, angle, power float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.round.Active() {
		return model.ErrNoActiveRound
	}
	if power <= MinPower {
		return fmt.Errorf("shot power %.1f: %w", power, model.ErrInvalidSelection)
	}
	if power > MaxPower {
		power = MaxPower
	}

	stake := s.round.Bet.Amount
	if cost := game.Floor(stake, s.table.ShotCost); cost > 0 {
		if _, err := s.wallet.Debit(ctx, model.Billiards, cost); err != nil {
			return err
		}
		s.spent += cost
	}
	s.shots++

	s.felt.Strike(angle, power/10)
	for _, ev := range s.felt.Simulate(s.table.MaxSteps) {
		switch ev.Kind {
		case EventPot:
			reward := game.Floor(stake, s.table.PotReward)
			if _, err := s.wallet.Credit(ctx, model.Billiards, reward); err != nil {
				return err
			}
			s.earned += reward
		case EventScratch:
			s.scratches++
			penalty := game.Floor(stake, s.table.ScratchPenalty)
			if penalty == 0 {
				continue
			}
			if _, err := s.wallet.Apply(ctx, model.Billiards, -penalty); err != nil {
				return err
			}
			s.spent += penalty
		}
	}

	if s.felt.Remaining() == 0 {
		s.finish("TABLE CLEARED")
		return nil
	}
	s.round.Message = fmt.Sprintf("%d balls left", s.felt.Remaining())
	return nil
}

// Resolve leaves the table and closes the round with the session totals.
func (s *serv) Resolve(_ context.Context) (*model.RoundResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.round.Active() {
		return nil, model.ErrNoActiveRound
	}
	return s.finish("LEFT TABLE"), nil
}

func (s *serv) finish(label string) *model.RoundResult {
	potted := ObjectBalls - s.felt.Remaining()
	res := model.NewRoundResult(s.spent, s.earned, label, fmt.Sprintf("%d potted in %d shots", potted, s.shots))
	s.round.Finish(res)
	return res
}

func (s *serv) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.round.Snapshot(View{
		Balls:     append([]Ball(nil), s.felt.Balls...),
		Potted:    ObjectBalls - s.felt.Remaining(),
		Shots:     s.shots,
		Scratches: s.scratches,
		Net:       s.earned - s.spent,
	})
}
