package mines

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

	"github.com/shopspring/decimal"
)

const DefaultMines = 3

type View struct {
	Mines      int    `json:"mines"`
	Revealed   []int  `json:"revealed"`
	Multiplier string `json:"multiplier"`
	// MineCells is filled once the round is resolved.
	MineCells []int `json:"mine_cells,omitempty"`
}

type serv struct {
	mu     sync.Mutex
	wallet service.Wallet
	src    rng.Source
	table  config.MinesTable

	round    game.Round
	mines    int
	mineAt   map[int]bool
	revealed []int
	num, den decimal.Decimal
}

func NewMinesService(w service.Wallet, src rng.Source, table config.MinesTable) service.GameEngine {
	return &serv{
		wallet: w,
		src:    src,
		table:  table,
		round:  game.NewRound(model.Mines),
		num:    decimal.NewFromInt(1),
		den:    decimal.NewFromInt(1),
	}
}

func (s *serv) Kind() model.GameKind {
	return model.Mines
}

// Multiplier is Π (cells−i)/(cells−mines−i) over i in [0, revealed).
func Multiplier(cells, mines, revealed int) (num, den decimal.Decimal) {
	num, den = decimal.NewFromInt(1), decimal.NewFromInt(1)
	for i := 0; i < revealed; i++ {
		num = num.Mul(decimal.NewFromInt(int64(cells - i)))
		den = den.Mul(decimal.NewFromInt(int64(cells - mines - i)))
	}
	return num, den
}

// PlaceBet reads the mine count from selection and plants the mines.
func (s *serv) PlaceBet(ctx context.Context, amount int, selection string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.round.Active() {
		return model.ErrRoundInProgress
	}

	mines := DefaultMines
	if sel := strings.TrimSpace(selection); sel != "" {
		n, err := strconv.Atoi(sel)
		if err != nil {
			return fmt.Errorf("mines %q: %w", selection, model.ErrInvalidSelection)
		}
		mines = n
	}
	if mines < s.table.MinMines || mines > s.table.MaxMines {
		return fmt.Errorf("mines %d: %w", mines, model.ErrInvalidSelection)
	}

	s.round.Reset()
	if err := s.round.Stake(ctx, s.wallet, amount, strconv.Itoa(mines)); err != nil {
		return err
	}

	s.mines = mines
	s.revealed = nil
	s.mineAt = make(map[int]bool, mines)
	for _, cell := range rng.Sample(s.src, s.table.Cells, mines) {
		s.mineAt[cell] = true
	}
	s.num, s.den = Multiplier(s.table.Cells, mines, 0)
	s.round.Message = "Pick a cell"
	return nil
}

func (s *serv) Act(ctx context.Context, action model.Action) error {
	switch action.Name {
	case "reveal":
		return s.reveal(ctx, action.Index)
	case "cashout":
		_, err := s.Resolve(ctx)
		return err
	}
	return game.UnknownAction(model.Mines, action.Name)
}

func (s *serv) reveal(ctx context.Context, cell int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.round.Active() {
		return model.ErrNoActiveRound
	}
	if cell < 0 || cell >= s.table.Cells {
		return fmt.Errorf("cell %d: %w", cell, model.ErrInvalidSelection)
	}
	for _, r := range s.revealed {
		if r == cell {
			return fmt.Errorf("cell %d already revealed: %w", cell, model.ErrInvalidSelection)
		}
	}

	stake := s.round.Bet.Amount
	if s.mineAt[cell] {
		_, err := s.round.Settle(ctx, s.wallet, stake, 0, "BOOM", fmt.Sprintf("mine at %d", cell))
		return err
	}

	s.revealed = append(s.revealed, cell)
	s.num, s.den = Multiplier(s.table.Cells, s.mines, len(s.revealed))
	s.round.Message = "x" + s.multiplier()

	if len(s.revealed) == s.table.Cells-s.mines {
		_, err := s.cashOut(ctx)
		return err
	}
	return nil
}

// Resolve cashes out at the current multiplier.
func (s *serv) Resolve(ctx context.Context) (*model.RoundResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.round.Active() {
		return nil, model.ErrNoActiveRound
	}
	return s.cashOut(ctx)
}

func (s *serv) cashOut(ctx context.Context) (*model.RoundResult, error) {
	stake := s.round.Bet.Amount
	payout := game.FloorRatio(stake, s.num, s.den)
	return s.round.Settle(ctx, s.wallet, stake, payout, "CASH OUT", "x"+s.multiplier())
}

func (s *serv) multiplier() string {
	return s.num.DivRound(s.den, 2).StringFixed(2)
}

func (s *serv) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		Mines:      s.mines,
		Revealed:   append([]int(nil), s.revealed...),
		Multiplier: s.multiplier(),
	}
	if s.round.Phase == model.PhaseResolved {
		for cell := 0; cell < s.table.Cells; cell++ {
			if s.mineAt[cell] {
				v.MineCells = append(v.MineCells, cell)
			}
		}
	}
	return s.round.Snapshot(v)
}
