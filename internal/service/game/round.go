package game

import (
	"context"
	"fmt"
	"royal_casino/internal/model"
	"royal_casino/internal/service"
)

// Round is the betting → active → resolved state every engine embeds.
type Round struct {
	Kind    model.GameKind
	Phase   model.Phase
	Bet     model.BetState
	Result  *model.RoundResult
	Rounds  int
	Message string
}

func NewRound(kind model.GameKind) Round {
	return Round{Kind: kind, Phase: model.PhaseBetting}
}

// Reset clears round-local bet state. Balance and ledger are untouched.
func (r *Round) Reset() {
	r.Phase = model.PhaseBetting
	r.Bet = model.BetState{}
	r.Result = nil
	r.Message = ""
}

func (r *Round) Active() bool {
	return r.Phase == model.PhaseActive
}

// Stake debits amount and opens the round.
func (r *Round) Stake(ctx context.Context, w service.Wallet, amount int, betType string) error {
	if amount <= 0 {
		return fmt.Errorf("bet %d: %w", amount, model.ErrInvalidSelection)
	}
	if _, err := w.Debit(ctx, r.Kind, amount); err != nil {
		return err
	}
	r.Result = nil
	r.Phase = model.PhaseActive
	r.Bet = model.BetState{Amount: amount, Type: betType, Active: true}
	return nil
}

// AddBet stacks amount onto a pending bet of the same type. A different
// type refunds the pending amount first; the switch is rejected up front
// when the refunded balance still cannot cover amount. The phase stays
// betting until the engine resolves.
func (r *Round) AddBet(ctx context.Context, w service.Wallet, amount int, betType string) error {
	if amount <= 0 {
		return fmt.Errorf("bet %d: %w", amount, model.ErrInvalidSelection)
	}
	if r.Phase == model.PhaseResolved {
		r.Reset()
	}

	prev := r.Bet
	if prev.Active && prev.Type != betType {
		balance, err := w.Balance(ctx)
		if err != nil {
			return err
		}
		if amount > balance+prev.Amount {
			return model.ErrInsufficientFunds
		}
		if _, err := w.Credit(ctx, r.Kind, prev.Amount); err != nil {
			return err
		}
		r.Bet = model.BetState{}
	}

	if _, err := w.Debit(ctx, r.Kind, amount); err != nil {
		return err
	}

	if r.Bet.Active {
		r.Bet.Amount += amount
	} else {
		r.Bet = model.BetState{Amount: amount, Type: betType, Active: true}
	}
	r.Result = nil
	r.Message = fmt.Sprintf("%d on %s", r.Bet.Amount, betType)
	return nil
}

// Refund returns a pending bet and resets the round.
func (r *Round) Refund(ctx context.Context, w service.Wallet) error {
	if !r.Bet.Active || r.Phase != model.PhaseBetting {
		return model.ErrNoActiveRound
	}
	if _, err := w.Credit(ctx, r.Kind, r.Bet.Amount); err != nil {
		return err
	}
	r.Reset()
	return nil
}

// Settle credits payout, if any, and closes the round with its result.
func (r *Round) Settle(ctx context.Context, w service.Wallet, stake, payout int, label, detail string) (*model.RoundResult, error) {
	if payout > 0 {
		if _, err := w.Credit(ctx, r.Kind, payout); err != nil {
			return nil, err
		}
	}
	res := model.NewRoundResult(stake, payout, label, detail)
	r.Finish(res)
	return res, nil
}

// Finish closes the round with a result whose money has already moved.
func (r *Round) Finish(res *model.RoundResult) {
	r.Result = res
	r.Phase = model.PhaseResolved
	r.Bet.Active = false
	r.Rounds++
	r.Message = res.Label
}

func (r *Round) Snapshot(state any) model.Snapshot {
	return model.Snapshot{
		Game:    r.Kind,
		Phase:   r.Phase,
		Bet:     r.Bet,
		Rounds:  r.Rounds,
		Result:  r.Result,
		Message: r.Message,
		State:   state,
	}
}

// UnknownAction is returned by engines for actions they do not define.
func UnknownAction(kind model.GameKind, name string) error {
	return fmt.Errorf("%s has no action %q: %w", kind, name, model.ErrInvalidSelection)
}
