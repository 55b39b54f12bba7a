// Package gametest wires a memory-backed wallet for engine tests.
package gametest

import (
	"context"
	"royal_casino/internal/clock"
	"royal_casino/internal/model"
	"royal_casino/internal/repository/balance_repo"
	"royal_casino/internal/repository/ledger_repo"
	"royal_casino/internal/service"
	"royal_casino/internal/service/settlement"
	"time"
)

const PlayerID = "player-1"

type Fixture struct {
	Settlement service.SettlementService
	Wallet     service.Wallet
	Clock      *clock.FakeClock
}

func NewFixture(balance int) *Fixture {
	clk := clock.NewFakeClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	s := settlement.NewSettlementService(
		balance_repo.NewMemoryRepository(),
		ledger_repo.NewMemoryRepository(model.LedgerCap),
		nil,
		clk,
		balance,
	)
	return &Fixture{
		Settlement: s,
		Wallet:     s.Wallet(PlayerID),
		Clock:      clk,
	}
}

func (f *Fixture) Balance() int {
	b, err := f.Wallet.Balance(context.Background())
	if err != nil {
		panic(err)
	}
	return b
}

func (f *Fixture) Ledger() []model.LedgerEntry {
	entries, err := f.Settlement.Ledger(context.Background(), PlayerID)
	if err != nil {
		panic(err)
	}
	return entries
}
