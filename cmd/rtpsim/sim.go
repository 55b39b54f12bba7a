package main

import (
	"context"
	"math"
	"royal_casino/internal/clock"
	"royal_casino/internal/config"
	"royal_casino/internal/model"
	"royal_casino/internal/repository"
	"royal_casino/internal/repository/balance_repo"
	"royal_casino/internal/repository/ledger_repo"
	"royal_casino/internal/service"
	"royal_casino/internal/service/game/baccarat"
	"royal_casino/internal/service/game/blackjack"
	"royal_casino/internal/service/game/crash"
	"royal_casino/internal/service/game/dice"
	"royal_casino/internal/service/game/keno"
	"royal_casino/internal/service/game/mines"
	"royal_casino/internal/service/game/poker"
	"royal_casino/internal/service/game/roulette"
	"royal_casino/internal/service/game/slots"
	"royal_casino/internal/service/game/videopoker"
	"royal_casino/internal/service/settlement"
	"royal_casino/pkg/rng"
	"time"
)

const bankroll = math.MaxInt32

// strategy plays one round on e after PlaceBet succeeded.
type strategy struct {
	selection string
	play      func(ctx context.Context, e service.GameEngine) error
}

func resolve(ctx context.Context, e service.GameEngine) error {
	_, err := e.Resolve(ctx)
	return err
}

// simulator plays the house games with fixed strategies against a single
// bankroll and feeds every settled round into a stats repository.
type simulator struct {
	games  config.GamesConfig
	src    rng.Source
	clk    *clock.FakeClock
	stats  repository.StatsRepository
	wallet service.Wallet
}

func newSimulator(games config.GamesConfig, src rng.Source, stats repository.StatsRepository) *simulator {
	clk := clock.NewFakeClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	st := settlement.NewSettlementService(
		balance_repo.NewMemoryRepository(),
		ledger_repo.NewMemoryRepository(0),
		nil, clk, bankroll,
	)
	return &simulator{
		games:  games,
		src:    src,
		clk:    clk,
		stats:  stats,
		wallet: st.Wallet("rtpsim"),
	}
}

func (s *simulator) engines() map[model.GameKind]service.GameEngine {
	return map[model.GameKind]service.GameEngine{
		model.Roulette:   roulette.NewRouletteService(s.wallet, s.src, s.games.Roulette()),
		model.Blackjack:  blackjack.NewBlackjackService(s.wallet, s.src, s.games.Blackjack()),
		model.Poker:      poker.NewPokerService(s.wallet, s.src, s.games.Poker()),
		model.VideoPoker: videopoker.NewVideoPokerService(s.wallet, s.src, s.games.VideoPoker()),
		model.Slots:      slots.NewSlotsService(s.wallet, s.src, s.games.Slots()),
		model.Dice:       dice.NewDiceService(s.wallet, s.src, s.games.Dice()),
		model.Mines:      mines.NewMinesService(s.wallet, s.src, s.games.Mines()),
		model.Rocket:     crash.NewCrashService(s.wallet, s.src, s.clk, s.games.Crash()),
		model.Keno:       keno.NewKenoService(s.wallet, s.src, s.games.Keno()),
		model.Baccarat:   baccarat.NewBaccaratService(s.wallet, s.src, s.games.Baccarat()),
	}
}

func (s *simulator) strategies(cashout float64) map[model.GameKind]strategy {
	crashTable := s.games.Crash()
	flight := time.Duration(math.Log(cashout) / crashTable.Growth * float64(time.Second))
	cells := s.games.Mines().Cells

	return map[model.GameKind]strategy{
		model.Roulette:   {selection: roulette.BetRed, play: resolve},
		model.Poker:      {play: resolve},
		model.VideoPoker: {play: resolve},
		model.Slots:      {play: resolve},
		model.Dice:       {play: resolve},
		model.Keno:       {selection: "3 11 19 27 35", play: resolve},
		model.Baccarat:   {selection: baccarat.BetBanker, play: resolve},
		model.Blackjack: {play: func(ctx context.Context, e service.GameEngine) error {
			for e.Snapshot().Phase == model.PhaseActive {
				v, ok := e.Snapshot().State.(blackjack.View)
				if !ok || v.PlayerScore >= 17 {
					return resolve(ctx, e)
				}
				if err := e.Act(ctx, model.Action{Name: "hit"}); err != nil {
					return err
				}
			}
			return nil
		}},
		model.Mines: {selection: "3", play: func(ctx context.Context, e service.GameEngine) error {
			if err := e.Act(ctx, model.Action{Name: "reveal", Index: s.src.Intn(cells)}); err != nil {
				return err
			}
			if e.Snapshot().InRound() {
				return resolve(ctx, e)
			}
			return nil
		}},
		model.Rocket: {play: func(ctx context.Context, e service.GameEngine) error {
			s.clk.Advance(crashTable.Countdown + flight)
			return resolve(ctx, e)
		}},
	}
}

// Run plays rounds of every game at stake and returns the stats repository
// contents.
func (s *simulator) Run(ctx context.Context, rounds, stake int, cashout float64, progress func(model.GameKind)) ([]model.GameStats, error) {
	engines := s.engines()
	plays := s.strategies(cashout)

	for _, kind := range model.GameKinds {
		e, ok := engines[kind]
		if !ok {
			continue
		}
		st := plays[kind]
		for i := 0; i < rounds; i++ {
			if err := e.PlaceBet(ctx, stake, st.selection); err != nil {
				return nil, err
			}
			if err := st.play(ctx, e); err != nil {
				return nil, err
			}
			if res := e.Snapshot().Result; res != nil {
				s.stats.Record(kind, float64(res.Stake), float64(res.Payout))
			}
		}
		if progress != nil {
			progress(kind)
		}
	}
	return s.stats.All(), nil
}
