package app

import (
	"royal_casino/internal/clock"
	"royal_casino/internal/model"
	"royal_casino/internal/service"
	"royal_casino/internal/service/game/baccarat"
	"royal_casino/internal/service/game/billiards"
	"royal_casino/internal/service/game/blackjack"
	"royal_casino/internal/service/game/crash"
	"royal_casino/internal/service/game/dice"
	"royal_casino/internal/service/game/durak"
	"royal_casino/internal/service/game/keno"
	"royal_casino/internal/service/game/mines"
	"royal_casino/internal/service/game/poker"
	"royal_casino/internal/service/game/roulette"
	"royal_casino/internal/service/game/slots"
	"royal_casino/internal/service/game/videopoker"
	"royal_casino/internal/service/game/wheel"
)

// EngineFactories builds one constructor per game, bound to the configured
// tables and timers.
func (sp *ServiceProvider) EngineFactories() map[model.GameKind]service.EngineFactory {
	games := sp.GamesCfg()
	timers := sp.TimersCfg()
	src := sp.Source()
	jp := sp.JackpotService()

	return map[model.GameKind]service.EngineFactory{
		model.Roulette: func(w service.Wallet) service.GameEngine {
			return roulette.NewRouletteService(w, src, games.Roulette())
		},
		model.Blackjack: func(w service.Wallet) service.GameEngine {
			return blackjack.NewBlackjackService(w, src, games.Blackjack())
		},
		model.Poker: func(w service.Wallet) service.GameEngine {
			return poker.NewPokerService(w, src, games.Poker())
		},
		model.VideoPoker: func(w service.Wallet) service.GameEngine {
			return videopoker.NewVideoPokerService(w, src, games.VideoPoker())
		},
		model.Slots: func(w service.Wallet) service.GameEngine {
			return slots.NewSlotsService(w, src, games.Slots())
		},
		model.Dice: func(w service.Wallet) service.GameEngine {
			return dice.NewDiceService(w, src, games.Dice())
		},
		model.Mines: func(w service.Wallet) service.GameEngine {
			return mines.NewMinesService(w, src, games.Mines())
		},
		model.Rocket: func(w service.Wallet) service.GameEngine {
			return crash.NewCrashService(w, src, clock.RealClock{}, games.Crash())
		},
		model.Wheel: func(w service.Wallet) service.GameEngine {
			return wheel.NewWheelService(w, src, jp, games.Wheel())
		},
		model.Keno: func(w service.Wallet) service.GameEngine {
			return keno.NewKenoService(w, src, games.Keno())
		},
		model.Durak: func(w service.Wallet) service.GameEngine {
			return durak.NewDurakService(w, src, clock.RealScheduler{}, games.Durak(), timers.MatchDelay(), timers.OpponentDelay())
		},
		model.Baccarat: func(w service.Wallet) service.GameEngine {
			return baccarat.NewBaccaratService(w, src, games.Baccarat())
		},
		model.Billiards: func(w service.Wallet) service.GameEngine {
			return billiards.NewBilliardsService(w, games.Billiards())
		},
	}
}
