package env

import (
	"fmt"
	"os"
	"royal_casino/internal/config"
	"time"
)

const (
	jackpotIntervalEnvName  = "JACKPOT_INTERVAL"
	dividendIntervalEnvName = "DIVIDEND_INTERVAL"
	tickIntervalEnvName     = "TICK_INTERVAL"
	opponentDelayEnvName    = "OPPONENT_DELAY"
	matchDelayEnvName       = "MATCH_DELAY"
)

type timersConfig struct {
	jackpot  time.Duration
	dividend time.Duration
	tick     time.Duration
	opponent time.Duration
	match    time.Duration
}

func NewTimersConfig() (config.TimersConfig, error) {
	cfg := &timersConfig{}

	durations := []struct {
		name string
		def  time.Duration
		dst  *time.Duration
	}{
		{jackpotIntervalEnvName, 3 * time.Second, &cfg.jackpot},
		{dividendIntervalEnvName, 60 * time.Second, &cfg.dividend},
		{tickIntervalEnvName, 100 * time.Millisecond, &cfg.tick},
		{opponentDelayEnvName, 1500 * time.Millisecond, &cfg.opponent},
		{matchDelayEnvName, 2 * time.Second, &cfg.match},
	}
	for _, d := range durations {
		*d.dst = d.def
		raw := os.Getenv(d.name)
		if len(raw) == 0 {
			continue
		}
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", d.name, err)
		}
		*d.dst = parsed
	}

	return cfg, nil
}

func (cfg *timersConfig) JackpotInterval() time.Duration {
	return cfg.jackpot
}

func (cfg *timersConfig) DividendInterval() time.Duration {
	return cfg.dividend
}

func (cfg *timersConfig) TickInterval() time.Duration {
	return cfg.tick
}

func (cfg *timersConfig) OpponentDelay() time.Duration {
	return cfg.opponent
}

func (cfg *timersConfig) MatchDelay() time.Duration {
	return cfg.match
}
