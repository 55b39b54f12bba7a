package model

import "time"

// GameStats accumulates return-to-player figures for one game.
type GameStats struct {
	Game        GameKind      `json:"game"`
	TotalRounds int           `json:"total_rounds"`
	TotalStake  float64       `json:"total_stake"`
	TotalPayout float64       `json:"total_payout"`
	CurrentRTP  float64       `json:"current_rtp"`
	WindowRTP   float64       `json:"window_rtp"`
	WindowSize  int           `json:"window_size"`
	Window      []RoundSample `json:"-"`
	LastUpdate  time.Time     `json:"last_update"`
}

type RoundSample struct {
	Stake  float64
	Payout float64
	RTP    float64
}
