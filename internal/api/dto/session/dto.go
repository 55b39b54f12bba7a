package session

import "royal_casino/internal/model"

type GuestResponse struct {
	AccessToken string `json:"access_token"`
	PlayerID    string `json:"player_id"`
}

type LedgerEntry struct {
	ID        string `json:"id"`
	Game      string `json:"game"`
	Amount    int    `json:"amount"`
	Result    string `json:"result"`
	Timestamp int64  `json:"timestamp"`
}

type LedgerResponse struct {
	Entries []LedgerEntry `json:"entries"`
}

type PurchaseResponse struct {
	Item    model.VaultItem `json:"item"`
	Balance int             `json:"balance"`
}

type GameStats struct {
	Game        string  `json:"game"`
	Rounds      int     `json:"rounds"`
	TotalStake  float64 `json:"total_stake"`
	TotalPayout float64 `json:"total_payout"`
	RTP         float64 `json:"rtp"`
	WindowRTP   float64 `json:"window_rtp"`
}

type StatsResponse struct {
	Games []GameStats `json:"games"`
}

type ConciergeRequest struct {
	Prompt string `json:"prompt"`
}

type LeaderboardEntry struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
	Balance  int    `json:"balance"`
	Rank     string `json:"rank"`
	You      bool   `json:"you"`
}

type LeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
}
