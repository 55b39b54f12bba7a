package model

// Standing is one row of the wealth leaderboard.
type Standing struct {
	Position int     `json:"position"`
	Name     string  `json:"name"`
	Balance  int     `json:"balance"`
	Rank     VIPRank `json:"rank"`
	You      bool    `json:"you"`
}
