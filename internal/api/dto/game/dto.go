package game

import "royal_casino/internal/model"

type BetRequest struct {
	Amount    int    `json:"amount"`
	Selection string `json:"selection"`
}

// ActionRequest carries the optional arguments of a game action. Card is
// an alias of Index for card games.
type ActionRequest struct {
	Index   *int    `json:"index,omitempty"`
	Indices []int   `json:"indices,omitempty"`
	Card    *int    `json:"card,omitempty"`
	Angle   float64 `json:"angle,omitempty"`
	Power   float64 `json:"power,omitempty"`
}

type GameResponse struct {
	Snapshot model.Snapshot `json:"snapshot"`
	Balance  int            `json:"balance"`
}
