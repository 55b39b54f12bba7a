package model

import "errors"

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInsufficientCards = errors.New("insufficient cards in deck")
	ErrInvalidSelection  = errors.New("invalid selection")
	ErrRoundInProgress   = errors.New("round in progress")
	ErrNoActiveRound     = errors.New("no active round")
	ErrUnknownGame       = errors.New("unknown game")
	ErrUnknownItem       = errors.New("unknown vault item")
	ErrAlreadyOwned      = errors.New("item already owned")
	ErrUnauthorized      = errors.New("unauthorized")
)
