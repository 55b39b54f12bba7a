package model

import "time"

// LedgerCap is the number of most recent entries the ledger retains.
const LedgerCap = 50

type LedgerResult string

const (
	LedgerWin  LedgerResult = "WIN"
	LedgerLoss LedgerResult = "LOSS"
)

type LedgerEntry struct {
	ID        string       `json:"id"`
	PlayerID  string       `json:"-"`
	Game      GameKind     `json:"game"`
	Amount    int          `json:"amount"`
	Result    LedgerResult `json:"result"`
	Timestamp time.Time    `json:"timestamp"`
}
