package model

type GameKind string

const (
	Roulette   GameKind = "ROULETTE"
	Blackjack  GameKind = "BLACKJACK"
	Poker      GameKind = "POKER"
	Dice       GameKind = "DICE"
	Slots      GameKind = "SLOTS"
	Rocket     GameKind = "ROCKET"
	Mines      GameKind = "MINES"
	Durak      GameKind = "DURAK"
	Billiards  GameKind = "BILLIARDS"
	VideoPoker GameKind = "VIDEO_POKER"
	Keno       GameKind = "KENO"
	Wheel      GameKind = "WHEEL"
	Baccarat   GameKind = "BACCARAT"

	// System labels ledger entries settled outside of play.
	System GameKind = "System"
)

var GameKinds = []GameKind{
	Roulette, Blackjack, Poker, Dice, Slots, Rocket, Mines,
	Durak, Billiards, VideoPoker, Keno, Wheel, Baccarat,
}

func ParseGameKind(s string) (GameKind, bool) {
	for _, k := range GameKinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

type Phase string

const (
	PhaseBetting   Phase = "BETTING"
	PhaseSearching Phase = "SEARCHING"
	PhaseActive    Phase = "ACTIVE"
	PhaseResolved  Phase = "RESOLVED"
)

// BetState is the stake of the current round. Amount is already debited while Active.
type BetState struct {
	Amount int    `json:"amount"`
	Type   string `json:"type,omitempty"`
	Active bool   `json:"active"`
}

// Action is a per-step player intent (hit, stand, hold, reveal, shoot...).
type Action struct {
	Name    string  `json:"name"`
	Index   int     `json:"index"`
	Indices []int   `json:"indices,omitempty"`
	Angle   float64 `json:"angle,omitempty"`
	Power   float64 `json:"power,omitempty"`
}

// Snapshot is the read-only view handed to the presentation layer after
// every engine operation.
type Snapshot struct {
	Game    GameKind     `json:"game"`
	Phase   Phase        `json:"phase"`
	Bet     BetState     `json:"bet"`
	Rounds  int          `json:"rounds"`
	Result  *RoundResult `json:"result,omitempty"`
	Message string       `json:"message,omitempty"`
	State   any          `json:"state,omitempty"`
}

// InRound reports whether the snapshot holds committed, unresolved play.
func (s Snapshot) InRound() bool {
	switch s.Phase {
	case PhaseActive, PhaseSearching:
		return true
	case PhaseBetting:
		return s.Bet.Active
	}
	return false
}
