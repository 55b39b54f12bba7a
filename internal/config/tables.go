package config

import "time"

type RouletteTable struct {
	Wheel           []int `yaml:"wheel"`
	Red             []int `yaml:"red"`
	ColorMultiplier int   `yaml:"color_multiplier"`
	GreenMultiplier int   `yaml:"green_multiplier"`
}

type BlackjackTable struct {
	DealerStand     int     `yaml:"dealer_stand"`
	BlackjackPayout float64 `yaml:"blackjack_payout"`
	WinMultiplier   int     `yaml:"win_multiplier"`
	ReshuffleBelow  int     `yaml:"reshuffle_below"`
}

// PokerTable pays stake × (Base + category × Step) for category ≥ 1.
type PokerTable struct {
	Base float64 `yaml:"base"`
	Step float64 `yaml:"step"`
}

// VideoPokerTable maps hand category to multiplier. Category 1 pays only
// for jacks or better.
type VideoPokerTable struct {
	Payouts map[int]int `yaml:"payouts"`
}

type SlotSymbol struct {
	Symbol     string `yaml:"symbol"`
	Multiplier int    `yaml:"multiplier"`
}

type SlotsTable struct {
	Symbols        []SlotSymbol `yaml:"symbols"`
	PairMultiplier float64      `yaml:"pair_multiplier"`
}

type DiceTable struct {
	WinMultiplier int   `yaml:"win_multiplier"`
	Naturals      []int `yaml:"naturals"`
	Craps         []int `yaml:"craps"`
}

type MinesTable struct {
	Cells    int `yaml:"cells"`
	MinMines int `yaml:"min_mines"`
	MaxMines int `yaml:"max_mines"`
}

type CrashTable struct {
	HouseEdge float64       `yaml:"house_edge"`
	MinPoint  float64       `yaml:"min_point"`
	MaxPoint  float64       `yaml:"max_point"`
	Growth    float64       `yaml:"growth"`
	Countdown time.Duration `yaml:"countdown"`
}

type WheelPrize struct {
	Label       string  `yaml:"label"`
	Amount      int     `yaml:"amount"`
	Probability float64 `yaml:"probability"`
	Jackpot     bool    `yaml:"jackpot"`
}

type WheelTable struct {
	Prizes []WheelPrize `yaml:"prizes"`
}

type KenoStep struct {
	Hits       int `yaml:"hits"`
	Multiplier int `yaml:"multiplier"`
}

// KenoTable steps are matched from the highest hit threshold down.
type KenoTable struct {
	Pool     int        `yaml:"pool"`
	Drawn    int        `yaml:"drawn"`
	MaxPicks int        `yaml:"max_picks"`
	Steps    []KenoStep `yaml:"steps"`
}

type DurakTable struct {
	HandSize      int `yaml:"hand_size"`
	WinMultiplier int `yaml:"win_multiplier"`
}

type BaccaratTable struct {
	Player float64 `yaml:"player"`
	Banker float64 `yaml:"banker"`
	Tie    float64 `yaml:"tie"`
}

type BilliardsTable struct {
	ShotCost       float64 `yaml:"shot_cost"`
	PotReward      float64 `yaml:"pot_reward"`
	ScratchPenalty float64 `yaml:"scratch_penalty"`
	MaxSteps       int     `yaml:"max_steps"`
}

type JackpotTable struct {
	Start        int `yaml:"start"`
	Floor        int `yaml:"floor"`
	MinIncrement int `yaml:"min_increment"`
	MaxIncrement int `yaml:"max_increment"`
}
