package env

import (
	"errors"
	"fmt"
	"os"
	"royal_casino/internal/config"
	"time"

	"gopkg.in/yaml.v3"
)

// gamesFile mirrors config.yaml. Sections absent from the file keep their
// defaults.
type gamesFile struct {
	Roulette   config.RouletteTable   `yaml:"roulette"`
	Blackjack  config.BlackjackTable  `yaml:"blackjack"`
	Poker      config.PokerTable      `yaml:"poker"`
	VideoPoker config.VideoPokerTable `yaml:"video_poker"`
	Slots      config.SlotsTable      `yaml:"slots"`
	Dice       config.DiceTable       `yaml:"dice"`
	Mines      config.MinesTable      `yaml:"mines"`
	Crash      config.CrashTable      `yaml:"crash"`
	Wheel      config.WheelTable      `yaml:"wheel"`
	Keno       config.KenoTable       `yaml:"keno"`
	Durak      config.DurakTable      `yaml:"durak"`
	Baccarat   config.BaccaratTable   `yaml:"baccarat"`
	Billiards  config.BilliardsTable  `yaml:"billiards"`
	Jackpot    config.JackpotTable    `yaml:"jackpot"`
}

type gamesConfig struct {
	f gamesFile
}

func defaultGames() gamesFile {
	return gamesFile{
		Roulette: config.RouletteTable{
			Wheel: []int{
				0, 32, 15, 19, 4, 21, 2, 25, 17, 34, 6, 27, 13, 36, 11, 30, 8, 23, 10,
				5, 24, 16, 33, 1, 20, 14, 31, 9, 22, 18, 29, 7, 28, 12, 35, 3, 26,
			},
			Red:             []int{1, 3, 5, 7, 9, 12, 14, 16, 18, 19, 21, 23, 25, 27, 30, 32, 34, 36},
			ColorMultiplier: 2,
			GreenMultiplier: 14,
		},
		Blackjack: config.BlackjackTable{
			DealerStand:     17,
			BlackjackPayout: 2.5,
			WinMultiplier:   2,
			ReshuffleBelow:  10,
		},
		Poker: config.PokerTable{Base: 2, Step: 0.5},
		VideoPoker: config.VideoPokerTable{Payouts: map[int]int{
			9: 250, 8: 50, 7: 25, 6: 9, 5: 6, 4: 4, 3: 3, 2: 2, 1: 1, 0: 0,
		}},
		Slots: config.SlotsTable{
			Symbols: []config.SlotSymbol{
				{Symbol: "🍒", Multiplier: 2},
				{Symbol: "🍋", Multiplier: 3},
				{Symbol: "🔔", Multiplier: 5},
				{Symbol: "💎", Multiplier: 10},
				{Symbol: "7️⃣", Multiplier: 20},
				{Symbol: "👑", Multiplier: 50},
			},
			PairMultiplier: 1.5,
		},
		Dice: config.DiceTable{
			WinMultiplier: 2,
			Naturals:      []int{7, 11},
			Craps:         []int{2, 3, 12},
		},
		Mines: config.MinesTable{Cells: 25, MinMines: 1, MaxMines: 24},
		Crash: config.CrashTable{
			HouseEdge: 0.99,
			MinPoint:  1.01,
			MaxPoint:  50,
			Growth:    0.06,
			Countdown: 3 * time.Second,
		},
		Wheel: config.WheelTable{Prizes: []config.WheelPrize{
			{Label: "1000", Amount: 1000, Probability: 0.15},
			{Label: "500", Amount: 500, Probability: 0.20},
			{Label: "JACKPOT", Probability: 0.05, Jackpot: true},
			{Label: "LOSE", Amount: 0, Probability: 0.22},
			{Label: "200", Amount: 200, Probability: 0.18},
			{Label: "10000", Amount: 10000, Probability: 0.08},
			{Label: "2500", Amount: 2500, Probability: 0.12},
		}},
		Keno: config.KenoTable{
			Pool:     80,
			Drawn:    20,
			MaxPicks: 10,
			Steps: []config.KenoStep{
				{Hits: 10, Multiplier: 500},
				{Hits: 8, Multiplier: 50},
				{Hits: 5, Multiplier: 5},
				{Hits: 3, Multiplier: 1},
			},
		},
		Durak:     config.DurakTable{HandSize: 6, WinMultiplier: 2},
		Baccarat:  config.BaccaratTable{Player: 2, Banker: 1.95, Tie: 9},
		Billiards: config.BilliardsTable{ShotCost: 0.1, PotReward: 0.5, ScratchPenalty: 0.2, MaxSteps: 5000},
		Jackpot: config.JackpotTable{
			Start:        2_500_000,
			Floor:        500_000,
			MinIncrement: 100,
			MaxIncrement: 599,
		},
	}
}

// NewDefaultGamesConfig returns the built-in paytables.
func NewDefaultGamesConfig() config.GamesConfig {
	return &gamesConfig{f: defaultGames()}
}

// NewGamesConfigFromYAML overlays path onto the built-in paytables.
// A missing file yields the defaults.
func NewGamesConfigFromYAML(path string) (config.GamesConfig, error) {
	f := defaultGames()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &gamesConfig{f: f}, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := validateGames(f); err != nil {
		return nil, err
	}

	return &gamesConfig{f: f}, nil
}

func validateGames(f gamesFile) error {
	if len(f.Roulette.Wheel) == 0 {
		return errors.New("roulette wheel is empty")
	}
	if len(f.Slots.Symbols) == 0 {
		return errors.New("slots symbols are empty")
	}
	sum := 0.0
	for _, p := range f.Wheel.Prizes {
		sum += p.Probability
	}
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("wheel probabilities sum to %.4f, want 1", sum)
	}
	if f.Mines.MinMines < 1 || f.Mines.MaxMines >= f.Mines.Cells {
		return fmt.Errorf("mines range %d..%d invalid for %d cells", f.Mines.MinMines, f.Mines.MaxMines, f.Mines.Cells)
	}
	if f.Jackpot.MaxIncrement < f.Jackpot.MinIncrement {
		return errors.New("jackpot increment range is inverted")
	}
	return nil
}

func (g *gamesConfig) Roulette() config.RouletteTable     { return g.f.Roulette }
func (g *gamesConfig) Blackjack() config.BlackjackTable   { return g.f.Blackjack }
func (g *gamesConfig) Poker() config.PokerTable           { return g.f.Poker }
func (g *gamesConfig) VideoPoker() config.VideoPokerTable { return g.f.VideoPoker }
func (g *gamesConfig) Slots() config.SlotsTable           { return g.f.Slots }
func (g *gamesConfig) Dice() config.DiceTable             { return g.f.Dice }
func (g *gamesConfig) Mines() config.MinesTable           { return g.f.Mines }
func (g *gamesConfig) Crash() config.CrashTable           { return g.f.Crash }
func (g *gamesConfig) Wheel() config.WheelTable           { return g.f.Wheel }
func (g *gamesConfig) Keno() config.KenoTable             { return g.f.Keno }
func (g *gamesConfig) Durak() config.DurakTable           { return g.f.Durak }
func (g *gamesConfig) Baccarat() config.BaccaratTable     { return g.f.Baccarat }
func (g *gamesConfig) Billiards() config.BilliardsTable   { return g.f.Billiards }
func (g *gamesConfig) Jackpot() config.JackpotTable       { return g.f.Jackpot }
