package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"royal_casino/internal/config/env"
	"royal_casino/internal/model"
	"royal_casino/internal/repository/stats_repo"
	"royal_casino/pkg/rng"

	"github.com/pterm/pterm"
)

func main() {
	rounds := flag.Int("rounds", 20000, "rounds per game")
	stake := flag.Int("stake", 100, "stake per round")
	seed := flag.Int64("seed", 0, "rng seed, 0 for wall clock")
	cashout := flag.Float64("cashout", 2, "rocket cash-out multiplier")
	configPath := flag.String("config", "config.yaml", "paytable file")
	flag.Parse()

	if *rounds <= 0 || *stake <= 0 || *cashout < 1 {
		pterm.Error.Println("rounds and stake must be positive, cashout at least 1")
		os.Exit(2)
	}

	games, err := env.NewGamesConfigFromYAML(*configPath)
	if err != nil {
		pterm.Error.Printfln("load paytables: %v", err)
		os.Exit(1)
	}

	sim := newSimulator(games, rng.New(*seed), stats_repo.NewStatsRepository(*rounds))
	spinner, _ := pterm.DefaultSpinner.Start("Simulating...")
	stats, err := sim.Run(context.Background(), *rounds, *stake, *cashout, func(kind model.GameKind) {
		spinner.UpdateText(fmt.Sprintf("%s done", kind))
	})
	if err != nil {
		spinner.Fail(err.Error())
		os.Exit(1)
	}
	spinner.Success(fmt.Sprintf("%d rounds per game at stake %d", *rounds, *stake))

	data := pterm.TableData{{"Game", "Rounds", "Staked", "Paid", "RTP %"}}
	for _, s := range stats {
		data = append(data, []string{
			string(s.Game),
			fmt.Sprint(s.TotalRounds),
			fmt.Sprintf("%.0f", s.TotalStake),
			fmt.Sprintf("%.0f", s.TotalPayout),
			fmt.Sprintf("%.2f", s.CurrentRTP),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Render(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
