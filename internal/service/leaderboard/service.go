package leaderboard

import (
	"context"
	"royal_casino/internal/model"
	"royal_casino/internal/service"
	"sort"
)

type Member struct {
	Name    string
	Balance int
}

// Roster is the house VIP list every player is ranked against.
var Roster = []Member{
	{Name: "Sheikh Al-Maktoum", Balance: 54_000_000},
	{Name: "Baron Rothschild", Balance: 12_500_000},
	{Name: "Mr. Musk", Balance: 8_900_000},
	{Name: "Prince Harry", Balance: 4_500_000},
	{Name: "Lady Gaga", Balance: 3_200_000},
	{Name: "007 Bond", Balance: 1_500_000},
	{Name: "Gatsby", Balance: 900_000},
	{Name: "Tony Stark", Balance: 750_000},
	{Name: "Bruce Wayne", Balance: 500_000},
}

// Players lists the players seated at the casino.
type Players interface {
	Players() []string
}

type serv struct {
	settlement service.SettlementService
	players    Players
	roster     []Member
}

func NewLeaderboardService(settlement service.SettlementService, players Players, roster []Member) service.LeaderboardService {
	if roster == nil {
		roster = Roster
	}
	return &serv{
		settlement: settlement,
		players:    players,
		roster:     roster,
	}
}

// GuestName is the public label of a player.
func GuestName(playerID string) string {
	if len(playerID) > 8 {
		playerID = playerID[:8]
	}
	return "Guest " + playerID
}

// Standings merges the roster with every seated player's balance, richest
// first. The caller is always listed. Ties keep roster members ahead.
func (s *serv) Standings(ctx context.Context, playerID string) ([]model.Standing, error) {
	out := make([]model.Standing, 0, len(s.roster)+1)
	for _, m := range s.roster {
		out = append(out, model.Standing{Name: m.Name, Balance: m.Balance})
	}

	ids := s.players.Players()
	seated := false
	for _, id := range ids {
		if id == playerID {
			seated = true
			break
		}
	}
	if !seated {
		ids = append(ids, playerID)
	}

	for _, id := range ids {
		balance, err := s.settlement.Balance(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, model.Standing{
			Name:    GuestName(id),
			Balance: balance,
			You:     id == playerID,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Balance > out[j].Balance
	})
	for i := range out {
		out[i].Position = i + 1
		out[i].Rank = model.RankFor(out[i].Balance)
	}
	return out, nil
}
