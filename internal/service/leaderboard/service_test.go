package leaderboard

import (
	"context"
	"royal_casino/internal/model"
	"royal_casino/internal/repository/balance_repo"
	"royal_casino/internal/repository/ledger_repo"
	"royal_casino/internal/service/settlement"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticPlayers []string

func (p staticPlayers) Players() []string { return p }

func TestStandings_SortedByBalance(t *testing.T) {
	ctx := context.Background()
	st := settlement.NewSettlementService(
		balance_repo.NewMemoryRepository(),
		ledger_repo.NewMemoryRepository(model.LedgerCap),
		nil, nil, 1000,
	)
	_, err := st.Credit(ctx, "whale-0001", model.Slots, 2_000_000)
	require.NoError(t, err)
	_, err = st.Credit(ctx, "mid-0002", model.Slots, 799_000)
	require.NoError(t, err)

	roster := []Member{
		{Name: "Gatsby", Balance: 900_000},
		{Name: "Tony Stark", Balance: 800_000},
		{Name: "Bruce Wayne", Balance: 500_000},
	}
	s := NewLeaderboardService(st, staticPlayers{"mid-0002", "whale-0001"}, roster)

	got, err := s.Standings(ctx, "mid-0002")
	require.NoError(t, err)

	names := make([]string, len(got))
	for i, row := range got {
		names[i] = row.Name
		assert.Equal(t, i+1, row.Position)
		if i > 0 {
			assert.GreaterOrEqual(t, got[i-1].Balance, row.Balance)
		}
	}
	assert.Equal(t, []string{"Guest whale-00", "Gatsby", "Tony Stark", "Guest mid-0002", "Bruce Wayne"}, names)

	assert.True(t, got[3].You)
	assert.Equal(t, 800_000, got[3].Balance)
	assert.Equal(t, model.RankDuke, got[3].Rank)
	assert.Equal(t, model.RankSovereign, got[0].Rank)
	for i, row := range got {
		assert.Equal(t, i == 3, row.You)
	}
}

func TestStandings_UnseatedCallerListed(t *testing.T) {
	st := settlement.NewSettlementService(
		balance_repo.NewMemoryRepository(),
		ledger_repo.NewMemoryRepository(model.LedgerCap),
		nil, nil, 1000,
	)
	s := NewLeaderboardService(st, staticPlayers{}, nil)

	got, err := s.Standings(context.Background(), "newcomer")
	require.NoError(t, err)
	require.Len(t, got, len(Roster)+1)

	last := got[len(got)-1]
	assert.True(t, last.You)
	assert.Equal(t, "Guest newcomer", last.Name)
	assert.Equal(t, 1000, last.Balance)
	assert.Equal(t, "Sheikh Al-Maktoum", got[0].Name)
}
