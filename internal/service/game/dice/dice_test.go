package dice

import (
	"context"
	"royal_casino/internal/config/env"
	"royal_casino/internal/model"
	"royal_casino/internal/service/game/gametest"
	"royal_casino/pkg/rng"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// faces converts die faces into the Intn(6) draws that produce them.
func faces(fs ...int) []int {
	out := make([]int, len(fs))
	for i, f := range fs {
		out[i] = f - 1
	}
	return out
}

func newEngine(t *testing.T, fs ...int) (*serv, *gametest.Fixture) {
	t.Helper()
	f := gametest.NewFixture(1000)
	e := NewDiceService(f.Wallet, rng.NewSequence(nil, faces(fs...)), env.NewDefaultGamesConfig().Dice()).(*serv)
	require.NoError(t, e.PlaceBet(context.Background(), 100, ""))
	return e, f
}

func TestComeOutNatural(t *testing.T) {
	for _, fs := range [][]int{{3, 4}, {5, 6}} {
		e, f := newEngine(t, fs...)
		require.NoError(t, e.Act(context.Background(), model.Action{Name: "roll"}))
		snap := e.Snapshot()
		assert.Equal(t, model.PhaseResolved, snap.Phase)
		assert.Equal(t, "NATURAL", snap.Result.Label)
		assert.Equal(t, 1100, f.Balance())
	}
}

func TestComeOutCraps(t *testing.T) {
	for _, fs := range [][]int{{1, 1}, {1, 2}, {6, 6}} {
		e, f := newEngine(t, fs...)
		res, err := e.Resolve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "CRAPS", res.Label)
		assert.Equal(t, 900, f.Balance())
	}
}

func TestPointMadeAfterSingleDebit(t *testing.T) {
	ctx := context.Background()
	e, f := newEngine(t, 4, 4, 2, 3, 5, 3)

	require.NoError(t, e.Act(ctx, model.Action{Name: "roll"}))
	assert.Equal(t, 8, e.Snapshot().State.(View).Point)
	assert.ErrorIs(t, e.PlaceBet(ctx, 100, ""), model.ErrRoundInProgress)

	require.NoError(t, e.Act(ctx, model.Action{Name: "roll"}))
	assert.Equal(t, model.PhaseActive, e.Snapshot().Phase)

	require.NoError(t, e.Act(ctx, model.Action{Name: "roll"}))
	snap := e.Snapshot()
	assert.Equal(t, "POINT", snap.Result.Label)
	assert.Equal(t, 1100, f.Balance())
	assert.Len(t, f.Ledger(), 2)
}

func TestSevenOut(t *testing.T) {
	e, f := newEngine(t, 2, 2, 1, 5, 3, 4)
	res, err := e.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "SEVEN OUT", res.Label)
	assert.Equal(t, 3, e.Snapshot().State.(View).Rolls)
	assert.Equal(t, 900, f.Balance())
}
