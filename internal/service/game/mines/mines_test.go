package mines

import (
	"context"
	"royal_casino/internal/config/env"
	"royal_casino/internal/model"
	"royal_casino/internal/service/game/gametest"
	"royal_casino/pkg/rng"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newEngine plants mines on cells 0, 1, 2, ... in order.
func newEngine(t *testing.T, balance, stake int, mines string) (*serv, *gametest.Fixture) {
	t.Helper()
	f := gametest.NewFixture(balance)
	e := NewMinesService(f.Wallet, rng.NewSequence(nil, []int{0}), env.NewDefaultGamesConfig().Mines()).(*serv)
	require.NoError(t, e.PlaceBet(context.Background(), stake, mines))
	return e, f
}

func TestMultiplierThreeMinesOneReveal(t *testing.T) {
	num, den := Multiplier(25, 3, 1)
	assert.True(t, num.Equal(decimal.NewFromInt(25)))
	assert.True(t, den.Equal(decimal.NewFromInt(22)))
}

func TestCashOutFloorsExactRatio(t *testing.T) {
	ctx := context.Background()
	e, f := newEngine(t, 1000, 100, "3")
	assert.Empty(t, e.Snapshot().State.(View).MineCells)

	require.NoError(t, e.Act(ctx, model.Action{Name: "reveal", Index: 10}))
	assert.Equal(t, "1.14", e.Snapshot().State.(View).Multiplier)

	res, err := e.Resolve(ctx)
	require.NoError(t, err)
	// 100 × 25/22 = 113.63…
	assert.Equal(t, 113, res.Payout)
	assert.Equal(t, 1013, f.Balance())
	assert.Equal(t, []int{0, 1, 2}, e.Snapshot().State.(View).MineCells)
}

func TestRevealMineLoses(t *testing.T) {
	ctx := context.Background()
	e, f := newEngine(t, 1000, 100, "3")

	require.NoError(t, e.Act(ctx, model.Action{Name: "reveal", Index: 1}))
	snap := e.Snapshot()
	assert.Equal(t, model.PhaseResolved, snap.Phase)
	assert.Equal(t, "BOOM", snap.Result.Label)
	assert.Equal(t, 900, f.Balance())
}

func TestRevealingAllSafeCellsCashesOut(t *testing.T) {
	ctx := context.Background()
	e, f := newEngine(t, 1000, 10, "24")

	require.NoError(t, e.Act(ctx, model.Action{Name: "reveal", Index: 24}))
	snap := e.Snapshot()
	require.Equal(t, model.PhaseResolved, snap.Phase)
	assert.Equal(t, 250, snap.Result.Payout)
	assert.Equal(t, 1240, f.Balance())
}

func TestCashOutWithoutRevealReturnsStake(t *testing.T) {
	e, f := newEngine(t, 1000, 100, "")
	res, err := e.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.OutcomePush, res.Outcome)
	assert.Equal(t, 1000, f.Balance())
}

func TestInvalidSelections(t *testing.T) {
	ctx := context.Background()
	f := gametest.NewFixture(1000)
	e := NewMinesService(f.Wallet, rng.New(1), env.NewDefaultGamesConfig().Mines())

	for _, sel := range []string{"0", "25", "many"} {
		assert.ErrorIs(t, e.PlaceBet(ctx, 100, sel), model.ErrInvalidSelection, sel)
	}
	assert.Equal(t, 1000, f.Balance())

	require.NoError(t, e.PlaceBet(ctx, 100, "5"))
	assert.ErrorIs(t, e.Act(ctx, model.Action{Name: "reveal", Index: 25}), model.ErrInvalidSelection)
}

func TestRevealTwiceRejected(t *testing.T) {
	ctx := context.Background()
	e, _ := newEngine(t, 1000, 100, "3")
	require.NoError(t, e.Act(ctx, model.Action{Name: "reveal", Index: 7}))
	assert.ErrorIs(t, e.Act(ctx, model.Action{Name: "reveal", Index: 7}), model.ErrInvalidSelection)
}
