package durak

import (
	"context"
	"royal_casino/internal/clock"
	"royal_casino/internal/config/env"
	"royal_casino/internal/model"
	"royal_casino/internal/service/game/gametest"
	"royal_casino/pkg/rng"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func c(r model.Rank, s model.Suit) model.Card {
	return model.Card{Suit: s, Rank: r, Value: int(r)}
}

func TestDecide_AttackCheapestNonTrump(t *testing.T) {
	hand := []model.Card{c(model.Ace, model.Spades), c(6, model.Hearts), c(9, model.Clubs), c(7, model.Spades)}
	m := Decide(hand, nil, model.Hearts, RoleAttack)
	assert.Equal(t, Move{Kind: MoveAttack, Index: 3}, m)
}

func TestDecide_AttackMustMatchTable(t *testing.T) {
	hand := []model.Card{c(8, model.Clubs), c(9, model.Diamonds)}
	d := c(9, model.Spades)
	table := []Pair{{Attack: c(7, model.Spades), Defense: &d}}

	assert.Equal(t, Move{Kind: MoveAttack, Index: 1}, Decide(hand, table, model.Hearts, RoleAttack))
	assert.Equal(t, Move{Kind: MovePass}, Decide(hand[:1], table, model.Hearts, RoleAttack))
}

func TestDecide_DefendPrefersSuitOverTrump(t *testing.T) {
	hand := []model.Card{c(6, model.Hearts), c(model.King, model.Spades), c(10, model.Spades), c(8, model.Spades)}
	table := []Pair{{Attack: c(9, model.Spades)}}

	assert.Equal(t, Move{Kind: MoveDefend, Index: 2}, Decide(hand, table, model.Hearts, RoleDefend))
	assert.Equal(t, Move{Kind: MoveDefend, Index: 0}, Decide(hand[:1], table, model.Hearts, RoleDefend))
	assert.Equal(t, Move{Kind: MoveTake}, Decide(hand[3:], table, model.Hearts, RoleDefend))
}

type harness struct {
	e     *serv
	f     *gametest.Fixture
	sched *clock.ManualScheduler
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	f := gametest.NewFixture(1000)
	sched := clock.NewManualScheduler()
	e := NewDurakService(f.Wallet, rng.New(11), sched, env.NewDefaultGamesConfig().Durak(), 2*time.Second, time.Second).(*serv)
	return &harness{e: e, f: f, sched: sched}
}

// arrange replaces the dealt match with fixed hands and an empty deck.
func (h *harness) arrange(t *testing.T, player, bot []model.Card, trump model.Suit, playerAttacks bool) {
	t.Helper()
	require.NoError(t, h.e.PlaceBet(context.Background(), 100, ""))
	require.True(t, h.sched.RunNext())
	require.Equal(t, model.PhaseActive, h.e.Snapshot().Phase)

	h.e.mu.Lock()
	defer h.e.mu.Unlock()
	h.e.stopTimer()
	h.e.player, h.e.bot, h.e.deck = player, bot, nil
	h.e.trump = c(6, trump)
	h.e.attacking = playerAttacks
	h.e.startTurn()
}

func TestMatchmaking_CancelHasNoBalanceEffect(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	require.NoError(t, h.e.PlaceBet(ctx, 100, ""))
	snap := h.e.Snapshot()
	assert.Equal(t, model.PhaseSearching, snap.Phase)
	assert.True(t, snap.InRound())
	assert.ErrorIs(t, h.e.PlaceBet(ctx, 100, ""), model.ErrRoundInProgress)

	require.NoError(t, h.e.Act(ctx, model.Action{Name: "cancel"}))
	assert.Equal(t, model.PhaseBetting, h.e.Snapshot().Phase)
	assert.Zero(t, h.sched.Pending())
	assert.Equal(t, 1000, h.f.Balance())
	assert.Empty(t, h.f.Ledger())
}

func TestMatchmaking_RequiresFunds(t *testing.T) {
	h := newHarness(t)
	assert.ErrorIs(t, h.e.PlaceBet(context.Background(), 5000, ""), model.ErrInsufficientFunds)
}

func TestMatchFoundDealsAndDebits(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.e.PlaceBet(context.Background(), 100, ""))
	require.True(t, h.sched.RunNext())

	snap := h.e.Snapshot()
	v := snap.State.(View)
	assert.Equal(t, model.PhaseActive, snap.Phase)
	assert.Equal(t, 900, h.f.Balance())
	assert.Len(t, v.Hand, 6)
	assert.Equal(t, 6, v.OpponentCards)
	assert.Equal(t, 24, v.DeckSize)
	require.NotNil(t, v.Trump)
	bottom, _ := h.e.deck.Bottom()
	assert.Equal(t, bottom, *v.Trump)
	assert.NotEmpty(t, v.Opponent)
}

func TestMatchActionSkipsDelay(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	require.NoError(t, h.e.PlaceBet(ctx, 100, ""))
	require.NoError(t, h.e.Act(ctx, model.Action{Name: "match"}))
	assert.Equal(t, model.PhaseActive, h.e.Snapshot().Phase)
	assert.Equal(t, 900, h.f.Balance())
}

func TestPlayerWinsWhenHandEmptiesWithDeckEmpty(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.arrange(t,
		[]model.Card{c(6, model.Spades)},
		[]model.Card{c(8, model.Hearts), c(7, model.Spades)},
		model.Hearts, true)

	require.NoError(t, h.e.Act(ctx, model.Action{Name: "attack", Index: 0}))
	assert.ErrorIs(t, h.e.Act(ctx, model.Action{Name: "pass"}), model.ErrInvalidSelection)

	require.True(t, h.sched.RunNext())
	v := h.e.Snapshot().State.(View)
	require.NotNil(t, v.Table[0].Defense)
	assert.Equal(t, c(7, model.Spades), *v.Table[0].Defense)
	assert.True(t, v.YourMove)

	require.NoError(t, h.e.Act(ctx, model.Action{Name: "pass"}))
	snap := h.e.Snapshot()
	require.Equal(t, model.PhaseResolved, snap.Phase)
	assert.Equal(t, "VICTORY", snap.Result.Label)
	assert.Equal(t, 1100, h.f.Balance())
	assert.Zero(t, h.sched.Pending())
}

func TestPlayerTakesAndLoses(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.arrange(t,
		[]model.Card{c(9, model.Diamonds), c(10, model.Diamonds)},
		[]model.Card{c(6, model.Clubs)},
		model.Spades, false)

	require.True(t, h.sched.RunNext())
	v := h.e.Snapshot().State.(View)
	require.Len(t, v.Table, 1)
	assert.Equal(t, c(6, model.Clubs), v.Table[0].Attack)

	assert.ErrorIs(t, h.e.Act(ctx, model.Action{Name: "defend", Index: 0}), model.ErrInvalidSelection)
	require.NoError(t, h.e.Act(ctx, model.Action{Name: "take"}))

	snap := h.e.Snapshot()
	require.Equal(t, model.PhaseResolved, snap.Phase)
	assert.Equal(t, "DURAK", snap.Result.Label)
	assert.Len(t, snap.State.(View).Hand, 3)
	assert.Equal(t, 900, h.f.Balance())
}

func TestOpponentTakesAndPlayerLeadsAgain(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.arrange(t,
		[]model.Card{c(model.Ace, model.Hearts), c(7, model.Clubs)},
		[]model.Card{c(6, model.Spades)},
		model.Hearts, true)

	require.NoError(t, h.e.Act(ctx, model.Action{Name: "attack", Index: 0}))
	assert.ErrorIs(t, h.e.Act(ctx, model.Action{Name: "attack", Index: 0}), model.ErrInvalidSelection)
	require.True(t, h.sched.RunNext())

	v := h.e.Snapshot().State.(View)
	assert.Equal(t, 2, v.OpponentCards)
	assert.Empty(t, v.Table)
	assert.True(t, v.Attacking)
	assert.True(t, v.YourMove)
	assert.Equal(t, model.PhaseActive, h.e.Snapshot().Phase)
}

func TestForfeitIgnoresPendingOpponentMove(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.arrange(t,
		[]model.Card{c(9, model.Diamonds)},
		[]model.Card{c(6, model.Clubs), c(7, model.Clubs)},
		model.Spades, false)

	res, err := h.e.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "FORFEIT", res.Label)

	h.sched.RunAll(10)
	snap := h.e.Snapshot()
	assert.Equal(t, model.PhaseResolved, snap.Phase)
	assert.Empty(t, snap.State.(View).Table)
	assert.Equal(t, 900, h.f.Balance())
}
