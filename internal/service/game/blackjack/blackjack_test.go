package blackjack

import (
	"context"
	"errors"
	"royal_casino/internal/cards"
	"royal_casino/internal/config/env"
	"royal_casino/internal/model"
	"royal_casino/internal/service/game/gametest"
	"royal_casino/pkg/rng"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func card(r model.Rank, s model.Suit) model.Card {
	return model.Card{Suit: s, Rank: r, Value: cards.BlackjackValue(r)}
}

// stack builds a deck whose draw order is the given cards.
func stack(order ...model.Card) cards.Deck {
	d := make(cards.Deck, len(order))
	for i, c := range order {
		d[len(order)-1-i] = c
	}
	return d
}

func newEngine(balance int, order ...model.Card) (*serv, *gametest.Fixture) {
	f := gametest.NewFixture(balance)
	e := NewBlackjackService(f.Wallet, rng.New(1), env.NewDefaultGamesConfig().Blackjack()).(*serv)
	e.table.ReshuffleBelow = 0
	e.deck = stack(order...)
	return e, f
}

func TestInstantBlackjackPaysTwoAndAHalf(t *testing.T) {
	ctx := context.Background()
	e, f := newEngine(1000,
		card(model.Ace, model.Spades), card(model.King, model.Hearts),
		card(9, model.Clubs), card(9, model.Diamonds),
	)

	require.NoError(t, e.PlaceBet(ctx, 100, ""))
	snap := e.Snapshot()
	require.Equal(t, model.PhaseResolved, snap.Phase)
	assert.Equal(t, 250, snap.Result.Payout)
	assert.Equal(t, 1150, f.Balance())
}

func TestHitBust(t *testing.T) {
	ctx := context.Background()
	e, f := newEngine(1000,
		card(10, model.Spades), card(6, model.Hearts),
		card(9, model.Clubs), card(8, model.Diamonds),
		card(model.King, model.Clubs),
	)

	require.NoError(t, e.PlaceBet(ctx, 100, ""))
	require.NoError(t, e.Act(ctx, model.Action{Name: "hit"}))

	snap := e.Snapshot()
	assert.Equal(t, model.PhaseResolved, snap.Phase)
	assert.Equal(t, "BUST", snap.Result.Label)
	assert.Equal(t, 900, f.Balance())
}

func TestStand_DealerDrawsToSeventeenAndBusts(t *testing.T) {
	ctx := context.Background()
	e, f := newEngine(1000,
		card(10, model.Spades), card(8, model.Hearts),
		card(10, model.Clubs), card(6, model.Diamonds),
		card(model.Queen, model.Clubs),
	)

	require.NoError(t, e.PlaceBet(ctx, 100, ""))
	assert.True(t, e.Snapshot().State.(View).HoleHidden)

	res, err := e.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, 200, res.Payout)
	assert.Equal(t, 1100, f.Balance())
	assert.Len(t, e.dealer, 3)
}

func TestStand_Push(t *testing.T) {
	ctx := context.Background()
	e, f := newEngine(1000,
		card(10, model.Spades), card(8, model.Hearts),
		card(10, model.Clubs), card(8, model.Diamonds),
	)

	require.NoError(t, e.PlaceBet(ctx, 100, ""))
	res, err := e.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.OutcomePush, res.Outcome)
	assert.Equal(t, 1000, f.Balance())
}

func TestStand_DealerHigher(t *testing.T) {
	ctx := context.Background()
	e, f := newEngine(1000,
		card(10, model.Spades), card(7, model.Hearts),
		card(10, model.Clubs), card(9, model.Diamonds),
	)

	require.NoError(t, e.PlaceBet(ctx, 100, ""))
	res, err := e.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Payout)
	assert.Equal(t, "HOUSE WINS", res.Label)
	assert.Equal(t, 900, f.Balance())
}

func TestPlaceBetWhileActive(t *testing.T) {
	ctx := context.Background()
	e, f := newEngine(1000,
		card(10, model.Spades), card(7, model.Hearts),
		card(10, model.Clubs), card(9, model.Diamonds),
	)

	require.NoError(t, e.PlaceBet(ctx, 100, ""))
	assert.True(t, errors.Is(e.PlaceBet(ctx, 100, ""), model.ErrRoundInProgress))
	assert.Equal(t, 900, f.Balance())
	assert.Len(t, f.Ledger(), 1)
}

func TestActWithoutRound(t *testing.T) {
	e, _ := newEngine(1000)
	assert.ErrorIs(t, e.Act(context.Background(), model.Action{Name: "hit"}), model.ErrNoActiveRound)
	assert.ErrorIs(t, e.Act(context.Background(), model.Action{Name: "split"}), model.ErrInvalidSelection)
}

func TestDeckReplenishedBelowThreshold(t *testing.T) {
	ctx := context.Background()
	f := gametest.NewFixture(1000)
	e := NewBlackjackService(f.Wallet, rng.New(5), env.NewDefaultGamesConfig().Blackjack()).(*serv)
	e.deck = e.deck[:5]

	require.NoError(t, e.PlaceBet(ctx, 10, ""))
	assert.Equal(t, cards.StandardSize-4, e.deck.Len())
}

func TestShoeRunsDryMidRound_RefillsAndSettles(t *testing.T) {
	ctx := context.Background()
	e, _ := newEngine(1000,
		card(4, model.Spades), card(4, model.Hearts),
		card(3, model.Spades), card(3, model.Hearts),
		card(3, model.Clubs), card(3, model.Diamonds),
		card(2, model.Spades), card(2, model.Hearts),
		card(2, model.Clubs), card(2, model.Diamonds),
	)

	require.NoError(t, e.PlaceBet(ctx, 100, ""))
	for i := 0; i < 4; i++ {
		require.NoError(t, e.Act(ctx, model.Action{Name: "hit"}))
	}
	require.Equal(t, 18, cards.BlackjackScore(e.player))
	require.Equal(t, 0, e.deck.Len())

	require.NoError(t, e.Act(ctx, model.Action{Name: "stand"}))
	snap := e.Snapshot()
	assert.Equal(t, model.PhaseResolved, snap.Phase)
	assert.GreaterOrEqual(t, cards.BlackjackScore(e.dealer), 17)

	seen := map[model.Card]bool{}
	for _, c := range append(append([]model.Card(nil), e.player...), e.dealer...) {
		assert.False(t, seen[c], "duplicate %s", c)
		seen[c] = true
	}
	for _, c := range e.deck {
		assert.False(t, seen[c], "%s still in shoe", c)
	}

	require.NoError(t, e.PlaceBet(ctx, 100, ""))
	assert.NotEqual(t, model.PhaseBetting, e.Snapshot().Phase)
	assert.Len(t, e.player, 2)
}
