package baccarat

import (
	"context"
	"royal_casino/internal/cards"
	"royal_casino/internal/config/env"
	"royal_casino/internal/model"
	"royal_casino/internal/service/game/gametest"
	"royal_casino/pkg/rng"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func c(r model.Rank) model.Card {
	return model.Card{Suit: model.Hearts, Rank: r, Value: cards.BlackjackValue(r)}
}

func stack(order ...model.Card) cards.Deck {
	d := make(cards.Deck, len(order))
	for i, card := range order {
		d[len(order)-1-i] = card
	}
	return d
}

func newEngine(t *testing.T, bet string, amount int) (*serv, *gametest.Fixture) {
	t.Helper()
	f := gametest.NewFixture(1000)
	e := NewBaccaratService(f.Wallet, rng.New(8), env.NewDefaultGamesConfig().Baccarat()).(*serv)
	require.NoError(t, e.PlaceBet(context.Background(), amount, bet))
	return e, f
}

func TestNaturalStopsDrawing(t *testing.T) {
	e, f := newEngine(t, BetPlayer, 100)
	// player 4+5=9, banker 10+3=3
	res, err := e.deal(context.Background(), stack(c(4), c(5), c(10), c(3), c(2), c(2)))
	require.NoError(t, err)

	assert.Len(t, e.player, 2)
	assert.Len(t, e.banker, 2)
	assert.Equal(t, 200, res.Payout)
	assert.Equal(t, 1100, f.Balance())
}

func TestThirdCardsAndBankerPays195(t *testing.T) {
	e, f := newEngine(t, BetBanker, 100)
	// player A+2=3 draws K → 3; banker 2+2=4 draws 3 → 7
	res, err := e.deal(context.Background(), stack(c(model.Ace), c(2), c(2), c(2), c(model.King), c(3)))
	require.NoError(t, err)

	assert.Len(t, e.player, 3)
	assert.Len(t, e.banker, 3)
	assert.Equal(t, "BANKER WINS", res.Label)
	assert.Equal(t, 195, res.Payout)
	assert.Equal(t, 1095, f.Balance())
}

func TestTieBetPaysNine(t *testing.T) {
	e, f := newEngine(t, BetTie, 10)
	res, err := e.deal(context.Background(), stack(c(4), c(4), c(3), c(5)))
	require.NoError(t, err)
	assert.Equal(t, 90, res.Payout)
	assert.Equal(t, 1080, f.Balance())
}

func TestTieOnSideBetIsPush(t *testing.T) {
	e, f := newEngine(t, BetPlayer, 100)
	res, err := e.deal(context.Background(), stack(c(4), c(4), c(3), c(5)))
	require.NoError(t, err)
	assert.Equal(t, model.OutcomePush, res.Outcome)
	assert.Equal(t, 1000, f.Balance())
}

func TestSwitchRefundsAndClear(t *testing.T) {
	ctx := context.Background()
	e, f := newEngine(t, BetPlayer, 100)
	require.NoError(t, e.PlaceBet(ctx, 50, BetBanker))
	assert.Equal(t, 950, f.Balance())
	assert.Equal(t, BetBanker, e.Snapshot().Bet.Type)

	require.NoError(t, e.Act(ctx, model.Action{Name: "clear"}))
	assert.Equal(t, 1000, f.Balance())
	assert.ErrorIs(t, e.PlaceBet(ctx, 50, "DRAGON"), model.ErrInvalidSelection)
}

func TestDealWithoutBet(t *testing.T) {
	f := gametest.NewFixture(1000)
	e := NewBaccaratService(f.Wallet, rng.New(8), env.NewDefaultGamesConfig().Baccarat())
	_, err := e.Resolve(context.Background())
	assert.ErrorIs(t, err, model.ErrNoActiveRound)
}
