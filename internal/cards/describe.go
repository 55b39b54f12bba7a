package cards

import (
	"royal_casino/internal/model"

	"github.com/paulhankin/poker"
)

// toPH converts to the library card. Library ranks run 1..13 with Ace=1.
func toPH(c model.Card) (poker.Card, error) {
	var s poker.Suit
	switch c.Suit {
	case model.Clubs:
		s = poker.Club
	case model.Diamonds:
		s = poker.Diamond
	case model.Hearts:
		s = poker.Heart
	default:
		s = poker.Spade
	}
	r := poker.Rank(c.Rank)
	if c.Rank == model.Ace {
		r = poker.Rank(1)
	}
	return poker.MakeCard(s, r)
}

// Describe renders a human description of the best hand in cards
// (five or seven of them). Empty on failure.
func Describe(cards []model.Card) string {
	pcs := make([]poker.Card, 0, len(cards))
	for _, c := range cards {
		pc, err := toPH(c)
		if err != nil {
			return ""
		}
		pcs = append(pcs, pc)
	}
	d, err := poker.Describe(pcs)
	if err != nil {
		return ""
	}
	return d
}
