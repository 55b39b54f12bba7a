package cards

import (
	"fmt"
	"royal_casino/internal/model"
	"royal_casino/pkg/rng"
)

const (
	StandardSize = 52
	DurakSize    = 36
)

// Deck is consumed from its end: the last element is the top card.
type Deck []model.Card

// BlackjackValue is the scoring value carried on every standard card.
func BlackjackValue(r model.Rank) int {
	switch {
	case r == model.Ace:
		return 11
	case r >= model.Jack:
		return 10
	}
	return int(r)
}

func build(src rng.Source, lowest model.Rank) Deck {
	deck := make(Deck, 0, int(model.Ace-lowest+1)*len(model.Suits))
	for _, s := range model.Suits {
		for r := lowest; r <= model.Ace; r++ {
			deck = append(deck, model.Card{Suit: s, Rank: r, Value: BlackjackValue(r)})
		}
	}
	rng.Shuffle(src, deck)
	return deck
}

// NewStandard returns 52 shuffled cards.
func NewStandard(src rng.Source) Deck {
	return build(src, 2)
}

// NewDurak returns the 36-card reduced deck (6..A), shuffled.
func NewDurak(src rng.Source) Deck {
	return build(src, 6)
}

func (d Deck) Len() int {
	return len(d)
}

// Draw removes n cards from the top.
func (d *Deck) Draw(n int) ([]model.Card, error) {
	if n < 0 || n > len(*d) {
		return nil, fmt.Errorf("draw %d of %d: %w", n, len(*d), model.ErrInsufficientCards)
	}
	cut := len(*d) - n
	out := make([]model.Card, n)
	// top card first
	for i := 0; i < n; i++ {
		out[i] = (*d)[len(*d)-1-i]
	}
	*d = (*d)[:cut]
	return out, nil
}

// DrawOne draws the top card.
func (d *Deck) DrawOne() (model.Card, error) {
	c, err := d.Draw(1)
	if err != nil {
		return model.Card{}, err
	}
	return c[0], nil
}

// Bottom returns the card that will be drawn last.
func (d Deck) Bottom() (model.Card, bool) {
	if len(d) == 0 {
		return model.Card{}, false
	}
	return d[0], true
}

// Without drops every card present in the given hands.
func (d Deck) Without(hands ...[]model.Card) Deck {
	held := make(map[model.Card]struct{})
	for _, h := range hands {
		for _, c := range h {
			held[c] = struct{}{}
		}
	}
	out := make(Deck, 0, len(d))
	for _, c := range d {
		if _, ok := held[c]; !ok {
			out = append(out, c)
		}
	}
	return out
}
