package cards

import (
	"fmt"
	"royal_casino/internal/model"
	"sort"
)

// Category is the poker hand class, ordered by strength.
type Category int

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

var categoryNames = [...]string{
	"High Card",
	"Pair",
	"Two Pair",
	"Three of a Kind",
	"Straight",
	"Flush",
	"Full House",
	"Four of a Kind",
	"Straight Flush",
	"Royal Flush",
}

func (c Category) String() string {
	if c < HighCard || c > RoyalFlush {
		return "Unknown"
	}
	return categoryNames[c]
}

// HandValue is a category plus the decisive rank kept for display.
type HandValue struct {
	Category Category   `json:"category"`
	HighCard model.Rank `json:"high_card"`
	Name     string     `json:"name"`
}

type rankCount struct {
	rank  model.Rank
	count int
}

// Evaluate5 classifies exactly five cards.
func Evaluate5(hand []model.Card) (HandValue, error) {
	if len(hand) != 5 {
		return HandValue{}, fmt.Errorf("evaluate %d cards: %w", len(hand), model.ErrInvalidSelection)
	}

	counts := make(map[model.Rank]int, 5)
	flush := true
	for i, c := range hand {
		counts[c.Rank]++
		if i > 0 && c.Suit != hand[0].Suit {
			flush = false
		}
	}

	groups := make([]rankCount, 0, len(counts))
	for r, n := range counts {
		groups = append(groups, rankCount{rank: r, count: n})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].rank > groups[j].rank
	})

	straight, top := straightTop(groups)

	var v HandValue
	switch {
	case straight && flush && top == model.Ace:
		v = HandValue{Category: RoyalFlush, HighCard: top}
	case straight && flush:
		v = HandValue{Category: StraightFlush, HighCard: top}
	case groups[0].count == 4:
		v = HandValue{Category: FourOfAKind, HighCard: groups[0].rank}
	case groups[0].count == 3 && groups[1].count == 2:
		v = HandValue{Category: FullHouse, HighCard: groups[0].rank}
	case flush:
		v = HandValue{Category: Flush, HighCard: groups[0].rank}
	case straight:
		v = HandValue{Category: Straight, HighCard: top}
	case groups[0].count == 3:
		v = HandValue{Category: ThreeOfAKind, HighCard: groups[0].rank}
	case groups[0].count == 2 && groups[1].count == 2:
		v = HandValue{Category: TwoPair, HighCard: groups[0].rank}
	case groups[0].count == 2:
		v = HandValue{Category: Pair, HighCard: groups[0].rank}
	default:
		v = HandValue{Category: HighCard, HighCard: groups[0].rank}
	}

	v.Name = v.Category.String()
	if v.Category == Pair && v.HighCard >= model.Jack {
		v.Name = "Jacks or Better"
	}
	return v, nil
}

// straightTop expects groups sorted by rank when all counts are 1.
// The wheel A-2-3-4-5 is a five-high straight.
func straightTop(groups []rankCount) (bool, model.Rank) {
	if len(groups) != 5 {
		return false, 0
	}
	hi, lo := groups[0].rank, groups[4].rank
	if hi-lo == 4 {
		return true, hi
	}
	if hi == model.Ace && groups[1].rank == 5 && lo == 2 {
		return true, 5
	}
	return false, 0
}

// EvaluateBest returns the strongest category over every 5-card subset.
// Equal categories are not broken by kickers.
func EvaluateBest(cards []model.Card) (HandValue, error) {
	n := len(cards)
	if n < 5 {
		return HandValue{}, fmt.Errorf("evaluate %d cards: %w", n, model.ErrInvalidSelection)
	}

	var (
		best  HandValue
		found bool
		five  = make([]model.Card, 5)
		pick  [5]int
	)
	var rec func(start, k int) error
	rec = func(start, k int) error {
		if k == 5 {
			for i := range five {
				five[i] = cards[pick[i]]
			}
			v, err := Evaluate5(five)
			if err != nil {
				return err
			}
			if !found || v.Category > best.Category {
				best, found = v, true
			}
			return nil
		}
		for i := start; i <= n-(5-k); i++ {
			pick[k] = i
			if err := rec(i+1, k+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := rec(0, 0); err != nil {
		return HandValue{}, err
	}
	return best, nil
}

// IsJacksOrBetter reports a single pair of jacks, queens, kings or aces.
func IsJacksOrBetter(v HandValue) bool {
	return v.Category == Pair && v.HighCard >= model.Jack
}
