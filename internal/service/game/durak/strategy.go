package durak

import (
	"royal_casino/internal/cards"
	"royal_casino/internal/model"
	"sort"
)

// Role is the side a hand plays in the current turn.
type Role int

const (
	RoleAttack Role = iota
	RoleDefend
)

type MoveKind string

const (
	MoveAttack MoveKind = "attack"
	MoveDefend MoveKind = "defend"
	MovePass   MoveKind = "pass"
	MoveTake   MoveKind = "take"
)

// Move names a hand index for attack and defend moves.
type Move struct {
	Kind  MoveKind
	Index int
}

// Pair is one attack on the table and its cover, if any.
type Pair struct {
	Attack  model.Card  `json:"attack"`
	Defense *model.Card `json:"defense,omitempty"`
}

func tableCards(table []Pair) []model.Card {
	out := make([]model.Card, 0, len(table)*2)
	for _, p := range table {
		out = append(out, p.Attack)
		if p.Defense != nil {
			out = append(out, *p.Defense)
		}
	}
	return out
}

func allDefended(table []Pair) bool {
	for _, p := range table {
		if p.Defense == nil {
			return false
		}
	}
	return true
}

// cheapestFirst orders hand indexes with non-trumps before trumps, then by
// rank.
func cheapestFirst(hand []model.Card, trump model.Suit) []int {
	idx := make([]int, len(hand))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ca, cb := hand[idx[a]], hand[idx[b]]
		ta, tb := ca.Suit == trump, cb.Suit == trump
		if ta != tb {
			return !ta
		}
		return cards.DurakOrder(ca.Rank) < cards.DurakOrder(cb.Rank)
	})
	return idx
}

// Decide is the scripted opponent: it always plays its cheapest legal
// card, passing or taking when it has none.
func Decide(hand []model.Card, table []Pair, trump model.Suit, role Role) Move {
	order := cheapestFirst(hand, trump)

	if role == RoleAttack {
		on := tableCards(table)
		for _, i := range order {
			if cards.CanAttack(hand[i], on) {
				return Move{Kind: MoveAttack, Index: i}
			}
		}
		return Move{Kind: MovePass}
	}

	if len(table) == 0 || table[len(table)-1].Defense != nil {
		return Move{Kind: MovePass}
	}
	attack := table[len(table)-1].Attack
	for _, i := range order {
		if cards.Beats(hand[i], attack, trump) {
			return Move{Kind: MoveDefend, Index: i}
		}
	}
	return Move{Kind: MoveTake}
}
