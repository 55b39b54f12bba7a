package cards

import "royal_casino/internal/model"

// DurakOrder ranks 6 < 7 < ... < K < A.
func DurakOrder(r model.Rank) int {
	return int(r) - 6
}

// Beats reports whether defense covers attack under trump.
func Beats(defense, attack model.Card, trump model.Suit) bool {
	switch {
	case defense.Suit == attack.Suit:
		return DurakOrder(defense.Rank) > DurakOrder(attack.Rank)
	case defense.Suit == trump:
		return true
	}
	return false
}

// CanAttack allows any card on an empty table, otherwise only ranks
// already present on it.
func CanAttack(card model.Card, table []model.Card) bool {
	if len(table) == 0 {
		return true
	}
	for _, c := range table {
		if c.Rank == card.Rank {
			return true
		}
	}
	return false
}
