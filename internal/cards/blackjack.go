package cards

import "royal_casino/internal/model"

// BlackjackScore sums card values and re-counts soft aces as 1 while the
// total is over 21.
func BlackjackScore(hand []model.Card) int {
	score, aces := 0, 0
	for _, c := range hand {
		score += c.Value
		if c.Rank == model.Ace {
			aces++
		}
	}
	for score > 21 && aces > 0 {
		score -= 10
		aces--
	}
	return score
}

// IsBlackjack is exactly two cards scoring 21.
func IsBlackjack(hand []model.Card) bool {
	return len(hand) == 2 && BlackjackScore(hand) == 21
}

// BaccaratScore is the card sum modulo 10 with A=1 and tens/faces=0.
func BaccaratScore(hand []model.Card) int {
	sum := 0
	for _, c := range hand {
		switch {
		case c.Rank == model.Ace:
			sum++
		case c.Rank < 10:
			sum += int(c.Rank)
		}
	}
	return sum % 10
}
