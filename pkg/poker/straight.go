package poker

import "cashtable-server/pkg/deck"

// straightHigh returns the high card of the best straight that can be formed from ranks
// The ace plays low only for the wheel (A-2-3-4-5), which returns 5
// Returns 0 if there is no straight
func straightHigh(ranks []int) int {
	var present [deck.Ace + 1]bool
	for _, rank := range ranks {
		present[rank] = true
	}
	present[deck.LowAce] = present[deck.Ace]

	streak := 0
	for rank := deck.Ace; rank >= deck.LowAce; rank-- {
		if !present[rank] {
			streak = 0
			continue
		}

		streak++
		if streak == 5 {
			return rank + 4
		}
	}

	return 0
}
