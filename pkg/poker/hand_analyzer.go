package poker

import (
	"errors"
	"fmt"
	"sort"

	"cashtable-server/pkg/deck"
)

// ErrInvalidHandSize is returned when fewer than 5 or more than 7 cards are evaluated
var ErrInvalidHandSize = errors.New("a hand must have between 5 and 7 cards")

const (
	minCards   = 5
	maxCards   = 7
	maxTieVals = 5
)

// Result is an evaluated hand
// TieBreak holds the comparison values for the category, most significant first
type Result struct {
	Category Category `json:"category"`
	TieBreak []int    `json:"tieBreak"`
}

// String returns a human readable description, i.e., "Full house, threes full of nines"
func (r Result) String() string {
	tb := func(i int) int {
		if i < len(r.TieBreak) {
			return r.TieBreak[i]
		}
		return 0
	}

	switch r.Category {
	case RoyalFlush:
		return r.Category.String()
	case StraightFlush, Straight, Flush:
		return fmt.Sprintf("%s, %s high", r.Category, rankName(tb(0), false))
	case FourOfAKind, ThreeOfAKind:
		return fmt.Sprintf("%s, %s", r.Category, rankName(tb(0), true))
	case FullHouse:
		return fmt.Sprintf("%s, %s full of %s", r.Category, rankName(tb(0), true), rankName(tb(1), true))
	case TwoPair:
		return fmt.Sprintf("%s, %s and %s", r.Category, rankName(tb(0), true), rankName(tb(1), true))
	case OnePair:
		return fmt.Sprintf("Pair of %s", rankName(tb(0), true))
	default:
		return fmt.Sprintf("%s, %s", r.Category, rankName(tb(0), false))
	}
}

// Evaluate ranks 5 to 7 cards into the best possible five card hand
func Evaluate(cards []deck.Card) (Result, error) {
	if len(cards) < minCards || len(cards) > maxCards {
		return Result{}, ErrInvalidHandSize
	}

	h := newHandAnalyzer(cards)
	return h.result(), nil
}

// Best evaluates hole cards together with the board
func Best(hole, board []deck.Card) (Result, error) {
	cards := make([]deck.Card, 0, len(hole)+len(board))
	cards = append(cards, hole...)
	cards = append(cards, board...)
	return Evaluate(cards)
}

// Compare returns 1 if a beats b, -1 if b beats a, and 0 on a tie
func Compare(a, b Result) int {
	if a.Category != b.Category {
		if a.Category > b.Category {
			return 1
		}
		return -1
	}

	for i := 0; i < len(a.TieBreak) && i < len(b.TieBreak); i++ {
		if a.TieBreak[i] > b.TieBreak[i] {
			return 1
		} else if a.TieBreak[i] < b.TieBreak[i] {
			return -1
		}
	}

	return 0
}

// handAnalyzer breaks a set of cards down into its combinations
type handAnalyzer struct {
	// ranks, highest first
	ranks []int
	flush []int
	quads []int
	trips []int
	pairs []int

	straightFlush int
	straight      int
}

func newHandAnalyzer(cards []deck.Card) *handAnalyzer {
	sorted := make([]deck.Card, len(cards))
	copy(sorted, cards)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rank > sorted[j].Rank
	})

	h := &handAnalyzer{
		ranks: make([]int, len(sorted)),
	}

	h.analyzeHand(sorted)
	return h
}

// analyzeHand collects the pairs, trips, quads, flush and straights
func (h *handAnalyzer) analyzeHand(sorted []deck.Card) {
	suitRanks := make(map[deck.Suit][]int)
	var counts [deck.Ace + 1]int

	for i, card := range sorted {
		h.ranks[i] = card.Rank
		counts[card.Rank]++
		suitRanks[card.Suit] = append(suitRanks[card.Suit], card.Rank)
	}

	for rank := deck.Ace; rank >= 2; rank-- {
		switch counts[rank] {
		case 4:
			h.quads = append(h.quads, rank)
		case 3:
			h.trips = append(h.trips, rank)
		case 2:
			h.pairs = append(h.pairs, rank)
		}
	}

	for _, suit := range deck.Suits {
		if ranks := suitRanks[suit]; len(ranks) >= minCards {
			h.flush = ranks
			h.straightFlush = straightHigh(ranks)
			break
		}
	}

	h.straight = straightHigh(h.ranks)
}

// kickers returns up to n ranks, highest first, skipping the excluded ranks
func (h *handAnalyzer) kickers(n int, exclude ...int) []int {
	kickers := make([]int, 0, n)
outer:
	for _, rank := range h.ranks {
		if len(kickers) == n {
			break
		}

		for _, ex := range exclude {
			if rank == ex {
				continue outer
			}
		}

		kickers = append(kickers, rank)
	}

	return kickers
}

func (h *handAnalyzer) fullHouse() ([]int, bool) {
	if len(h.trips) == 0 {
		return nil, false
	}

	trips := h.trips[0]
	pair := 0
	if len(h.pairs) > 0 {
		pair = h.pairs[0]
	}

	// a second set of trips can serve as the pair
	if len(h.trips) >= 2 && h.trips[1] > pair {
		pair = h.trips[1]
	}

	if pair == 0 {
		return nil, false
	}

	return []int{trips, pair}, true
}

// result determines the best hand
// earlier checks take precedence
func (h *handAnalyzer) result() Result {
	var r Result

	if h.straightFlush == deck.Ace {
		r = Result{Category: RoyalFlush, TieBreak: []int{deck.Ace}}
	} else if h.straightFlush > 0 {
		r = Result{Category: StraightFlush, TieBreak: []int{h.straightFlush}}
	} else if len(h.quads) > 0 {
		quad := h.quads[0]
		r = Result{Category: FourOfAKind, TieBreak: append([]int{quad}, h.kickers(1, quad)...)}
	} else if fh, ok := h.fullHouse(); ok {
		r = Result{Category: FullHouse, TieBreak: fh}
	} else if h.flush != nil {
		r = Result{Category: Flush, TieBreak: append([]int(nil), h.flush[:minCards]...)}
	} else if h.straight > 0 {
		r = Result{Category: Straight, TieBreak: []int{h.straight}}
	} else if len(h.trips) > 0 {
		trips := h.trips[0]
		r = Result{Category: ThreeOfAKind, TieBreak: append([]int{trips}, h.kickers(2, trips)...)}
	} else if len(h.pairs) >= 2 {
		hi, lo := h.pairs[0], h.pairs[1]
		r = Result{Category: TwoPair, TieBreak: append([]int{hi, lo}, h.kickers(1, hi, lo)...)}
	} else if len(h.pairs) == 1 {
		pair := h.pairs[0]
		r = Result{Category: OnePair, TieBreak: append([]int{pair}, h.kickers(3, pair)...)}
	} else {
		r = Result{Category: HighCard, TieBreak: h.kickers(minCards)}
	}

	if len(r.TieBreak) > maxTieVals {
		r.TieBreak = r.TieBreak[:maxTieVals]
	}

	return r
}
