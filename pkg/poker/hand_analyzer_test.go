package poker

import (
	"testing"

	"cashtable-server/pkg/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evaluate(t *testing.T, cards string) Result {
	t.Helper()

	r, err := Evaluate(deck.CardsFromString(cards))
	require.NoError(t, err)
	return r
}

func TestEvaluate_InvalidHandSize(t *testing.T) {
	a := assert.New(t)

	_, err := Evaluate(deck.CardsFromString("2c,3c,4c,5c"))
	a.Equal(ErrInvalidHandSize, err)

	_, err = Evaluate(deck.CardsFromString("2c,3c,4c,5c,6c,7c,8c,9c"))
	a.Equal(ErrInvalidHandSize, err)

	_, err = Evaluate(nil)
	a.Equal(ErrInvalidHandSize, err)
}

func TestEvaluate_Categories(t *testing.T) {
	tests := []struct {
		cards    string
		category Category
		tieBreak []int
	}{
		{"14h,13h,12h,11h,10h,2c,3d", RoyalFlush, []int{14}},
		{"9s,8s,7s,6s,5s,14s,2d", StraightFlush, []int{9}},
		{"14d,2d,3d,4d,5d,13c,13h", StraightFlush, []int{5}},
		{"7c,7d,7h,7s,2c,13d,3h", FourOfAKind, []int{7, 13}},
		{"3c,3d,3h,9s,9d", FullHouse, []int{3, 9}},
		{"3c,3d,3h,9s,9d,9h,2c", FullHouse, []int{9, 3}},
		{"3c,3d,3h,9s,9d,12h,12c", FullHouse, []int{3, 12}},
		{"2h,7h,9h,11h,13h,14c,14d", Flush, []int{13, 11, 9, 7, 2}},
		{"2h,7h,9h,11h,13h,3h,4h", Flush, []int{13, 11, 9, 7, 4}},
		{"10c,11d,12h,13s,14c,2d,2h", Straight, []int{14}},
		{"14c,2d,3h,4s,5c,9d,13h", Straight, []int{5}},
		{"14c,2d,3h,4s,5c,6d,13h", Straight, []int{6}},
		{"5c,6d,7h,8s,9c,10d,11h", Straight, []int{11}},
		{"8c,8d,8h,2s,14c,12d,5h", ThreeOfAKind, []int{8, 14, 12}},
		{"11c,11d,4h,4s,2c", TwoPair, []int{11, 4, 2}},
		{"11c,11d,4h,4s,2c,2d,9h", TwoPair, []int{11, 4, 9}},
		{"11c,11d,4h,4s,3c,3d,2h", TwoPair, []int{11, 4, 3}},
		{"8c,8d,14h,3s,5c,10d,13h", OnePair, []int{8, 14, 13, 10}},
		{"2c,4d,6h,8s,10c,12d,14h", HighCard, []int{14, 12, 10, 8, 6}},
		{"13c,12d,11h,10s,2c", HighCard, []int{13, 12, 11, 10, 2}},
	}

	for _, test := range tests {
		r := evaluate(t, test.cards)
		assert.Equal(t, test.category, r.Category, test.cards)
		assert.Equal(t, test.tieBreak, r.TieBreak, test.cards)
		assert.LessOrEqual(t, len(r.TieBreak), 5, test.cards)
	}
}

func TestEvaluate_AceIsOnlyLowForTheWheel(t *testing.T) {
	// Q-K-A-2-3 is not a straight
	r := evaluate(t, "12c,13d,14h,2s,3c")
	assert.Equal(t, HighCard, r.Category)
	assert.Equal(t, []int{14, 13, 12, 3, 2}, r.TieBreak)
}

func TestEvaluate_DoesNotMutateInput(t *testing.T) {
	cards := deck.CardsFromString("2c,14d,3h,13s,4c")
	_, err := Evaluate(cards)
	assert.NoError(t, err)
	assert.Equal(t, "2c,14d,3h,13s,4c", deck.CardsToString(cards))
}

func TestCompare(t *testing.T) {
	a := assert.New(t)

	royal := evaluate(t, "14h,13h,12h,11h,10h")
	kingHighSF := evaluate(t, "13s,12s,11s,10s,9s")
	a.Equal(1, Compare(royal, kingHighSF))
	a.Equal(-1, Compare(kingHighSF, royal))

	// identical pairs, different kicker
	twoPairKingKicker := evaluate(t, "11c,11d,4h,4s,13c,2d,3h")
	twoPairQueenKicker := evaluate(t, "11h,11s,4c,4d,12c,2h,3s")
	a.Equal(1, Compare(twoPairKingKicker, twoPairQueenKicker))
	a.Equal(-1, Compare(twoPairQueenKicker, twoPairKingKicker))

	// split pot
	board := "2c,7d,9h,11s,13c"
	r1 := evaluate(t, board+",3d,4d")
	r2 := evaluate(t, board+",3h,4h")
	a.Equal(0, Compare(r1, r2))

	// the wheel is the lowest straight
	wheel := evaluate(t, "14c,2d,3h,4s,5c")
	six := evaluate(t, "2d,3h,4s,5c,6d")
	a.Equal(-1, Compare(wheel, six))

	// flush beats straight, full house beats flush
	a.Equal(1, Compare(evaluate(t, "2h,7h,9h,11h,13h"), evaluate(t, "10c,11d,12h,13s,14c")))
	a.Equal(1, Compare(evaluate(t, "3c,3d,3h,2s,2d"), evaluate(t, "14h,13h,12h,11h,9h")))
}

func TestBest(t *testing.T) {
	r, err := Best(deck.CardsFromString("14s,14d"), deck.CardsFromString("14c,14h,2d"))
	assert.NoError(t, err)
	assert.Equal(t, FourOfAKind, r.Category)
	assert.Equal(t, []int{14, 2}, r.TieBreak)

	_, err = Best(deck.CardsFromString("14s,14d"), deck.CardsFromString("14c"))
	assert.Equal(t, ErrInvalidHandSize, err)
}

func TestResult_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("Royal flush", evaluate(t, "14h,13h,12h,11h,10h").String())
	a.Equal("Straight flush, five high", evaluate(t, "14d,2d,3d,4d,5d").String())
	a.Equal("Four of a kind, sevens", evaluate(t, "7c,7d,7h,7s,2c").String())
	a.Equal("Full house, threes full of nines", evaluate(t, "3c,3d,3h,9s,9d").String())
	a.Equal("Flush, king high", evaluate(t, "2h,7h,9h,11h,13h").String())
	a.Equal("Straight, ace high", evaluate(t, "10c,11d,12h,13s,14c").String())
	a.Equal("Three of a kind, eights", evaluate(t, "8c,8d,8h,2s,14c").String())
	a.Equal("Two pair, jacks and fours", evaluate(t, "11c,11d,4h,4s,2c").String())
	a.Equal("Pair of sixes", evaluate(t, "6c,6d,4h,9s,2c").String())
	a.Equal("High card, ace", evaluate(t, "2c,4d,6h,8s,14h").String())
}

func TestCategory_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("Full house", FullHouse.String())
	a.Equal("High card", HighCard.String())
	a.Panics(func() {
		_ = Category(99).String()
	})

	b, err := FullHouse.MarshalJSON()
	a.NoError(err)
	a.Equal(`"Full house"`, string(b))
}

func TestStraightHigh(t *testing.T) {
	a := assert.New(t)
	a.Equal(5, straightHigh([]int{14, 2, 3, 4, 5}))
	a.Equal(14, straightHigh([]int{14, 13, 12, 11, 10, 2, 3}))
	a.Equal(0, straightHigh([]int{14, 13, 12, 11, 9}))
	a.Equal(8, straightHigh([]int{8, 8, 7, 6, 5, 4}))
	a.Equal(0, straightHigh([]int{13, 14, 2, 3, 4}))
}
