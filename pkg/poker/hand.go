package poker

import (
	"encoding/json"
	"fmt"
)

// Category is a poker hand category, i.e., royal flush
// Higher values beat lower values
type Category int

// Constants for category
const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	case RoyalFlush:
		return "Royal flush"
	default:
		panic(fmt.Sprintf("unknown category: %d", c))
	}
}

// MarshalJSON encodes the category as its name
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

var rankNames = map[int][2]string{
	2:  {"two", "twos"},
	3:  {"three", "threes"},
	4:  {"four", "fours"},
	5:  {"five", "fives"},
	6:  {"six", "sixes"},
	7:  {"seven", "sevens"},
	8:  {"eight", "eights"},
	9:  {"nine", "nines"},
	10: {"ten", "tens"},
	11: {"jack", "jacks"},
	12: {"queen", "queens"},
	13: {"king", "kings"},
	14: {"ace", "aces"},
}

func rankName(rank int, plural bool) string {
	names, ok := rankNames[rank]
	if !ok {
		return fmt.Sprintf("%d", rank)
	}

	if plural {
		return names[1]
	}

	return names[0]
}
