package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
}

func TestCard_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("2♡", Card{Rank: 2, Suit: Hearts}.String())
	a.Equal("J♣", Card{Rank: Jack, Suit: Clubs}.String())
	a.Equal("Q♢", Card{Rank: Queen, Suit: Diamonds}.String())
	a.Equal("K♠", Card{Rank: King, Suit: Spades}.String())
	a.Equal("A♠", Card{Rank: Ace, Suit: Spades}.String())
	a.Equal("10♡", Card{Rank: 10, Suit: Hearts}.String())

	a.Panics(func() {
		_ = Card{Rank: 2, Suit: "bogus"}.String()
	})
}

func TestParseCard(t *testing.T) {
	a := assert.New(t)

	tests := map[string]Card{
		"14c": {Rank: Ace, Suit: Clubs},
		"2d":  {Rank: 2, Suit: Diamonds},
		"10h": {Rank: 10, Suit: Hearts},
		"Td":  {Rank: 10, Suit: Diamonds},
		"As":  {Rank: Ace, Suit: Spades},
		"kH":  {Rank: King, Suit: Hearts},
		" 3s": {Rank: 3, Suit: Spades},
	}

	for in, expects := range tests {
		card, err := ParseCard(in)
		a.NoError(err, in)
		a.Equal(expects, card, in)
	}

	for _, in := range []string{"", "1c", "15c", "0h", "Ax", "10", "AAs"} {
		_, err := ParseCard(in)
		a.Error(err, in)
	}

	a.Panics(func() {
		CardFromString("zz")
	})
}

func TestCardsToString(t *testing.T) {
	a := assert.New(t)

	cards := CardsFromString("14c,2d,10h")
	a.Len(cards, 3)
	a.Equal("14c,2d,10h", CardsToString(cards))
	a.Equal("", CardsToString(nil))
	a.Empty(CardsFromString(""))
}
