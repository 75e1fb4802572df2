package holdem

import (
	"fmt"
	"testing"

	"cashtable-server/internal/rng"
	"cashtable-server/pkg/deck"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stackedDeck returns a generator that shuffles a new deck so the cards are drawn in the order given
// Once the script is used up the generator leaves later decks unshuffled
func stackedDeck(draws string) rng.Generator {
	want := deck.CardsFromString(draws)
	inWant := make(map[deck.Card]bool, len(want))
	for _, card := range want {
		inWant[card] = true
	}

	cards := deck.New().Cards()
	target := make([]deck.Card, 0, len(cards))
	for _, card := range cards {
		if !inWant[card] {
			target = append(target, card)
		}
	}

	for i := len(want) - 1; i >= 0; i-- {
		target = append(target, want[i])
	}

	// replay the Fisher-Yates shuffle, picking whichever index lands the target card
	values := make([]int, 0, len(cards))
	for j := len(cards) - 1; j > 0; j-- {
		idx := -1
		for i := 0; i <= j; i++ {
			if cards[i] == target[j] {
				idx = i
				break
			}
		}

		if idx < 0 {
			panic(fmt.Sprintf("card %s not found", target[j]))
		}

		values = append(values, idx)
		cards[idx], cards[j] = cards[j], cards[idx]
	}

	return rng.NewSequence(values...)
}

// deckOf returns a deck that deals the cards in the order given
func deckOf(draws string) *deck.Deck {
	cards := deck.CardsFromString(draws)
	for i, j := 0, len(cards)-1; i < j; i, j = i+1, j-1 {
		cards[i], cards[j] = cards[j], cards[i]
	}

	return deck.NewFromCards(cards)
}

// setupHand seats players p1...pn with the stacks given and deals the first hand
func setupHand(t *testing.T, gen rng.Generator, stacks ...int) *Hand {
	t.Helper()

	table := NewTable("table-1", 20)
	for i, stack := range stacks {
		require.NoError(t, table.Seat(NewPlayer(fmt.Sprintf("p%d", i+1), stack)))
	}

	h := NewHand(table, gen, logrus.StandardLogger())
	require.NoError(t, h.Start())
	return h
}

func player(t *testing.T, h *Hand, id string) *Player {
	t.Helper()

	p, _ := h.table.Player(id)
	require.NotNil(t, p, "player %s is not seated", id)
	return p
}

func assertAction(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	require.NoError(t, err, msgAndArgs...)
}

// assertActionFailed asserts that fn fails with expectedErr and leaves the hand untouched
func assertActionFailed(t *testing.T, h *Hand, fn func() error, expectedErr string, msgAndArgs ...interface{}) {
	t.Helper()

	before := h.View()
	events := len(h.events)

	err := fn()
	assert.EqualError(t, err, expectedErr, msgAndArgs...)

	var actionErr ActionError
	assert.ErrorAs(t, err, &actionErr, msgAndArgs...)
	assert.Equal(t, before, h.View(), msgAndArgs...)
	assert.Len(t, h.events, events, msgAndArgs...)
}

func countEvents(events []Event, kind EventKind, playerID, counter string) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind && e.PlayerID == playerID && e.Counter == counter {
			n++
		}
	}

	return n
}

func balances(events []Event) map[string]int {
	b := make(map[string]int)
	for _, e := range events {
		if e.Kind == EventBalance {
			b[e.PlayerID] = e.Chips
		}
	}

	return b
}
