package holdem

import (
	"cashtable-server/internal/rng"
	"cashtable-server/pkg/deck"
)

// MaxSeats is the number of seats at a table
const MaxSeats = 5

// Table is a fixed capacity poker table
type Table struct {
	ID       string
	BigBlind int
	Players  []*Player
	// DealerIndex is the seat that holds the button for the next hand
	DealerIndex int
	Board       []deck.Card
	Deck        *deck.Deck
}

// NewTable returns an empty table
func NewTable(id string, bigBlind int) *Table {
	return &Table{
		ID:       id,
		BigBlind: bigBlind,
		Players:  make([]*Player, 0, MaxSeats),
		Deck:     deck.New(),
	}
}

// SmallBlind is half of the big blind, rounded down
func (t *Table) SmallBlind() int {
	return t.BigBlind / 2
}

// Seat appends a player to the next open seat
func (t *Table) Seat(p *Player) error {
	if _, idx := t.Player(p.ID); idx >= 0 {
		return ErrAlreadySeated
	}

	if len(t.Players) >= MaxSeats {
		return ErrTableFull
	}

	t.Players = append(t.Players, p)
	return nil
}

// Unseat removes a player by id
func (t *Table) Unseat(id string) (*Player, error) {
	p, idx := t.Player(id)
	if idx < 0 {
		return nil, ErrNotSeated
	}

	t.Players = append(t.Players[:idx], t.Players[idx+1:]...)
	if t.DealerIndex > idx {
		t.DealerIndex--
	}

	return p, nil
}

// Player returns the seated player and their seat index, or nil and -1
func (t *Table) Player(id string) (*Player, int) {
	for i, p := range t.Players {
		if p.ID == id {
			return p, i
		}
	}

	return nil, -1
}

// ResetForNewHand clears the board and brings in a freshly shuffled deck
// Seating is not touched
func (t *Table) ResetForNewHand(gen rng.Generator) {
	t.Board = make([]deck.Card, 0, 5)
	d := deck.New()
	d.Shuffle(gen)
	t.Deck = d
}
