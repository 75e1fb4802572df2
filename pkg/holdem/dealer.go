package holdem

import (
	"fmt"

	"cashtable-server/pkg/deck"
)

// Dealer deals a single hand from the table's deck
type Dealer struct {
	table *Table
	round Round
}

// NewDealer returns a dealer bound to the table's current players and deck
func NewDealer(table *Table) *Dealer {
	return &Dealer{
		table: table,
		round: Preflop,
	}
}

// Round returns the current round label
func (d *Dealer) Round() Round {
	return d.round
}

// draw pulls the next card
// running out of cards means the dealer was wired incorrectly, which cannot be recovered from
func (d *Dealer) draw() deck.Card {
	card, err := d.table.Deck.Draw()
	if err != nil {
		panic(fmt.Errorf("table %s: %w", d.table.ID, err))
	}

	return card
}

func (d *Dealer) burn() {
	_ = d.draw()
}

func (d *Dealer) activePlayers() int {
	n := 0
	for _, p := range d.table.Players {
		if p.Active {
			n++
		}
	}

	return n
}

// DealHoleCards resets every player's hand, then deals two cards to each player
// Cards go out one at a time in seat order
func (d *Dealer) DealHoleCards() {
	for _, p := range d.table.Players {
		p.reset()
		p.Cards = make([]deck.Card, 0, 2)
	}

	for pass := 0; pass < 2; pass++ {
		for _, p := range d.table.Players {
			p.Cards = append(p.Cards, d.draw())
		}
	}

	d.round = Preflop
}

// DealFlop burns a card and deals three to the board
func (d *Dealer) DealFlop() {
	if d.activePlayers() <= 1 {
		return
	}

	d.burn()
	for i := 0; i < 3; i++ {
		d.table.Board = append(d.table.Board, d.draw())
	}

	d.round = Flop
}

// DealTurn burns a card and deals one to the board
func (d *Dealer) DealTurn() {
	if d.activePlayers() <= 1 {
		return
	}

	d.burn()
	d.table.Board = append(d.table.Board, d.draw())
	d.round = Turn
}

// DealRiver burns a card and deals one to the board
func (d *Dealer) DealRiver() {
	if d.activePlayers() <= 1 {
		return
	}

	d.burn()
	d.table.Board = append(d.table.Board, d.draw())
	d.round = River
}

// NextRound deals the stage that follows the current round
// After the river, the round is marked finished
func (d *Dealer) NextRound() Round {
	switch d.round {
	case Preflop:
		d.DealFlop()
	case Flop:
		d.DealTurn()
	case Turn:
		d.DealRiver()
	case River:
		d.round = Finished
	}

	return d.round
}
