package holdem

import "cashtable-server/pkg/deck"

// Player is a player seated at a table
type Player struct {
	ID    string
	Stack int
	Cards []deck.Card
	// Bet is the amount committed during the current betting round
	Bet    int
	Active bool
}

// NewPlayer returns a new player
func NewPlayer(id string, stack int) *Player {
	return &Player{
		ID:    id,
		Stack: stack,
	}
}

// IsAllIn returns true if the player is still in the hand with no chips behind
func (p *Player) IsAllIn() bool {
	return p.Active && p.Stack == 0
}

// canAct returns true if the player can still make decisions this hand
func (p *Player) canAct() bool {
	return p.Active && p.Stack > 0
}

// commit moves chips from the stack into the current bet
func (p *Player) commit(amount int) {
	if amount > p.Stack {
		amount = p.Stack
	}

	p.Stack -= amount
	p.Bet += amount
}

func (p *Player) reset() {
	p.Cards = nil
	p.Bet = 0
	p.Active = true
}
