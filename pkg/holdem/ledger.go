package holdem

// PotLedger keeps track of the main pot and the contributions that have not been swept into it
type PotLedger struct {
	pot     int
	pending map[string]int
}

// NewPotLedger returns an empty ledger
func NewPotLedger() *PotLedger {
	return &PotLedger{
		pending: make(map[string]int),
	}
}

// AddContribution records chips from a player that will move into the pot on Consolidate
func (l *PotLedger) AddContribution(playerID string, amount int) {
	if amount <= 0 {
		return
	}

	l.pending[playerID] += amount
}

// Consolidate sweeps the pending contributions into the pot
// Returns the amount moved
func (l *PotLedger) Consolidate() int {
	moved := 0
	for _, amount := range l.pending {
		moved += amount
	}

	l.pot += moved
	l.pending = make(map[string]int)
	return moved
}

// Distribute splits the pot evenly across the winners and zeroes it
// Any remainder from the integer division is not awarded
// Returns the amount each winner received
func (l *PotLedger) Distribute(winners []*Player) int {
	if len(winners) == 0 {
		return 0
	}

	share := l.pot / len(winners)
	for _, p := range winners {
		p.Stack += share
	}

	l.pot = 0
	return share
}

// Pot returns the size of the main pot
func (l *PotLedger) Pot() int {
	return l.pot
}

// Pending returns a copy of the contributions not yet swept into the pot
func (l *PotLedger) Pending() map[string]int {
	pending := make(map[string]int, len(l.pending))
	for id, amount := range l.pending {
		pending[id] = amount
	}

	return pending
}
