package holdem

// EventKind identifies what a hand event reports
type EventKind int

// event kinds
const (
	// EventBalance reports a player's chip balance after a hand
	EventBalance EventKind = iota
	// EventStat reports a counter increment
	EventStat
)

// Counters reported by EventStat
const (
	CounterHandsPlayed  = "hands_played"
	CounterHandsWon     = "hands_won"
	CounterBets         = "bets"
	CounterRaises       = "raises"
	CounterCalls        = "calls"
	CounterChecks       = "checks"
	CounterFolds        = "folds"
	CounterAllIns       = "all_ins"
	CounterShowdowns    = "showdowns"
	CounterShowdownWins = "showdown_wins"
)

// Event is emitted by the hand after a mutation
// The hand never calls out to collaborators directly, callers drain events and dispatch them
type Event struct {
	Kind     EventKind
	PlayerID string
	Chips    int
	Counter  string
}

func (h *Hand) emitStat(playerID, counter string) {
	h.events = append(h.events, Event{Kind: EventStat, PlayerID: playerID, Counter: counter})
}

func (h *Hand) emitBalance(p *Player) {
	h.events = append(h.events, Event{Kind: EventBalance, PlayerID: p.ID, Chips: p.Stack})
}

// DrainEvents returns the pending events and clears the outbox
func (h *Hand) DrainEvents() []Event {
	events := h.events
	h.events = nil
	return events
}
