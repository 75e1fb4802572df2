package holdem

import (
	"fmt"
	"math"
	"strings"

	"cashtable-server/internal/rng"
	"cashtable-server/pkg/poker"
	"github.com/sirupsen/logrus"
)

// Hand runs the betting state machine for a table
// A Hand is not safe for concurrent use, callers must serialize access per table
type Hand struct {
	table  *Table
	gen    rng.Generator
	logger logrus.FieldLogger

	number   int
	started  bool
	finished bool
	round    Round
	acting   int
	buttonID string
	button   int
	maxBet   int

	dealer   *Dealer
	ledger   *PotLedger
	hasActed map[string]bool

	// participants are the players dealt into the current hand
	participants map[string]bool
	// leaving are players who left mid-hand and are removed at the next relaunch
	leaving map[string]bool

	waiting []WaitingEntry
	replay  map[string]*bool
	results []ShowdownResult
	message string
	events  []Event
}

// NewHand returns a hand bound to the table
// No cards are dealt until at least two players are seated
func NewHand(table *Table, gen rng.Generator, logger logrus.FieldLogger) *Hand {
	return &Hand{
		table:        table,
		gen:          gen,
		logger:       logger.WithField("tableId", table.ID),
		acting:       -1,
		ledger:       NewPotLedger(),
		hasActed:     make(map[string]bool),
		participants: make(map[string]bool),
		leaving:      make(map[string]bool),
		replay:       make(map[string]*bool),
	}
}

// Table returns the table the hand is bound to
func (h *Hand) Table() *Table {
	return h.table
}

// Number returns how many hands have been started on the table
func (h *Hand) Number() int {
	return h.number
}

// Started returns true once the first hand has been dealt
func (h *Hand) Started() bool {
	return h.started
}

// Finished returns true if the hand is over and the replay vote is open
func (h *Hand) Finished() bool {
	return h.finished
}

// Acting returns the id of the player expected to act, or an empty string
func (h *Hand) Acting() string {
	if h.acting < 0 || h.acting >= len(h.table.Players) {
		return ""
	}

	return h.table.Players[h.acting].ID
}

// Seated returns the ids of the seated players in seat order
func (h *Hand) Seated() []string {
	ids := make([]string, len(h.table.Players))
	for i, p := range h.table.Players {
		ids[i] = p.ID
	}

	return ids
}

// Start deals a new hand to the seated players
func (h *Hand) Start() error {
	t := h.table
	n := len(t.Players)
	if n < 2 {
		return ErrNotEnoughPlayers
	}

	t.ResetForNewHand(h.gen)
	h.dealer = NewDealer(t)
	h.ledger = NewPotLedger()
	h.dealer.DealHoleCards()

	h.number++
	h.started = true
	h.finished = false
	h.round = Preflop
	h.results = nil
	h.replay = make(map[string]*bool)
	h.leaving = make(map[string]bool)
	h.participants = make(map[string]bool, n)
	for _, p := range t.Players {
		h.participants[p.ID] = true
	}

	h.button = t.DealerIndex % n
	h.buttonID = t.Players[h.button].ID
	sb := (h.button + 1) % n
	bb := (h.button + 2) % n

	t.Players[sb].commit(t.SmallBlind())
	t.Players[bb].commit(t.BigBlind)
	h.maxBet = t.BigBlind

	// the button moves for the next hand
	t.DealerIndex = (h.button + 1) % n

	h.resetHasActed()
	h.acting = -1
	h.message = fmt.Sprintf("hand #%d started, %s has the button", h.number, h.buttonID)

	h.logger.WithFields(logrus.Fields{
		"handNumber": h.number,
		"button":     h.buttonID,
		"deckHash":   t.Deck.HashCode(),
	}).Debug("hand started")

	h.acting = h.nextActor(bb)
	if h.acting < 0 || h.roundComplete() {
		h.closeRound()
	}

	return nil
}

// resetHasActed clears the acted flags for the new round
// all-in players are treated as having acted
func (h *Hand) resetHasActed() {
	h.hasActed = make(map[string]bool, len(h.table.Players))
	for _, p := range h.table.Players {
		if p.Active {
			h.hasActed[p.ID] = p.Stack == 0
		}
	}
}

func (h *Hand) activePlayers() []*Player {
	active := make([]*Player, 0, len(h.table.Players))
	for _, p := range h.table.Players {
		if p.Active {
			active = append(active, p)
		}
	}

	return active
}

// tableCap is the most any active player may have in front of them this round
// It is the smallest stack+bet among active players and stands in for side pots
func (h *Hand) tableCap() int {
	limit := math.MaxInt
	for _, p := range h.activePlayers() {
		if total := p.Stack + p.Bet; total < limit {
			limit = total
		}
	}

	if limit == math.MaxInt {
		return 0
	}

	return limit
}

// nextActor returns the first seat after from that can act and has not acted, or -1
func (h *Hand) nextActor(from int) int {
	n := len(h.table.Players)
	for i := 1; i <= n; i++ {
		idx := (from + i) % n
		p := h.table.Players[idx]
		if p.canAct() && !h.hasActed[p.ID] {
			return idx
		}
	}

	return -1
}

// roundComplete returns true if the betting round is closed
func (h *Hand) roundComplete() bool {
	active := h.activePlayers()
	if len(active) <= 1 {
		return true
	}

	limit := h.tableCap()
	allCapped := true
	for _, p := range active {
		if p.Stack != 0 && p.Bet != limit {
			allCapped = false
			break
		}
	}

	if allCapped {
		return true
	}

	bet := active[0].Bet
	for _, p := range active {
		if p.Bet != bet {
			return false
		}

		if !h.hasActed[p.ID] && p.Stack > 0 {
			return false
		}
	}

	return true
}

func (h *Hand) allActiveAllIn() bool {
	for _, p := range h.activePlayers() {
		if p.Stack > 0 {
			return false
		}
	}

	return true
}

// sweepBets moves every outstanding bet into the pot
func (h *Hand) sweepBets() {
	for _, p := range h.table.Players {
		if p.Bet > 0 {
			h.ledger.AddContribution(p.ID, p.Bet)
			p.Bet = 0
		}
	}

	h.ledger.Consolidate()
	h.maxBet = 0
}

// closeRound sweeps the bets and deals the next street
// If nobody is left to make a decision, the remaining streets are dealt without stopping
func (h *Hand) closeRound() {
	h.sweepBets()

	if len(h.activePlayers()) <= 1 || h.round == River {
		h.showdown()
		return
	}

	h.round = h.dealer.NextRound()
	h.resetHasActed()

	if h.allActiveAllIn() {
		for h.round != River {
			h.round = h.dealer.NextRound()
		}

		h.showdown()
		return
	}

	h.acting = h.nextActor(h.button)
	if h.acting < 0 {
		h.closeRound()
	}
}

// afterAction updates the acted flags and moves the action along
// prevMaxBet is the max bet before the action was applied
func (h *Hand) afterAction(p *Player, prevMaxBet int, wasActing bool) {
	h.hasActed[p.ID] = true

	if h.maxBet > prevMaxBet {
		for _, other := range h.table.Players {
			if other.Active && other.Stack > 0 && other.ID != p.ID {
				h.hasActed[other.ID] = false
			}
		}
	}

	for _, other := range h.table.Players {
		if other.IsAllIn() {
			h.hasActed[other.ID] = true
		}
	}

	if h.roundComplete() {
		h.closeRound()
		return
	}

	if !wasActing {
		return
	}

	h.acting = h.nextActor(h.acting)
	if h.acting < 0 {
		h.logger.WithField("handNumber", h.number).Warn("no player left to act on an open round")
		h.closeRound()
	}
}

// showdown pays out the pot and opens the replay vote
func (h *Hand) showdown() {
	h.sweepBets()

	pot := h.ledger.Pot()
	qualifiers := make([]*Player, 0, len(h.table.Players))
	for _, p := range h.table.Players {
		if p.Active || p.Bet > 0 {
			qualifiers = append(qualifiers, p)
		}
	}

	h.results = make([]ShowdownResult, 0, len(qualifiers))
	winners := make([]*Player, 0, 1)

	switch len(qualifiers) {
	case 0:
		h.ledger.Distribute(nil)
	case 1:
		winner := qualifiers[0]
		winners = append(winners, winner)
		share := h.ledger.Distribute(winners)
		h.results = append(h.results, ShowdownResult{
			PlayerID:    winner.ID,
			Cards:       copyCards(winner.Cards),
			Description: "won uncontested",
			Won:         true,
			Winnings:    share,
		})
	default:
		evaluated := make([]poker.Result, len(qualifiers))
		best := 0
		for i, p := range qualifiers {
			r, err := poker.Best(p.Cards, h.table.Board)
			if err != nil {
				panic(fmt.Errorf("evaluate hand for %s: %w", p.ID, err))
			}

			evaluated[i] = r
			if i > 0 && poker.Compare(r, evaluated[best]) > 0 {
				best = i
			}
		}

		isWinner := make([]bool, len(qualifiers))
		for i := range qualifiers {
			if poker.Compare(evaluated[i], evaluated[best]) == 0 {
				isWinner[i] = true
				winners = append(winners, qualifiers[i])
			}
		}

		share := h.ledger.Distribute(winners)
		for i, p := range qualifiers {
			result := ShowdownResult{
				PlayerID:    p.ID,
				Cards:       copyCards(p.Cards),
				Description: evaluated[i].String(),
				Won:         isWinner[i],
			}

			h.emitStat(p.ID, CounterShowdowns)
			if isWinner[i] {
				result.Winnings = share
				h.emitStat(p.ID, CounterShowdownWins)
			}

			h.results = append(h.results, result)
		}
	}

	for _, w := range winners {
		h.emitStat(w.ID, CounterHandsWon)
	}

	for _, p := range h.table.Players {
		if h.participants[p.ID] {
			h.emitStat(p.ID, CounterHandsPlayed)
			h.emitBalance(p)
		}
	}

	h.round = Finished
	h.finished = true
	h.acting = -1
	h.maxBet = 0

	h.replay = make(map[string]*bool, len(h.table.Players))
	for _, p := range h.table.Players {
		if h.leaving[p.ID] {
			h.replay[p.ID] = boolPtr(false)
		} else {
			h.replay[p.ID] = nil
		}
	}

	ids := make([]string, len(winners))
	for i, w := range winners {
		ids[i] = w.ID
	}
	h.message = fmt.Sprintf("hand #%d finished, %s won a pot of %d", h.number, strings.Join(ids, " and "), pot)

	h.logger.WithFields(logrus.Fields{
		"handNumber": h.number,
		"pot":        pot,
		"winners":    ids,
	}).Info("hand finished")
}

func boolPtr(b bool) *bool {
	return &b
}
