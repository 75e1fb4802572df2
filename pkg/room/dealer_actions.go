package room

import (
	"context"
	"fmt"

	"cashtable-server/pkg/holdem"
)

// Join sits the player down with their wallet balance
// The balance is read before the join is queued, a wallet error leaves the table untouched
func (d *Dealer) Join(ctx context.Context, playerID string) (holdem.HandView, error) {
	if d.wallet == nil {
		return holdem.HandView{}, fmt.Errorf("table %s has no wallet", d.id)
	}

	balance, err := d.wallet.Balance(ctx, playerID)
	if err != nil {
		return holdem.HandView{}, fmt.Errorf("could not read balance for %s: %w", playerID, err)
	}

	return d.mutate(ctx, playerID, false, func(h *holdem.Hand) error {
		return h.Join(playerID, balance)
	})
}

// Leave removes the player from the table or the waiting list
func (d *Dealer) Leave(ctx context.Context, playerID string) (holdem.HandView, error) {
	return d.mutate(ctx, playerID, false, func(h *holdem.Hand) error {
		return h.Leave(playerID)
	})
}

// Bet puts amount more chips in front of the player
func (d *Dealer) Bet(ctx context.Context, playerID string, amount int) (holdem.HandView, error) {
	return d.mutate(ctx, playerID, true, func(h *holdem.Hand) error {
		return h.Bet(playerID, amount)
	})
}

// Call matches the current bet, or checks
func (d *Dealer) Call(ctx context.Context, playerID string) (holdem.HandView, error) {
	return d.mutate(ctx, playerID, true, func(h *holdem.Hand) error {
		return h.Call(playerID)
	})
}

// AllIn commits the player's whole stack
func (d *Dealer) AllIn(ctx context.Context, playerID string) (holdem.HandView, error) {
	return d.mutate(ctx, playerID, true, func(h *holdem.Hand) error {
		return h.AllIn(playerID)
	})
}

// Fold takes the player out of the hand
func (d *Dealer) Fold(ctx context.Context, playerID string) (holdem.HandView, error) {
	return d.mutate(ctx, playerID, true, func(h *holdem.Hand) error {
		return h.Fold(playerID)
	})
}

// RecordReplayDecision records whether the player wants to play the next hand
func (d *Dealer) RecordReplayDecision(ctx context.Context, playerID string, wantsToPlay bool) (holdem.HandView, error) {
	return d.mutate(ctx, playerID, false, func(h *holdem.Hand) error {
		return h.RecordReplayDecision(playerID, wantsToPlay)
	})
}

// View returns the public view of the table
func (d *Dealer) View(ctx context.Context) (holdem.HandView, error) {
	return d.ViewFor(ctx, "")
}

// ViewFor returns the view of the table as seen by playerID
// A faulted table serves the last view taken before the fault
func (d *Dealer) ViewFor(ctx context.Context, playerID string) (holdem.HandView, error) {
	var view holdem.HandView
	err := d.exec(ctx, func() {
		if d.faulted {
			view = d.lastView
			return
		}

		view = d.hand.ViewFor(playerID)
	})

	return view, err
}

// Seated returns the ids of the seated players
func (d *Dealer) Seated(ctx context.Context) ([]string, error) {
	var seated []string
	err := d.exec(ctx, func() {
		seated = d.hand.Seated()
	})

	return seated, err
}

// LogMessages returns the most recent action log
func (d *Dealer) LogMessages(ctx context.Context) ([]LogMessage, error) {
	var messages []LogMessage
	err := d.exec(ctx, func() {
		messages = make([]LogMessage, len(d.logMessages))
		copy(messages, d.logMessages)
	})

	return messages, err
}

// Faulted returns true if the table no longer accepts actions
func (d *Dealer) Faulted(ctx context.Context) (bool, error) {
	var faulted bool
	err := d.exec(ctx, func() {
		faulted = d.faulted
	})

	return faulted, err
}
