package holdem

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// actor validates that playerID may act right now
// It never mutates the hand
func (h *Hand) actor(playerID string) (*Player, error) {
	if !h.started {
		return nil, ErrHandNotStarted
	}

	if h.finished {
		return nil, ErrHandFinished
	}

	p, idx := h.table.Player(playerID)
	if p == nil {
		return nil, ErrUnknownPlayer
	}

	if !p.Active {
		return nil, ErrInactivePlayer
	}

	if idx != h.acting {
		return nil, ErrNotYourTurn
	}

	return p, nil
}

func (h *Hand) log(playerID string) logrus.FieldLogger {
	return h.logger.WithFields(logrus.Fields{
		"handNumber": h.number,
		"playerId":   playerID,
	})
}

// Bet puts amount more chips in front of the player
func (h *Hand) Bet(playerID string, amount int) error {
	p, err := h.actor(playerID)
	if err != nil {
		return err
	}

	bb := h.table.BigBlind
	total := amount + p.Bet

	if amount <= 0 {
		return newActionError("bet amount must be positive")
	}

	if total < h.maxBet {
		return newActionError("a bet of %d is below the current bet of %d", total, h.maxBet)
	}

	if total != bb && total < 2*bb {
		return newActionError("a bet must be exactly %d or at least %d", bb, 2*bb)
	}

	if amount > p.Stack {
		return newActionError("you only have %d chips", p.Stack)
	}

	if limit := h.tableCap(); total > limit {
		return newActionError("a bet of %d exceeds the table cap of %d", total, limit)
	}

	prevMaxBet := h.maxBet
	p.commit(amount)
	if total > h.maxBet {
		h.maxBet = total
	}

	if prevMaxBet > 0 && total > prevMaxBet {
		h.emitStat(p.ID, CounterRaises)
		h.message = fmt.Sprintf("%s raises to %d", p.ID, total)
	} else {
		h.emitStat(p.ID, CounterBets)
		h.message = fmt.Sprintf("%s bets %d", p.ID, total)
	}

	h.log(p.ID).WithField("amount", amount).Debug("bet")
	h.afterAction(p, prevMaxBet, true)
	return nil
}

// Call matches the current bet, or checks if there is nothing to match
func (h *Hand) Call(playerID string) error {
	p, err := h.actor(playerID)
	if err != nil {
		return err
	}

	topUp := h.maxBet - p.Bet
	if topUp > p.Stack {
		return newActionError("calling requires %d chips but you only have %d, go all-in instead", topUp, p.Stack)
	}

	p.commit(topUp)
	if topUp > 0 {
		h.emitStat(p.ID, CounterCalls)
		h.message = fmt.Sprintf("%s calls %d", p.ID, topUp)
	} else {
		h.emitStat(p.ID, CounterChecks)
		h.message = fmt.Sprintf("%s checks", p.ID)
	}

	h.log(p.ID).WithField("amount", topUp).Debug("call")
	h.afterAction(p, h.maxBet, true)
	return nil
}

// AllIn commits the player's entire stack
func (h *Hand) AllIn(playerID string) error {
	p, err := h.actor(playerID)
	if err != nil {
		return err
	}

	total := p.Stack + p.Bet
	if limit := h.tableCap(); total > limit {
		return newActionError("an all-in of %d exceeds the table cap, the most you can bet is %d", total, limit)
	}

	prevMaxBet := h.maxBet
	p.commit(p.Stack)
	if total > h.maxBet {
		h.maxBet = total
	}

	h.emitStat(p.ID, CounterAllIns)
	h.message = fmt.Sprintf("%s is all-in for %d", p.ID, total)

	h.log(p.ID).WithField("total", total).Debug("all-in")
	h.afterAction(p, prevMaxBet, true)
	return nil
}

// Fold takes the player out of the hand
func (h *Hand) Fold(playerID string) error {
	p, err := h.actor(playerID)
	if err != nil {
		return err
	}

	h.fold(p, true)
	return nil
}

// fold marks the player inactive and pushes their bet into the pot
// If a single player remains, they win immediately
func (h *Hand) fold(p *Player, wasActing bool) {
	p.Active = false
	if p.Bet > 0 {
		h.ledger.AddContribution(p.ID, p.Bet)
		p.Bet = 0
		h.ledger.Consolidate()
	}

	h.emitStat(p.ID, CounterFolds)
	h.message = fmt.Sprintf("%s folds", p.ID)
	h.log(p.ID).Debug("fold")

	if len(h.activePlayers()) == 1 {
		h.showdown()
		return
	}

	h.afterAction(p, h.maxBet, wasActing)
}

func (h *Hand) waitingIndex(playerID string) int {
	for i, w := range h.waiting {
		if w.ID == playerID {
			return i
		}
	}

	return -1
}

// Join brings a player to the table
// Before the first hand the player is seated directly, otherwise they wait for the next relaunch
func (h *Hand) Join(playerID string, stack int) error {
	if stack < h.table.BigBlind {
		return ErrInsufficientStack
	}

	if _, idx := h.table.Player(playerID); idx >= 0 || h.waitingIndex(playerID) >= 0 {
		return ErrAlreadySeated
	}

	if !h.started {
		if err := h.table.Seat(NewPlayer(playerID, stack)); err != nil {
			return err
		}

		h.message = fmt.Sprintf("%s sat down with %d", playerID, stack)
		h.log(playerID).WithField("stack", stack).Info("player seated")
		if len(h.table.Players) >= 2 {
			return h.Start()
		}

		return nil
	}

	h.waiting = append(h.waiting, WaitingEntry{ID: playerID, Stack: stack})
	h.message = fmt.Sprintf("%s is waiting for the next hand", playerID)
	h.log(playerID).WithField("stack", stack).Info("player added to the waiting list")

	if h.finished {
		h.relaunch()
	}

	return nil
}

// Leave removes a player from the table or the waiting list
// A player in the middle of a hand is folded and removed when the next hand starts
func (h *Hand) Leave(playerID string) error {
	if idx := h.waitingIndex(playerID); idx >= 0 {
		h.waiting = append(h.waiting[:idx], h.waiting[idx+1:]...)
		h.message = fmt.Sprintf("%s left the waiting list", playerID)
		return nil
	}

	p, idx := h.table.Player(playerID)
	if p == nil {
		return ErrNotSeated
	}

	h.message = fmt.Sprintf("%s left the table", playerID)
	h.log(playerID).Info("player left")

	switch {
	case !h.started:
		_, err := h.table.Unseat(playerID)
		return err
	case h.finished:
		delete(h.replay, playerID)
		if _, err := h.table.Unseat(playerID); err != nil {
			return err
		}

		h.relaunch()
	default:
		h.leaving[playerID] = true
		if p.Active {
			h.fold(p, idx == h.acting)
		}
	}

	return nil
}

// RecordReplayDecision records whether a player wants to play the next hand
// A player below one big blind is always recorded as a no
func (h *Hand) RecordReplayDecision(playerID string, wantsToPlay bool) error {
	if !h.finished {
		return ErrNoReplayVote
	}

	if _, ok := h.replay[playerID]; !ok {
		return ErrNotInHand
	}

	p, _ := h.table.Player(playerID)
	if p == nil || p.Stack < h.table.BigBlind || h.leaving[playerID] {
		wantsToPlay = false
	}

	h.replay[playerID] = boolPtr(wantsToPlay)
	if wantsToPlay {
		h.message = fmt.Sprintf("%s will play the next hand", playerID)
	} else {
		h.message = fmt.Sprintf("%s will sit out the next hand", playerID)
	}

	h.relaunch()
	return nil
}

// relaunch starts the next hand once every seated player has voted and two or more are ready
// The seats are rebuilt from the yes votes in seat order, followed by the waiting list
func (h *Hand) relaunch() bool {
	if !h.finished {
		return false
	}

	for _, decision := range h.replay {
		if decision == nil {
			return false
		}
	}

	next := make([]*Player, 0, MaxSeats)
	for _, p := range h.table.Players {
		decision := h.replay[p.ID]
		if decision != nil && *decision && p.Stack >= h.table.BigBlind && !h.leaving[p.ID] {
			next = append(next, p)
		}
	}

	remaining := make([]WaitingEntry, 0, len(h.waiting))
	for _, w := range h.waiting {
		if len(next) < MaxSeats && w.Stack >= h.table.BigBlind {
			next = append(next, NewPlayer(w.ID, w.Stack))
			continue
		}

		remaining = append(remaining, w)
	}

	if len(next) < 2 {
		h.log("").WithField("ready", len(next)).Debug("not enough players to relaunch")
		return false
	}

	t := h.table
	dealerIndex := t.DealerIndex
	t.Players = make([]*Player, 0, MaxSeats)
	for _, p := range next {
		if err := t.Seat(p); err != nil {
			panic(fmt.Errorf("reseat %s: %w", p.ID, err))
		}
	}

	t.DealerIndex = dealerIndex
	h.waiting = remaining
	if err := h.Start(); err != nil {
		panic(fmt.Errorf("relaunch: %w", err))
	}

	return true
}
