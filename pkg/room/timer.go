package room

import (
	"cashtable-server/pkg/holdem"
	"github.com/sirupsen/logrus"
)

// turnKey identifies a single decision the acting player owes the table
type turnKey struct {
	handNumber int
	playerID   string
	seq        int
}

// armTimer starts the action timer for the acting player
// The timer is restarted after each turn action, other mutations keep the running timer
// NOTE: must only be called from the run loop
func (d *Dealer) armTimer(turnAction bool) {
	if d.actionTimeout <= 0 || d.faulted {
		return
	}

	acting := d.hand.Acting()
	key := turnKey{
		handNumber: d.hand.Number(),
		playerID:   acting,
		seq:        d.timerKey.seq,
	}

	if !turnAction && d.timer != nil && key == d.timerKey {
		return
	}

	d.stopTimer()
	if acting == "" {
		return
	}

	key.seq++
	d.timerKey = key
	d.timer = d.clock.AfterFunc(d.actionTimeout, func() {
		select {
		case d.execInRunLoop <- func() { d.expire(key) }:
		case <-d.close:
		}
	}, "room", "actionTimeout")
}

// NOTE: must only be called from the run loop
func (d *Dealer) stopTimer() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// expire folds the player if they still owe the decision the timer was armed for
// NOTE: must only be called from the run loop
func (d *Dealer) expire(key turnKey) {
	if key != d.timerKey || d.faulted {
		return
	}

	d.timer = nil
	if d.hand.Number() != key.handNumber || d.hand.Acting() != key.playerID || d.hand.Finished() {
		return
	}

	d.logger.WithFields(logrus.Fields{
		"playerId":   key.playerID,
		"handNumber": key.handNumber,
		"timeout":    d.actionTimeout,
	}).Info("player timed out")

	if _, err := d.apply(key.playerID, true, func(h *holdem.Hand) error {
		return h.Fold(key.playerID)
	}); err != nil {
		d.logger.WithError(err).WithField("playerId", key.playerID).Warn("could not fold timed out player")
	}
}
