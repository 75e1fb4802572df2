package room

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cashtable-server/internal/rng"
	"cashtable-server/pkg/holdem"
	"cashtable-server/pkg/stats"
	"cashtable-server/pkg/wallet"
	"github.com/coder/quartz"
	"github.com/sanity-io/litter"
	"github.com/sirupsen/logrus"
)

// ErrTableFaulted is returned once a table hit an unrecoverable error
// The last good view is still served, but no more actions are accepted
var ErrTableFaulted = errors.New("the table is faulted and no longer accepts actions")

// ErrTableClosed is returned when the dealer's shift has ended
var ErrTableClosed = errors.New("the table is closed")

const sinkTimeout = time.Second * 5

// DealerOptions configures a dealer
type DealerOptions struct {
	ID       string
	Name     string
	BigBlind int
	// ActionTimeout folds the acting player when they take longer than this, 0 disables it
	ActionTimeout time.Duration
	Clock         quartz.Clock
	Generator     rng.Generator
	Wallet        wallet.Wallet
	Stats         stats.Recorder
}

// Dealer owns a single table
// Every read and write of the hand happens on the dealer's run loop
type Dealer struct {
	id       string
	name     string
	bigBlind int

	hand      *holdem.Hand
	lastView  holdem.HandView
	faulted   bool
	wallet    wallet.Wallet
	stats     stats.Recorder
	statsWG   sync.WaitGroup
	logger    logrus.FieldLogger
	clock     quartz.Clock
	createdAt time.Time

	actionTimeout time.Duration
	timer         *quartz.Timer
	timerKey      turnKey

	clients     map[*Client]bool
	lock        sync.RWMutex
	logMessages []LogMessage

	execInRunLoop chan func()
	close         chan bool
	closeOnce     sync.Once
	done          chan bool
}

// NewDealer creates a new dealer object
// The run loop does not start until StartShift() is called
func NewDealer(opts DealerOptions, logger logrus.FieldLogger) *Dealer {
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}

	if opts.Generator == nil {
		opts.Generator = rng.Crypto{}
	}

	logger = logger.WithField("tableId", opts.ID)
	table := holdem.NewTable(opts.ID, opts.BigBlind)
	hand := holdem.NewHand(table, opts.Generator, logger)

	return &Dealer{
		id:            opts.ID,
		name:          opts.Name,
		bigBlind:      opts.BigBlind,
		hand:          hand,
		lastView:      hand.View(),
		wallet:        opts.Wallet,
		stats:         opts.Stats,
		logger:        logger,
		clock:         opts.Clock,
		createdAt:     opts.Clock.Now(),
		actionTimeout: opts.ActionTimeout,
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
		done:          make(chan bool),
	}
}

// ID returns the table id
func (d *Dealer) ID() string {
	return d.id
}

// Name returns the table's display name
func (d *Dealer) Name() string {
	return d.name
}

// BigBlind returns the table's big blind
func (d *Dealer) BigBlind() int {
	return d.bigBlind
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

func (d *Dealer) runLoop() {
	d.logger.Debug("creating dealer run loop")
	defer close(d.done)

	for {
		select {
		case fn := <-d.execInRunLoop:
			fn()
		case <-d.close:
			d.stopTimer()
			d.logger.Debug("terminating dealer run loop")
			return
		}
	}
}

// EndShift stops the run loop and waits for pending stat writes
func (d *Dealer) EndShift(ctx context.Context) error {
	d.closeOnce.Do(func() {
		close(d.close)
	})

	statsDone := make(chan bool)
	go func() {
		<-d.done
		d.statsWG.Wait()
		close(statsDone)
	}()

	select {
	case <-statsDone:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("table %s: %w", d.id, ctx.Err())
	}
}

// exec runs fn on the run loop and waits for it to finish
func (d *Dealer) exec(ctx context.Context, fn func()) error {
	finished := make(chan bool)
	job := func() {
		defer close(finished)
		fn()
	}

	select {
	case d.execInRunLoop <- job:
	case <-d.close:
		return ErrTableClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-finished:
		return nil
	case <-d.done:
		return ErrTableClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// mutate applies fn to the hand on the run loop and returns the view for playerID
func (d *Dealer) mutate(ctx context.Context, playerID string, turnAction bool, fn func(h *holdem.Hand) error) (holdem.HandView, error) {
	var view holdem.HandView
	var actionErr error
	if err := d.exec(ctx, func() {
		view, actionErr = d.apply(playerID, turnAction, fn)
	}); err != nil {
		return holdem.HandView{}, err
	}

	return view, actionErr
}

// apply performs the mutation, then dispatches its side effects
// NOTE: must only be called from the run loop
func (d *Dealer) apply(playerID string, turnAction bool, fn func(h *holdem.Hand) error) (view holdem.HandView, err error) {
	if d.faulted {
		return d.lastView, ErrTableFaulted
	}

	defer func() {
		if r := recover(); r != nil {
			d.fault(r)
			view, err = d.lastView, ErrTableFaulted
		}
	}()

	if err := fn(d.hand); err != nil {
		return d.hand.ViewFor(playerID), err
	}

	d.afterMutation(turnAction)
	return d.hand.ViewFor(playerID), nil
}

// fault marks the table as faulted after a panic in the engine
// NOTE: must only be called from the run loop
func (d *Dealer) fault(r interface{}) {
	d.faulted = true
	d.stopTimer()
	d.logger.WithFields(logrus.Fields{
		"panic":      fmt.Sprintf("%v", r),
		"handNumber": d.hand.Number(),
	}).Error("table faulted")

	d.broadcast(func(_ string) interface{} {
		return newErrorResponse("", ErrTableFaulted)
	})
}

// afterMutation drains the hand's events and brings everybody up to date
// NOTE: must only be called from the run loop
func (d *Dealer) afterMutation(turnAction bool) {
	d.dispatch(d.hand.DrainEvents())

	view := d.hand.View()
	if view.Message != d.lastView.Message || view.HandNumber != d.lastView.HandNumber {
		d.addLogMessage(view.HandNumber, view.Message)
	}

	d.lastView = view

	entry := d.logger.WithField("handNumber", view.HandNumber)
	if entry.Logger.IsLevelEnabled(logrus.TraceLevel) {
		entry.Trace(litter.Sdump(view))
	}

	d.armTimer(turnAction)
	d.broadcast(func(playerID string) interface{} {
		return newViewResponse(d.hand.ViewFor(playerID))
	})
}

// dispatch sends the events to the wallet and stats collaborators
// Balance writes happen inline, stat writes are fire-and-forget
// NOTE: must only be called from the run loop
func (d *Dealer) dispatch(events []holdem.Event) {
	for _, e := range events {
		switch e.Kind {
		case holdem.EventBalance:
			if d.wallet == nil {
				continue
			}

			ctx, cancel := context.WithTimeout(context.Background(), sinkTimeout)
			if err := d.wallet.SetBalance(ctx, e.PlayerID, e.Chips); err != nil {
				d.logger.WithError(err).WithFields(logrus.Fields{
					"playerId": e.PlayerID,
					"chips":    e.Chips,
				}).Error("could not save balance")
			}
			cancel()
		case holdem.EventStat:
			if d.stats == nil {
				continue
			}

			d.statsWG.Add(1)
			go func(playerID, counter string) {
				defer d.statsWG.Done()

				ctx, cancel := context.WithTimeout(context.Background(), sinkTimeout)
				defer cancel()

				if err := d.stats.Increment(ctx, playerID, counter); err != nil {
					d.logger.WithError(err).WithFields(logrus.Fields{
						"playerId": playerID,
						"counter":  counter,
					}).Warn("could not record stat")
				}
			}(e.PlayerID, e.Counter)
		}
	}
}
