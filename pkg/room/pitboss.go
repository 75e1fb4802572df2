package room

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"cashtable-server/internal/rng"
	"cashtable-server/internal/util"
	"cashtable-server/pkg/stats"
	"cashtable-server/pkg/wallet"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidBigBlind is returned when a table is created with a big blind below 2
var ErrInvalidBigBlind = errors.New("the big blind must be at least 2")

// Options configures the tables a PitBoss opens
type Options struct {
	ActionTimeout time.Duration
	Clock         quartz.Clock
	// NewGenerator returns the shuffle source for a new table, crypto/rand is used when nil
	NewGenerator func() rng.Generator
}

// PitBoss is responsible for opening tables and dispatching players to them
type PitBoss struct {
	dealers map[string]*Dealer
	lock    sync.RWMutex
	wallet  wallet.Wallet
	stats   stats.Recorder
	logger  logrus.FieldLogger
	opts    Options
}

// NewPitBoss returns a new dispatch object
func NewPitBoss(w wallet.Wallet, s stats.Recorder, logger logrus.FieldLogger, opts Options) *PitBoss {
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}

	return &PitBoss{
		dealers: make(map[string]*Dealer),
		wallet:  w,
		stats:   s,
		logger:  logger,
		opts:    opts,
	}
}

// NewTable opens a table and starts its dealer
func (p *PitBoss) NewTable(bigBlind int) (*Dealer, error) {
	if bigBlind < 2 {
		return nil, ErrInvalidBigBlind
	}

	var gen rng.Generator = rng.Crypto{}
	if p.opts.NewGenerator != nil {
		gen = p.opts.NewGenerator()
	}

	d := NewDealer(DealerOptions{
		ID:            uuid.New().String(),
		Name:          util.GetRandomName(),
		BigBlind:      bigBlind,
		ActionTimeout: p.opts.ActionTimeout,
		Clock:         p.opts.Clock,
		Generator:     gen,
		Wallet:        p.wallet,
		Stats:         p.stats,
	}, p.logger)

	p.lock.Lock()
	p.dealers[d.id] = d
	p.lock.Unlock()

	d.StartShift()
	p.logger.WithFields(logrus.Fields{
		"tableId":  d.id,
		"name":     d.name,
		"bigBlind": bigBlind,
	}).Info("opened table")

	return d, nil
}

// Preload opens count tables at the same big blind
func (p *PitBoss) Preload(count, bigBlind int) ([]*Dealer, error) {
	dealers := make([]*Dealer, 0, count)
	for i := 0; i < count; i++ {
		d, err := p.NewTable(bigBlind)
		if err != nil {
			return nil, err
		}

		dealers = append(dealers, d)
	}

	return dealers, nil
}

// Dealer returns the dealer for the table
func (p *PitBoss) Dealer(id string) (*Dealer, bool) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	d, ok := p.dealers[id]
	return d, ok
}

// Dealers returns every open table, oldest first
func (p *PitBoss) Dealers() []*Dealer {
	p.lock.RLock()
	dealers := make([]*Dealer, 0, len(p.dealers))
	for _, d := range p.dealers {
		dealers = append(dealers, d)
	}
	p.lock.RUnlock()

	sort.Slice(dealers, func(i, j int) bool {
		if dealers[i].createdAt.Equal(dealers[j].createdAt) {
			return dealers[i].id < dealers[j].id
		}

		return dealers[i].createdAt.Before(dealers[j].createdAt)
	})

	return dealers
}

// ClientConnected is called when a client connects to a table
func (p *PitBoss) ClientConnected(tableID string, client *Client) bool {
	d, ok := p.Dealer(tableID)
	if !ok {
		return false
	}

	p.logger.WithField("client", client.playerID).WithField("tableId", tableID).Debug("client connected")
	d.AddClient(client)
	return true
}

// ClientDisconnected is called when a client disconnects from the server
func (p *PitBoss) ClientDisconnected(client *Client) {
	if client.dealer == nil {
		return
	}

	p.logger.WithField("client", client.String()).Debug("client disconnected")
	client.dealer.RemoveClient(client)
}

// Shutdown ends every dealer's shift
func (p *PitBoss) Shutdown(ctx context.Context) error {
	p.lock.Lock()
	dealers := p.dealers
	p.dealers = make(map[string]*Dealer)
	p.lock.Unlock()

	g, ctx := errgroup.WithContext(ctx)
	for _, d := range dealers {
		d := d
		g.Go(func() error {
			return d.EndShift(ctx)
		})
	}

	return g.Wait()
}
