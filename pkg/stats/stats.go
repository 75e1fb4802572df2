package stats

import (
	"context"
	"sync"
)

// Recorder counts player actions
type Recorder interface {
	Increment(ctx context.Context, playerID, counter string) error
}

// Reader returns the counters recorded for a player
type Reader interface {
	Counters(ctx context.Context, playerID string) (map[string]int, error)
}

// Store is both a Recorder and a Reader
type Store interface {
	Recorder
	Reader
}

// Memory keeps counters in process
type Memory struct {
	counters map[string]map[string]int
	lock     sync.RWMutex
}

// NewMemory returns an empty in-memory store
func NewMemory() *Memory {
	return &Memory{
		counters: make(map[string]map[string]int),
	}
}

// Increment adds one to the player's counter
func (m *Memory) Increment(_ context.Context, playerID, counter string) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	c, ok := m.counters[playerID]
	if !ok {
		c = make(map[string]int)
		m.counters[playerID] = c
	}

	c[counter]++
	return nil
}

// Counters returns a copy of the player's counters
func (m *Memory) Counters(_ context.Context, playerID string) (map[string]int, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	counters := make(map[string]int, len(m.counters[playerID]))
	for counter, value := range m.counters[playerID] {
		counters[counter] = value
	}

	return counters, nil
}
