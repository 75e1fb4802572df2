package wallet

import (
	"context"
	"errors"
	"sync"
)

// ErrNegativeBalance is returned when a balance below zero is stored
var ErrNegativeBalance = errors.New("a balance cannot be negative")

// Source provides a player's chip balance when they sit down
type Source interface {
	Balance(ctx context.Context, playerID string) (int, error)
}

// Sink persists a player's chip balance after a hand
type Sink interface {
	SetBalance(ctx context.Context, playerID string, chips int) error
}

// Wallet is both a Source and a Sink
type Wallet interface {
	Source
	Sink
}

// Memory is an in-process wallet
// Unknown players start with the default balance
type Memory struct {
	defaultBalance int
	balances       map[string]int
	lock           sync.RWMutex
}

// NewMemory returns an empty in-memory wallet
func NewMemory(defaultBalance int) *Memory {
	return &Memory{
		defaultBalance: defaultBalance,
		balances:       make(map[string]int),
	}
}

// Balance returns the player's balance
func (m *Memory) Balance(_ context.Context, playerID string) (int, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	if balance, ok := m.balances[playerID]; ok {
		return balance, nil
	}

	return m.defaultBalance, nil
}

// SetBalance stores the player's balance
func (m *Memory) SetBalance(_ context.Context, playerID string, chips int) error {
	if chips < 0 {
		return ErrNegativeBalance
	}

	m.lock.Lock()
	m.balances[playerID] = chips
	m.lock.Unlock()
	return nil
}
