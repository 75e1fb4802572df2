package wallet

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

const pqCheckViolationErrorCode pq.ErrorCode = "23514"

// Postgres stores balances in the `wallets` table
type Postgres struct {
	db             *sql.DB
	defaultBalance int
}

// NewPostgres returns a wallet backed by the database
func NewPostgres(db *sql.DB, defaultBalance int) *Postgres {
	return &Postgres{
		db:             db,
		defaultBalance: defaultBalance,
	}
}

// Balance returns the stored balance, or the default balance if there is no record
func (p *Postgres) Balance(ctx context.Context, playerID string) (int, error) {
	const query = `SELECT balance FROM wallets WHERE player_id = $1`

	var balance int
	if err := p.db.QueryRowContext(ctx, query, playerID).Scan(&balance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return p.defaultBalance, nil
		}

		return 0, err
	}

	return balance, nil
}

// SetBalance creates or replaces the player's balance
func (p *Postgres) SetBalance(ctx context.Context, playerID string, chips int) error {
	const query = `
INSERT INTO wallets (player_id, balance)
VALUES ($1, $2)
ON CONFLICT (player_id) DO UPDATE
SET balance = EXCLUDED.balance,
    updated = NOW()`

	if _, err := p.db.ExecContext(ctx, query, playerID, chips); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqCheckViolationErrorCode {
			return ErrNegativeBalance
		}

		return err
	}

	return nil
}
