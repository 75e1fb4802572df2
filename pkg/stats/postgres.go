package stats

import (
	"context"
	"database/sql"

	"cashtable-server/pkg/db"
)

// Postgres stores counters in the `player_stats` table
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns a store backed by the database
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// Increment adds one to the player's counter
func (p *Postgres) Increment(ctx context.Context, playerID, counter string) error {
	const query = `
INSERT INTO player_stats (player_id, counter, value)
VALUES ($1, $2, 1)
ON CONFLICT (player_id, counter) DO UPDATE
SET value = player_stats.value + 1,
    updated = NOW()`

	_, err := p.db.ExecContext(ctx, query, playerID, counter)
	return err
}

func scanCounter(row db.Scanner) (string, int, error) {
	var counter string
	var value int
	if err := row.Scan(&counter, &value); err != nil {
		return "", 0, err
	}

	return counter, value, nil
}

// Counters returns every counter recorded for the player
func (p *Postgres) Counters(ctx context.Context, playerID string) (map[string]int, error) {
	const query = `
SELECT counter, value
FROM player_stats
WHERE player_id = $1`

	rows, err := p.db.QueryContext(ctx, query, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counters := make(map[string]int)
	for rows.Next() {
		counter, value, err := scanCounter(rows)
		if err != nil {
			return nil, err
		}

		counters[counter] = value
	}

	return counters, rows.Err()
}
