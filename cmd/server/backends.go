package main

import (
	"database/sql"
	"fmt"

	"cashtable-server/internal/config"
	"cashtable-server/pkg/db"
	"cashtable-server/pkg/stats"
	"cashtable-server/pkg/wallet"
	"github.com/sirupsen/logrus"
)

type backends struct {
	wallet wallet.Wallet
	stats  stats.Store
	dbh    *sql.DB
}

func (b *backends) close() {
	if b.dbh != nil {
		_ = b.dbh.Close()
	}
}

func needsPostgres(cfg config.Config) bool {
	return cfg.Wallet.Backend == config.BackendPostgres || cfg.Stats.Backend == config.BackendPostgres
}

// openBackends builds the wallet and stats stores named in the config
// The database is only opened and migrated when one of them is postgres
func openBackends(cfg config.Config) (*backends, error) {
	b := &backends{}
	if needsPostgres(cfg) {
		dbh, err := db.Open(cfg.PGDSN)
		if err != nil {
			return nil, err
		}

		if err := db.Migrate(dbh, cfg.MigrationsPath); err != nil {
			_ = dbh.Close()
			return nil, fmt.Errorf("could not run migrations: %w", err)
		}

		b.dbh = dbh
	}

	switch cfg.Wallet.Backend {
	case config.BackendMemory, "":
		b.wallet = wallet.NewMemory(cfg.Wallet.DefaultBalance)
	case config.BackendPostgres:
		b.wallet = wallet.NewPostgres(b.dbh, cfg.Wallet.DefaultBalance)
	default:
		b.close()
		return nil, fmt.Errorf("unknown wallet backend: %s", cfg.Wallet.Backend)
	}

	switch cfg.Stats.Backend {
	case config.BackendMemory, "":
		b.stats = stats.NewMemory()
	case config.BackendPostgres:
		b.stats = stats.NewPostgres(b.dbh)
	default:
		b.close()
		return nil, fmt.Errorf("unknown stats backend: %s", cfg.Stats.Backend)
	}

	logrus.WithFields(logrus.Fields{
		"wallet": cfg.Wallet.Backend,
		"stats":  cfg.Stats.Backend,
	}).Info("opened backends")

	return b, nil
}
