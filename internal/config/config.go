package config

import (
	"os"
	"time"

	"cashtable-server/internal/util"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Backends for the wallet and stats collaborators
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Config provides configuration for the cash table server
type Config struct {
	loaded         bool
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	Log            struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	Table struct {
		Count    int `yaml:"count"`
		BigBlind int `yaml:"bigBlind" envconfig:"big_blind"`
		// ActionTimeout is the number of seconds a player has to act, 0 disables the timer
		ActionTimeout int `yaml:"actionTimeout" envconfig:"action_timeout"`
	}
	Wallet struct {
		Backend        string `yaml:"backend"`
		DefaultBalance int    `yaml:"defaultBalance" envconfig:"default_balance"`
	}
	Stats struct {
		Backend string `yaml:"backend"`
	}
}

// ActionTimeout returns the table action timeout as a duration
func (c Config) ActionTimeout() time.Duration {
	return time.Duration(c.Table.ActionTimeout) * time.Second
}

var config Config

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() Config {
	var c Config
	c.PGDSN = "postgres://postgres@localhost:5432/postgres?sslmode=disable"
	c.MigrationsPath = "./sql"
	c.Log.Level = "info"
	c.Table.Count = 1
	c.Table.BigBlind = 20
	c.Wallet.Backend = BackendMemory
	c.Wallet.DefaultBalance = 1000
	c.Stats.Backend = BackendMemory
	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The yaml file is optional, values in it are applied on top of DefaultConfig()
func Load() error {
	c := DefaultConfig()

	configFile := util.Getenv("CTS_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&c); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("cts", &c); err != nil {
		return err
	}

	c.loaded = true
	config = c
	return nil
}
