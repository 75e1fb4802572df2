package config

import (
	"os"
	"testing"
	"time"

	"cashtable-server/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("CTS_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("CTS_TABLE_BIG_BLIND", "100")
	defer clear2()

	config = Config{}

	a := assert.New(t)
	cfg := Instance()
	a.Equal("postgres://cashtable@db:5432/cashtable?sslmode=disable", cfg.PGDSN)
	a.Equal("debug", cfg.Log.Level)
	a.Equal(3, cfg.Table.Count)
	a.Equal(100, cfg.Table.BigBlind)
	a.Equal(30*time.Second, cfg.ActionTimeout())
	a.Equal(BackendPostgres, cfg.Wallet.Backend)
	a.Equal(5000, cfg.Wallet.DefaultBalance)
	a.Equal(BackendMemory, cfg.Stats.Backend, "missing keys keep the default")

	// ensure that it's only loaded once
	_ = os.Setenv("CTS_TABLE_BIG_BLIND", "200")
	// ensure we aren't using a pointer
	cfg.Table.BigBlind = 1
	cfg = Instance()
	a.Equal(100, cfg.Table.BigBlind)
}

func TestDefaults(t *testing.T) {
	clear1 := util.SetEnv("CTS_CONFIG_FILE", "testdata/missing.yaml")
	defer clear1()

	require.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, DefaultConfig().Table, cfg.Table)
	assert.Equal(t, 20, cfg.Table.BigBlind)
	assert.Equal(t, time.Duration(0), cfg.ActionTimeout())
	assert.Equal(t, BackendMemory, cfg.Wallet.Backend)
}

func TestLoad_InvalidYAML(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "config-*.yaml")
	require.NoError(t, err)
	_, err = f.WriteString("table: [1, 2")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	clear1 := util.SetEnv("CTS_CONFIG_FILE", f.Name())
	defer clear1()

	assert.Error(t, Load())
}
