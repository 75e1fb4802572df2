package wallet

import (
	"context"
	"os"
	"sync"
	"testing"

	"cashtable-server/internal/util"
	"cashtable-server/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cbg = context.Background()

func TestMemory(t *testing.T) {
	a := assert.New(t)
	m := NewMemory(1000)

	balance, err := m.Balance(cbg, "p1")
	a.NoError(err)
	a.Equal(1000, balance)

	a.NoError(m.SetBalance(cbg, "p1", 1040))
	balance, _ = m.Balance(cbg, "p1")
	a.Equal(1040, balance)

	a.NoError(m.SetBalance(cbg, "p1", 0))
	balance, _ = m.Balance(cbg, "p1")
	a.Equal(0, balance, "a busted player does not get the default back")

	a.Equal(ErrNegativeBalance, m.SetBalance(cbg, "p1", -1))
}

func TestMemory_Concurrent(t *testing.T) {
	m := NewMemory(0)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = m.SetBalance(cbg, "p1", i)
			_, _ = m.Balance(cbg, "p1")
		}(i)
	}

	wg.Wait()
	balance, err := m.Balance(cbg, "p1")
	assert.NoError(t, err)
	assert.True(t, balance >= 0 && balance < 50)
}

func TestPostgres(t *testing.T) {
	dsn := os.Getenv("CTS_PG_DSN")
	if dsn == "" {
		t.Skip("CTS_PG_DSN is not set")
	}

	dbh, err := db.Open(dsn)
	require.NoError(t, err)
	defer dbh.Close()
	require.NoError(t, db.Migrate(dbh, "../../sql"))

	a := assert.New(t)
	w := NewPostgres(dbh, 1000)
	id := util.RandomPlayerID()

	balance, err := w.Balance(cbg, id)
	a.NoError(err)
	a.Equal(1000, balance)

	a.NoError(w.SetBalance(cbg, id, 1040))
	a.NoError(w.SetBalance(cbg, id, 980))
	balance, err = w.Balance(cbg, id)
	a.NoError(err)
	a.Equal(980, balance)

	a.Equal(ErrNegativeBalance, w.SetBalance(cbg, id, -5))
}
