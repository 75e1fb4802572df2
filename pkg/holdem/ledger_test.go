package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPotLedger(t *testing.T) {
	a := assert.New(t)
	l := NewPotLedger()

	l.AddContribution("p1", 20)
	l.AddContribution("p2", 20)
	l.AddContribution("p1", 30)
	l.AddContribution("p3", 0)
	l.AddContribution("p3", -10)

	a.Equal(0, l.Pot())
	a.Equal(map[string]int{"p1": 50, "p2": 20}, l.Pending())

	a.Equal(70, l.Consolidate())
	a.Equal(70, l.Pot())
	a.Empty(l.Pending())

	a.Equal(0, l.Consolidate())
	a.Equal(70, l.Pot())
}

func TestPotLedger_PendingIsACopy(t *testing.T) {
	l := NewPotLedger()
	l.AddContribution("p1", 20)

	pending := l.Pending()
	pending["p1"] = 1000

	assert.Equal(t, 20, l.Pending()["p1"])
}

func TestPotLedger_Distribute(t *testing.T) {
	a := assert.New(t)

	l := NewPotLedger()
	l.AddContribution("p1", 100)
	l.Consolidate()

	p1, p2, p3 := NewPlayer("p1", 0), NewPlayer("p2", 0), NewPlayer("p3", 0)
	a.Equal(33, l.Distribute([]*Player{p1, p2, p3}))
	a.Equal(33, p1.Stack)
	a.Equal(33, p2.Stack)
	a.Equal(33, p3.Stack)
	a.Equal(0, l.Pot(), "the odd chip is not awarded")

	l.AddContribution("p1", 100)
	l.Consolidate()
	a.Equal(50, l.Distribute([]*Player{p1, p2}))
	a.Equal(83, p1.Stack)
	a.Equal(83, p2.Stack)

	a.Equal(0, l.Distribute(nil))
}
