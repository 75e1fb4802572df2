package stats

import (
	"context"

	"cashtable-server/pkg/holdem"
)

// Summary is the counters for a player with the rates derived from them
type Summary struct {
	PlayerID string         `json:"playerId"`
	Counters map[string]int `json:"counters"`
	// WinRate is hands won over hands played
	WinRate float64 `json:"winRate"`
	// ShowdownWinRate is showdowns won over showdowns reached
	ShowdownWinRate float64 `json:"showdownWinRate"`
	// AggressionFactor is bets and raises over calls
	AggressionFactor float64 `json:"aggressionFactor"`
	FoldRate         float64 `json:"foldRate"`
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}

	return float64(num) / float64(den)
}

// NewSummary derives the rates from a set of counters
func NewSummary(playerID string, counters map[string]int) Summary {
	c := func(name string) int {
		return counters[name]
	}

	aggressive := c(holdem.CounterBets) + c(holdem.CounterRaises)
	return Summary{
		PlayerID:         playerID,
		Counters:         counters,
		WinRate:          ratio(c(holdem.CounterHandsWon), c(holdem.CounterHandsPlayed)),
		ShowdownWinRate:  ratio(c(holdem.CounterShowdownWins), c(holdem.CounterShowdowns)),
		AggressionFactor: ratio(aggressive, c(holdem.CounterCalls)),
		FoldRate:         ratio(c(holdem.CounterFolds), c(holdem.CounterHandsPlayed)),
	}
}

// Summarize reads the player's counters and derives their summary
func Summarize(ctx context.Context, r Reader, playerID string) (Summary, error) {
	counters, err := r.Counters(ctx, playerID)
	if err != nil {
		return Summary{}, err
	}

	return NewSummary(playerID, counters), nil
}
