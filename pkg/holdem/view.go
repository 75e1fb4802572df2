package holdem

import "cashtable-server/pkg/deck"

// PlayerView is the public state of a seated player
type PlayerView struct {
	ID     string      `json:"id"`
	Stack  int         `json:"stack"`
	Bet    int         `json:"bet"`
	Active bool        `json:"active"`
	AllIn  bool        `json:"allIn"`
	Cards  []deck.Card `json:"cards,omitempty"`
}

// ShowdownResult is the outcome of a hand for one player
type ShowdownResult struct {
	PlayerID    string      `json:"playerId"`
	Cards       []deck.Card `json:"cards"`
	Description string      `json:"description"`
	Won         bool        `json:"won"`
	Winnings    int         `json:"winnings"`
}

// WaitingEntry is a player waiting for the next hand
type WaitingEntry struct {
	ID    string `json:"id"`
	Stack int    `json:"stack"`
}

// HandView is a read-only snapshot of a hand
// Nothing in the view is shared with the hand that produced it
type HandView struct {
	ID         string           `json:"id"`
	HandNumber int              `json:"handNumber"`
	Round      Round            `json:"round"`
	Players    []PlayerView     `json:"players"`
	Board      []deck.Card      `json:"board"`
	Pot        int              `json:"pot"`
	MaxBet     int              `json:"maxBet"`
	BigBlind   int              `json:"bigBlind"`
	Button     string           `json:"button"`
	Acting     string           `json:"acting"`
	Finished   bool             `json:"finished"`
	Results    []ShowdownResult `json:"results"`
	Replay     map[string]*bool `json:"replay"`
	Waiting    []WaitingEntry   `json:"waiting"`
	Message    string           `json:"message"`
}

func copyCards(cards []deck.Card) []deck.Card {
	c := make([]deck.Card, len(cards))
	copy(c, cards)
	return c
}

// View returns a snapshot without any hole cards
func (h *Hand) View() HandView {
	return h.ViewFor("")
}

// ViewFor returns a snapshot that includes the hole cards of playerID
func (h *Hand) ViewFor(playerID string) HandView {
	t := h.table
	v := HandView{
		ID:         t.ID,
		HandNumber: h.number,
		Round:      h.round,
		Players:    make([]PlayerView, len(t.Players)),
		Board:      copyCards(t.Board),
		Pot:        h.ledger.Pot(),
		MaxBet:     h.maxBet,
		BigBlind:   t.BigBlind,
		Finished:   h.finished,
		Results:    make([]ShowdownResult, len(h.results)),
		Replay:     make(map[string]*bool, len(h.replay)),
		Waiting:    make([]WaitingEntry, len(h.waiting)),
		Message:    h.message,
	}

	for i, p := range t.Players {
		pv := PlayerView{
			ID:     p.ID,
			Stack:  p.Stack,
			Bet:    p.Bet,
			Active: p.Active,
			AllIn:  h.started && !h.finished && p.IsAllIn(),
		}

		if playerID != "" && p.ID == playerID && len(p.Cards) > 0 {
			pv.Cards = copyCards(p.Cards)
		}

		v.Players[i] = pv
	}

	if h.acting >= 0 && h.acting < len(t.Players) {
		v.Acting = t.Players[h.acting].ID
	}

	if h.started {
		v.Button = h.buttonID
	}

	for i, r := range h.results {
		r.Cards = copyCards(r.Cards)
		v.Results[i] = r
	}

	for id, decision := range h.replay {
		if decision == nil {
			v.Replay[id] = nil
			continue
		}

		d := *decision
		v.Replay[id] = &d
	}

	copy(v.Waiting, h.waiting)
	return v
}
