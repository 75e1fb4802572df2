package mux

import (
	"context"
	"errors"
	"net/http"

	"cashtable-server/pkg/holdem"
	"cashtable-server/pkg/room"
)

var errPlayerIDRequired = errors.New("playerId is required")

type tableSummary struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	BigBlind int      `json:"bigBlind"`
	Seated   []string `json:"seated"`
}

func newTableSummary(ctx context.Context, d *room.Dealer) (tableSummary, error) {
	seated, err := d.Seated(ctx)
	if err != nil {
		return tableSummary{}, err
	}

	return tableSummary{
		ID:       d.ID(),
		Name:     d.Name(),
		BigBlind: d.BigBlind(),
		Seated:   seated,
	}, nil
}

func (m *Mux) getTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit, err := parsePaginationOptions(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		dealers := m.pitBoss.Dealers()
		if offset > len(dealers) {
			offset = len(dealers)
		}

		dealers = dealers[offset:]
		if len(dealers) > limit {
			dealers = dealers[:limit]
		}

		tables := make([]tableSummary, 0, len(dealers))
		for _, d := range dealers {
			summary, err := newTableSummary(r.Context(), d)
			if errors.Is(err, room.ErrTableClosed) {
				continue
			} else if err != nil {
				writeJSONError(w, http.StatusInternalServerError, err)
				return
			}

			tables = append(tables, summary)
		}

		writeJSON(w, http.StatusOK, tables)
	}
}

type postTablePayload struct {
	BigBlind int `json:"bigBlind"`
}

func (m *Mux) postTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postTablePayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		d, err := m.pitBoss.NewTable(pp.BigBlind)
		if err != nil {
			if errors.Is(err, room.ErrInvalidBigBlind) {
				writeJSONError(w, http.StatusBadRequest, err)
			} else {
				writeJSONError(w, http.StatusInternalServerError, err)
			}
			return
		}

		summary, err := newTableSummary(r.Context(), d)
		if err != nil {
			writeDealerError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, summary)
	}
}

func (m *Mux) getTableUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := dealerFromContext(r).ViewFor(r.Context(), r.FormValue("playerId"))
		if err != nil {
			writeDealerError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

func (m *Mux) getTableUUIDLog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := dealerFromContext(r).LogMessages(r.Context())
		if err != nil {
			writeDealerError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, messages)
	}
}

type actionPayload struct {
	PlayerID    string `json:"playerId"`
	Amount      int    `json:"amount"`
	WantsToPlay bool   `json:"wantsToPlay"`
}

type actionFunc func(ctx context.Context, d *room.Dealer, p actionPayload) (holdem.HandView, error)

// tableAction decodes the payload, runs the action and writes the resulting view
func (m *Mux) tableAction(fn actionFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp actionPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if pp.PlayerID == "" {
			writeJSONError(w, http.StatusBadRequest, errPlayerIDRequired)
			return
		}

		view, err := fn(r.Context(), dealerFromContext(r), pp)
		if err != nil {
			writeDealerError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

func (m *Mux) postTableUUIDJoin() http.HandlerFunc {
	return m.tableAction(func(ctx context.Context, d *room.Dealer, p actionPayload) (holdem.HandView, error) {
		return d.Join(ctx, p.PlayerID)
	})
}

func (m *Mux) postTableUUIDLeave() http.HandlerFunc {
	return m.tableAction(func(ctx context.Context, d *room.Dealer, p actionPayload) (holdem.HandView, error) {
		return d.Leave(ctx, p.PlayerID)
	})
}

func (m *Mux) postTableUUIDBet() http.HandlerFunc {
	return m.tableAction(func(ctx context.Context, d *room.Dealer, p actionPayload) (holdem.HandView, error) {
		return d.Bet(ctx, p.PlayerID, p.Amount)
	})
}

func (m *Mux) postTableUUIDCall() http.HandlerFunc {
	return m.tableAction(func(ctx context.Context, d *room.Dealer, p actionPayload) (holdem.HandView, error) {
		return d.Call(ctx, p.PlayerID)
	})
}

func (m *Mux) postTableUUIDAllIn() http.HandlerFunc {
	return m.tableAction(func(ctx context.Context, d *room.Dealer, p actionPayload) (holdem.HandView, error) {
		return d.AllIn(ctx, p.PlayerID)
	})
}

func (m *Mux) postTableUUIDFold() http.HandlerFunc {
	return m.tableAction(func(ctx context.Context, d *room.Dealer, p actionPayload) (holdem.HandView, error) {
		return d.Fold(ctx, p.PlayerID)
	})
}

func (m *Mux) postTableUUIDReplay() http.HandlerFunc {
	return m.tableAction(func(ctx context.Context, d *room.Dealer, p actionPayload) (holdem.HandView, error) {
		return d.RecordReplayDecision(ctx, p.PlayerID, p.WantsToPlay)
	})
}
