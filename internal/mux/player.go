package mux

import (
	"net/http"

	"cashtable-server/pkg/stats"
	"github.com/gorilla/mux"
)

func (m *Mux) getPlayerIDStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if m.stats == nil {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		summary, err := stats.Summarize(r.Context(), m.stats, mux.Vars(r)["id"])
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}
