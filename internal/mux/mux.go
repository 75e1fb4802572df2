package mux

import (
	"context"
	"net/http"

	"cashtable-server/pkg/room"
	"cashtable-server/pkg/stats"

	gmux "github.com/gorilla/mux"
)

type ctxKey int

const (
	ctxDealerKey ctxKey = iota
)

const uuidPattern = `(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}`

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	pitBoss *room.PitBoss
	stats   stats.Reader
}

// NewMux returns a new HTTP mux
func NewMux(version string, pitBoss *room.PitBoss, statsReader stats.Reader) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		pitBoss: pitBoss,
		stats:   statsReader,
	}

	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodGet).Path("/player/{id}/stats").Handler(this.getPlayerIDStats())
		r.Methods(http.MethodGet).Path("/table").Handler(this.getTable())
		r.Methods(http.MethodPost).Path("/table").Handler(this.postTable())
	}

	{
		tr := this.Router.PathPrefix("/table/{uuid:" + uuidPattern + "}").Subrouter()
		tr.Use(this.tableMiddleware)

		tr.Methods(http.MethodGet).Path("").Handler(this.getTableUUID())
		tr.Methods(http.MethodGet).Path("/log").Handler(this.getTableUUIDLog())
		tr.Methods(http.MethodGet).Path("/ws").Handler(this.getTableUUIDWS())
		tr.Methods(http.MethodPost).Path("/join").Handler(this.postTableUUIDJoin())
		tr.Methods(http.MethodPost).Path("/leave").Handler(this.postTableUUIDLeave())
		tr.Methods(http.MethodPost).Path("/bet").Handler(this.postTableUUIDBet())
		tr.Methods(http.MethodPost).Path("/call").Handler(this.postTableUUIDCall())
		tr.Methods(http.MethodPost).Path("/allin").Handler(this.postTableUUIDAllIn())
		tr.Methods(http.MethodPost).Path("/fold").Handler(this.postTableUUIDFold())
		tr.Methods(http.MethodPost).Path("/replay").Handler(this.postTableUUIDReplay())
	}

	return this
}

func (m *Mux) tableMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := gmux.Vars(r)["uuid"]
		dealer, ok := m.pitBoss.Dealer(id)
		if !ok {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxDealerKey, dealer)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func dealerFromContext(r *http.Request) *room.Dealer {
	return r.Context().Value(ctxDealerKey).(*room.Dealer)
}
