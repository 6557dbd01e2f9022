package mux

import (
	"net/http"

	"chatpoker/pkg/room"

	gmux "github.com/gorilla/mux"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	pitBoss *room.PitBoss

	// store for testing purposes
	tableRouter *gmux.Router
}

// NewMux returns a new HTTP mux
func NewMux(version string, pitBoss *room.PitBoss) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		pitBoss: pitBoss,
	}

	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodGet).Path("/table").Handler(this.getTable())
		r.Methods(http.MethodPost).Path("/table").Handler(this.postTable())
	}

	// every route under a table
	{
		tr := this.Router.PathPrefix("/table/{id:[A-Za-z0-9_-]{1,64}}").Subrouter()
		this.tableRouter = tr

		tr.Methods(http.MethodGet).Path("").Handler(this.getTableID())
		tr.Methods(http.MethodGet).Path("/status").Handler(this.getTableIDStatus())
		tr.Methods(http.MethodGet).Path("/logs").Handler(this.getTableIDLogs())
		tr.Methods(http.MethodGet).Path("/ws").Handler(this.getTableIDWS())
		tr.Methods(http.MethodPost).Path("/seat").Handler(this.postTableIDSeat())
		tr.Methods(http.MethodGet).Path("/seat/{seatId:[0-9]+}").Handler(this.getTableIDSeatID())
		tr.Methods(http.MethodDelete).Path("/seat/{seatId:[0-9]+}").Handler(this.deleteTableIDSeatID())
		tr.Methods(http.MethodGet).Path("/seat/{seatId:[0-9]+}/cards").Handler(this.getTableIDSeatIDCards())
		tr.Methods(http.MethodPost).Path("/start").Handler(this.postTableIDStart())
		tr.Methods(http.MethodPost).Path("/action").Handler(this.postTableIDAction())
	}

	return this
}
