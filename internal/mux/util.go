package mux

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"chatpoker/pkg/playable/poker/texasholdem"
	"chatpoker/pkg/room"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const maxRows = 25
const defaultRows = 25

func parsePaginationOptions(r *http.Request) (int, int, error) {
	start := 0
	rows := defaultRows

	if startStr := r.FormValue("start"); startStr != "" {
		val, err := strconv.Atoi(startStr)
		if err != nil {
			return 0, 0, err
		}

		if val < 0 {
			return 0, 0, errors.New("start cannot be less than zero")
		}

		start = val
	}

	if rowsStr := r.FormValue("rows"); rowsStr != "" {
		val, err := strconv.Atoi(rowsStr)
		if err != nil {
			return 0, 0, err
		}

		if val <= 0 {
			return 0, 0, errors.New("rows must be greater than zero")
		}

		if val > maxRows {
			return 0, 0, fmt.Errorf("rows cannot be greater than %d", maxRows)
		}

		rows = val
	}

	return start, rows, nil
}

func seatIDFromRequest(r *http.Request) int64 {
	// the route only matches digits
	id, _ := strconv.ParseInt(gmux.Vars(r)["seatId"], 10, 64)
	return id
}

func tableIDFromRequest(r *http.Request) string {
	return gmux.Vars(r)["id"]
}

// withDealer runs fn against the dealer of the requested table
// If create is true, a dealer is started for a table nobody is using yet.
// A dealer can be let go between the lookup and the command, so the command is tried once more.
func (m *Mux) withDealer(r *http.Request, create bool, fn func(ctx context.Context, d *room.Dealer) error) error {
	tableID := tableIDFromRequest(r)

	for attempt := 0; ; attempt++ {
		var d *room.Dealer
		var err error
		if create {
			d, err = m.pitBoss.Dealer(tableID)
		} else {
			d, err = m.pitBoss.FindDealer(tableID)
		}

		if err != nil {
			return err
		}

		err = fn(r.Context(), d)
		if errors.Is(err, room.ErrDealerClosed) && attempt == 0 {
			continue
		}

		return err
	}
}

func decodeRequest(w http.ResponseWriter, r *http.Request, payload interface{}) bool {
	if ct := r.Header.Get("Content-Type"); ct != "application/json" && ct != "text/json" {
		writeJSONError(w, http.StatusUnsupportedMediaType, nil)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("could not write JSON response")
	}
}

type errorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// writeTableError picks the status code for an error returned by a table or its dealer
func writeTableError(w http.ResponseWriter, err error) {
	var actionErr texasholdem.ActionError

	switch {
	case errors.Is(err, texasholdem.ErrSeatTaken),
		errors.Is(err, texasholdem.ErrTableFull),
		errors.Is(err, texasholdem.ErrHandInProgress):
		writeJSONError(w, http.StatusConflict, err)
	case errors.Is(err, texasholdem.ErrSeatNotFound),
		errors.Is(err, room.ErrTableNotFound),
		errors.Is(err, room.ErrDealerClosed):
		writeJSONError(w, http.StatusNotFound, err)
	case errors.As(err, &actionErr):
		writeJSONError(w, http.StatusBadRequest, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeJSONError(w, http.StatusServiceUnavailable, err)
	default:
		writeJSONError(w, http.StatusInternalServerError, err)
	}
}

func writeJSONError(w http.ResponseWriter, statusCode int, err error) {
	var msg string

	if statusCode < 500 && err != nil {
		msg = err.Error()
	} else {
		msg = http.StatusText(statusCode)
	}

	if statusCode >= 500 {
		logrus.WithField("statusCode", statusCode).Error(err)
	}

	writeJSON(w, statusCode, errorResponse{
		Message:    msg,
		StatusCode: statusCode,
	})
}
