package mux

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"chatpoker/internal/util"
	"chatpoker/pkg/deck"
	"chatpoker/pkg/playable"
	"chatpoker/pkg/playable/poker/action"
	"chatpoker/pkg/playable/poker/texasholdem"
	"chatpoker/pkg/room"
	"chatpoker/pkg/token"
)

const tableIDLength = 12

func (m *Mux) getTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, m.pitBoss.TableIDs())
	}
}

type postTableResponse struct {
	ID      string              `json:"id"`
	Options texasholdem.Options `json:"options"`
}

// postTable opens a table with a random ID
func (m *Mux) postTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := token.Generate(tableIDLength)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		if _, err := m.pitBoss.Dealer(id); err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusCreated, postTableResponse{
			ID:      id,
			Options: m.pitBoss.Options(),
		})
	}
}

func (m *Mux) getTableID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var state *texasholdem.State
		err := m.withDealer(r, false, func(ctx context.Context, d *room.Dealer) (err error) {
			state, err = d.State(ctx)
			return
		})

		if err != nil {
			writeTableError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, state)
	}
}

type getTableIDStatusResponse struct {
	*texasholdem.Status
	Text string `json:"text"`
}

func (m *Mux) getTableIDStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var status *texasholdem.Status
		err := m.withDealer(r, false, func(ctx context.Context, d *room.Dealer) (err error) {
			status, err = d.Status(ctx)
			return
		})

		if err != nil {
			writeTableError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, getTableIDStatusResponse{
			Status: status,
			Text:   status.String(),
		})
	}
}

func (m *Mux) getTableIDLogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, rows, err := parsePaginationOptions(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		var logs []*playable.LogMessage
		err = m.withDealer(r, false, func(ctx context.Context, d *room.Dealer) (err error) {
			logs, err = d.LogMessages(ctx)
			return
		})

		if err != nil {
			writeTableError(w, err)
			return
		}

		// newest first
		page := make([]*playable.LogMessage, 0, rows)
		for i := len(logs) - 1 - start; i >= 0 && len(page) < rows; i-- {
			page = append(page, logs[i])
		}

		writeJSON(w, http.StatusOK, page)
	}
}

type postTableIDSeatPayload struct {
	SeatID int64  `json:"seatId"`
	Name   string `json:"name"`
}

func (m *Mux) postTableIDSeat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postTableIDSeatPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if pp.SeatID <= 0 {
			writeJSONError(w, http.StatusBadRequest, errors.New("seatId must be greater than zero"))
			return
		}

		name := strings.TrimSpace(pp.Name)
		if name == "" {
			name = util.GetRandomName()
		}

		if len(name) > 40 {
			writeJSONError(w, http.StatusBadRequest, errors.New("name cannot be more than 40 characters"))
			return
		}

		var out *room.Outcome
		err := m.withDealer(r, true, func(ctx context.Context, d *room.Dealer) (err error) {
			out, err = d.Join(ctx, pp.SeatID, name)
			return
		})

		if err != nil {
			writeTableError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, out)
	}
}

func (m *Mux) getTableIDSeatID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var state *texasholdem.SeatState
		err := m.withDealer(r, false, func(ctx context.Context, d *room.Dealer) (err error) {
			state, err = d.SeatState(ctx, seatIDFromRequest(r))
			return
		})

		if err != nil {
			writeTableError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, state)
	}
}

func (m *Mux) deleteTableIDSeatID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var out *room.Outcome
		err := m.withDealer(r, false, func(ctx context.Context, d *room.Dealer) (err error) {
			out, err = d.Leave(ctx, seatIDFromRequest(r))
			return
		})

		if err != nil {
			writeTableError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, out)
	}
}

type getTableIDSeatIDCardsResponse struct {
	Cards   deck.Hand `json:"cards"`
	Display string    `json:"display"`
}

func (m *Mux) getTableIDSeatIDCards() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cards deck.Hand
		err := m.withDealer(r, false, func(ctx context.Context, d *room.Dealer) (err error) {
			cards, err = d.HoleCards(ctx, seatIDFromRequest(r))
			return
		})

		if err != nil {
			writeTableError(w, err)
			return
		}

		if len(cards) == 0 {
			writeJSONError(w, http.StatusNotFound, errors.New("you have not been dealt any cards"))
			return
		}

		writeJSON(w, http.StatusOK, getTableIDSeatIDCardsResponse{
			Cards:   cards,
			Display: cards.String(),
		})
	}
}

func (m *Mux) postTableIDStart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var out *room.Outcome
		err := m.withDealer(r, false, func(ctx context.Context, d *room.Dealer) (err error) {
			out, err = d.StartHand(ctx)
			return
		})

		if err != nil {
			writeTableError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, out)
	}
}

type postTableIDActionPayload struct {
	SeatID int64         `json:"seatId"`
	Action action.Action `json:"action"`
	Amount int           `json:"amount"`
}

func (m *Mux) postTableIDAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postTableIDActionPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if !pp.Action.IsValid() {
			writeJSONError(w, http.StatusBadRequest, errors.New("a valid action is required"))
			return
		}

		if pp.Amount < 0 {
			writeJSONError(w, http.StatusBadRequest, errors.New("amount cannot be less than zero"))
			return
		}

		var out *room.Outcome
		err := m.withDealer(r, false, func(ctx context.Context, d *room.Dealer) (err error) {
			out, err = d.Act(ctx, pp.SeatID, pp.Action, pp.Amount)
			return
		})

		if err != nil {
			writeTableError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, out)
	}
}
