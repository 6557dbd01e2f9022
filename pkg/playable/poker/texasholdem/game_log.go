package texasholdem

import (
	"chatpoker/pkg/deck"
	"chatpoker/pkg/playable"
)

// FlushLog returns the log messages recorded since the last call
func (t *Table) FlushLog() []*playable.LogMessage {
	logs := t.logs
	t.logs = make([]*playable.LogMessage, 0)

	return logs
}

func (t *Table) log(seatID int64, format string, a ...interface{}) {
	t.logs = append(t.logs, playable.SimpleLogMessage(seatID, format, a...))
}

func (t *Table) logCards(seatID int64, cards []*deck.Card, format string, a ...interface{}) {
	t.logs = append(t.logs, playable.CardsLogMessage(seatID, cards, format, a...))
}

// HandSummary is what gets logged when a hand is over
type HandSummary struct {
	Seats     []*SeatView `json:"seats"`
	Community deck.Hand   `json:"community"`
	Results   []*Result   `json:"results"`
}

// Summary returns every seat with its cards revealed along with the payouts of the last hand
func (t *Table) Summary() *HandSummary {
	seats := make([]*SeatView, len(t.seatOrder))
	for i, seat := range t.orderedSeats() {
		seats[i] = seat.View(true)
	}

	return &HandSummary{
		Seats:     seats,
		Community: t.community.Clone(),
		Results:   t.results,
	}
}
