package playable

import (
	"fmt"
	"time"

	"chatpoker/pkg/deck"

	"github.com/google/uuid"
)

// LogMessage is the format a table sends log messages in
// If SeatIDs is empty, it's a general statement, otherwise the message will be rendered like "{seat} did X, Y, Z"
type LogMessage struct {
	UUID    string       `json:"uuid"`
	SeatIDs []int64      `json:"seatIds"`
	Cards   []*deck.Card `json:"cards"`
	Message string       `json:"message"`
	Time    time.Time    `json:"time"`
}

// Response is a container for a message sent to a client
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data"`
	Context string      `json:"context"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   "status",
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}

// PayloadIn is the format we expect from a client
type PayloadIn struct {
	Action         string         `json:"action"`
	AdditionalData AdditionalData `json:"additionalData"`
	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// AdditionalData provides additional data in a payload
type AdditionalData map[string]interface{}

// GetString returns a string for the given key
func (a AdditionalData) GetString(key string) (string, bool) {
	s, ok := a[key].(string)
	return s, ok
}

// GetInt returns an integer value for the given key
func (a AdditionalData) GetInt(key string) (int, bool) {
	floatVal, ok := a[key].(float64)
	if !ok {
		return 0, false
	}

	return int(floatVal), true
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(seatID int64, format string, a ...interface{}) *LogMessage {
	var seatIDs []int64
	if seatID > 0 {
		seatIDs = []int64{seatID}
	}

	return &LogMessage{
		UUID:    uuid.New().String(),
		SeatIDs: seatIDs,
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}

// CardsLogMessage returns a new LogMessage that shows cards
func CardsLogMessage(seatID int64, cards []*deck.Card, format string, a ...interface{}) *LogMessage {
	msg := SimpleLogMessage(seatID, format, a...)
	msg.Cards = cards

	return msg
}

// SimpleLogMessageSlice returns a single log message
func SimpleLogMessageSlice(seatID int64, format string, a ...interface{}) []*LogMessage {
	return []*LogMessage{SimpleLogMessage(seatID, format, a...)}
}
