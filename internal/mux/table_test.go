package mux

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testOutcome struct {
	NextActor int64 `json:"nextActor"`
	Busted    []int64
	Results   []struct {
		Winners []int64 `json:"winners"`
		Amount  int     `json:"amount"`
		Reason  string  `json:"reason"`
	} `json:"results"`
	Actions []map[string]interface{} `json:"actions"`
	Status  map[string]interface{}   `json:"status"`
}

func TestTable_handFlow(t *testing.T) {
	a := assert.New(t)
	m := newTestMux(t, "")
	ts := httptest.NewServer(m)
	defer ts.Close()

	var out testOutcome
	var errObj errorResponse

	assertPost(t, ts, "/table/t1/seat", map[string]interface{}{"seatId": 1, "name": "alice"}, &out, http.StatusCreated)
	assertPost(t, ts, "/table/t1/seat", map[string]interface{}{"seatId": 1, "name": "alice"}, &errObj, http.StatusConflict)
	a.Equal("you already have a seat at this table", errObj.Message)
	assertPost(t, ts, "/table/t1/seat", map[string]interface{}{"name": "nobody"}, &errObj, http.StatusBadRequest)
	assertPost(t, ts, "/table/t1/seat", map[string]interface{}{"seatId": 3, "name": strings.Repeat("x", 41)}, &errObj, http.StatusBadRequest)

	// a random name is picked
	assertPost(t, ts, "/table/t1/seat", map[string]interface{}{"seatId": 2}, nil, http.StatusCreated)

	var tables []string
	assertGet(t, ts, "/table", &tables, http.StatusOK)
	a.Equal([]string{"t1"}, tables)

	var state struct {
		Seats []struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"seats"`
	}
	assertGet(t, ts, "/table/t1", &state, http.StatusOK)
	if a.Equal(2, len(state.Seats)) {
		a.Equal("alice", state.Seats[0].Name)
		a.NotEmpty(state.Seats[1].Name)
	}

	out = testOutcome{}
	assertPost(t, ts, "/table/t1/start", nil, &out, http.StatusOK)
	a.Equal(int64(2), out.NextActor)
	a.NotEmpty(out.Actions)
	assertPost(t, ts, "/table/t1/start", nil, &errObj, http.StatusConflict)

	var cards getTableIDSeatIDCardsResponse
	assertGet(t, ts, "/table/t1/seat/2/cards", &cards, http.StatusOK)
	a.NotEmpty(cards.Display)
	assertGet(t, ts, "/table/t1/seat/9/cards", &errObj, http.StatusNotFound)

	var seatState map[string]interface{}
	assertGet(t, ts, "/table/t1/seat/2", &seatState, http.StatusOK)
	a.NotNil(seatState["actions"])
	assertGet(t, ts, "/table/t1/seat/9", &errObj, http.StatusNotFound)

	assertPost(t, ts, "/table/t1/action", map[string]interface{}{"seatId": 1, "action": "check"}, &errObj, http.StatusBadRequest)
	a.Equal("it is not your turn", errObj.Message)
	assertPost(t, ts, "/table/t1/action", map[string]interface{}{"seatId": 2, "action": "shuffle"}, &errObj, http.StatusBadRequest)
	assertPost(t, ts, "/table/t1/action", map[string]interface{}{"seatId": 2}, &errObj, http.StatusBadRequest)
	assertPost(t, ts, "/table/t1/action", map[string]interface{}{"seatId": 2, "action": "raise", "amount": -1}, &errObj, http.StatusBadRequest)

	out = testOutcome{}
	assertPost(t, ts, "/table/t1/action", map[string]interface{}{"seatId": 2, "action": "fold"}, &out, http.StatusOK)
	if a.Equal(1, len(out.Results)) {
		a.Equal([]int64{1}, out.Results[0].Winners)
		a.Equal(30, out.Results[0].Amount)
		a.Equal("uncontested", out.Results[0].Reason)
	}

	var status getTableIDStatusResponse
	assertGet(t, ts, "/table/t1/status", &status, http.StatusOK)
	a.True(strings.HasPrefix(status.Text, "Phase: waiting"))

	var logs []map[string]interface{}
	assertGet(t, ts, "/table/t1/logs?rows=2", &logs, http.StatusOK)
	a.Equal(2, len(logs))
	assertGet(t, ts, "/table/t1/logs?rows=100", &errObj, http.StatusBadRequest)

	assertDelete(t, ts, "/table/t1/seat/2", nil, http.StatusOK)
	assertDelete(t, ts, "/table/t1/seat/2", &errObj, http.StatusNotFound)
	assertDelete(t, ts, "/table/t1/seat/1", nil, http.StatusOK)

	// nobody is left, so the table is let go
	a.Eventually(func() bool {
		return len(m.pitBoss.TableIDs()) == 0
	}, time.Second, time.Millisecond)
	assertGet(t, ts, "/table/t1", &errObj, http.StatusNotFound)
}

func TestTable_postTable(t *testing.T) {
	a := assert.New(t)
	m := newTestMux(t, "")
	ts := httptest.NewServer(m)
	defer ts.Close()

	var created postTableResponse
	assertPost(t, ts, "/table", nil, &created, http.StatusCreated)
	a.Equal(tableIDLength, len(created.ID))
	a.Equal(20, created.Options.BigBlind)

	var tables []string
	assertGet(t, ts, "/table", &tables, http.StatusOK)
	a.Equal([]string{created.ID}, tables)

	// an empty table stays open until somebody uses it
	var state struct {
		ID string `json:"id"`
	}
	for i := 0; i < 3; i++ {
		assertGet(t, ts, "/table/"+created.ID, &state, http.StatusOK)
		a.Equal(created.ID, state.ID)
	}
	assertGet(t, ts, "/table/"+created.ID+"/status", nil, http.StatusOK)
	assertGet(t, ts, "/table/"+created.ID+"/logs", nil, http.StatusOK)

	assertPost(t, ts, "/table/"+created.ID+"/seat", map[string]interface{}{"seatId": 1, "name": "alice"}, nil, http.StatusCreated)
	assertDelete(t, ts, "/table/"+created.ID+"/seat/1", nil, http.StatusOK)

	a.Eventually(func() bool {
		return len(m.pitBoss.TableIDs()) == 0
	}, time.Second, time.Millisecond)
}

func TestTable_notFound(t *testing.T) {
	ts := httptest.NewServer(newTestMux(t, ""))
	defer ts.Close()

	var errObj errorResponse
	assertGet(t, ts, "/table/missing", &errObj, http.StatusNotFound)
	assert.Equal(t, "table not found", errObj.Message)

	assertGet(t, ts, "/table/missing/status", &errObj, http.StatusNotFound)
	assertPost(t, ts, "/table/missing/start", nil, &errObj, http.StatusNotFound)
	assertPost(t, ts, "/table/missing/action", map[string]interface{}{"seatId": 1, "action": "fold"}, &errObj, http.StatusNotFound)
	assertDelete(t, ts, "/table/missing/seat/1", &errObj, http.StatusNotFound)
}

func TestTable_contentType(t *testing.T) {
	ts := httptest.NewServer(newTestMux(t, ""))
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/table/t1/seat", "text/plain", strings.NewReader(`{"seatId":1}`))
	if assert.NoError(t, err) {
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
	}
}
