package mux

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chatpoker/pkg/playable/poker/texasholdem"
	"chatpoker/pkg/room"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestMux(t *testing.T, version string) *Mux {
	t.Helper()

	pitBoss := room.NewPitBoss(logrus.StandardLogger(), texasholdem.DefaultOptions())
	t.Cleanup(pitBoss.Close)

	return NewMux(version, pitBoss)
}

func Test_parsePaginationOptions(t *testing.T) {
	req := func(queryString string) *http.Request {
		req, _ := http.NewRequest(http.MethodGet, "https://example.domain/"+queryString, nil)
		return req
	}

	start, rows, err := parsePaginationOptions(req(""))
	assert.NoError(t, err)
	assert.Equal(t, 0, start)
	assert.Equal(t, defaultRows, rows)

	start, rows, err = parsePaginationOptions(req("?start=10&rows=5"))
	assert.NoError(t, err)
	assert.Equal(t, 10, start)
	assert.Equal(t, 5, rows)

	start, rows, err = parsePaginationOptions(req("?start=-1&rows=5"))
	assert.EqualError(t, err, "start cannot be less than zero")
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, rows)

	start, rows, err = parsePaginationOptions(req("?start=0&rows=0"))
	assert.EqualError(t, err, "rows must be greater than zero")
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, rows)

	_, _, err = parsePaginationOptions(req(fmt.Sprintf("?start=0&rows=%d", maxRows+1)))
	assert.EqualError(t, err, fmt.Sprintf("rows cannot be greater than %d", maxRows))
}

func Test_writeTableError(t *testing.T) {
	a := assert.New(t)

	statusCode := func(err error) int {
		t.Helper()

		rec := httptest.NewRecorder()
		writeTableError(rec, err)

		var body errorResponse
		a.NoError(json.NewDecoder(rec.Body).Decode(&body))
		a.Equal(rec.Code, body.StatusCode)
		return rec.Code
	}

	a.Equal(http.StatusConflict, statusCode(texasholdem.ErrSeatTaken))
	a.Equal(http.StatusConflict, statusCode(texasholdem.ErrTableFull))
	a.Equal(http.StatusConflict, statusCode(texasholdem.ErrHandInProgress))
	a.Equal(http.StatusNotFound, statusCode(texasholdem.ErrSeatNotFound))
	a.Equal(http.StatusNotFound, statusCode(room.ErrTableNotFound))
	a.Equal(http.StatusNotFound, statusCode(room.ErrDealerClosed))
	a.Equal(http.StatusBadRequest, statusCode(texasholdem.ErrNotYourTurn))
	a.Equal(http.StatusBadRequest, statusCode(fmt.Errorf("wrapped: %w", texasholdem.ErrCannotCheck)))
	a.Equal(http.StatusServiceUnavailable, statusCode(context.Canceled))
	a.Equal(http.StatusInternalServerError, statusCode(errors.New("boom")))

	rec := httptest.NewRecorder()
	writeTableError(rec, errors.New("secret detail"))
	a.NotContains(rec.Body.String(), "secret detail")
}

func assertDo(t *testing.T, req *http.Request, respObj interface{}, statusCode int) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Error(err)
		return nil
	}
	defer resp.Body.Close()

	if statusCode != resp.StatusCode {
		b, _ := ioutil.ReadAll(resp.Body)
		t.Log(string(b))
		assert.Equal(t, statusCode, resp.StatusCode)
		return nil
	}

	if respObj != nil {
		if err := json.NewDecoder(resp.Body).Decode(respObj); err != nil {
			t.Error(err)
			return nil
		}
	}

	return resp
}

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return
	}

	assertDo(t, req, respObj, statusCode)
}

func assertDelete(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) {
	t.Helper()

	req, err := http.NewRequest(http.MethodDelete, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return
	}

	assertDo(t, req, respObj, statusCode)
}

func assertPost(t *testing.T, ts *httptest.Server, path string, payload interface{}, respObj interface{}, statusCode int) {
	t.Helper()

	var body io.Reader
	switch val := payload.(type) {
	case nil:
		body = strings.NewReader("{}")
	case string:
		body = strings.NewReader(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			t.Error(err)
			return
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, body)
	if err != nil {
		t.Error(err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	assertDo(t, req, respObj, statusCode)
}
