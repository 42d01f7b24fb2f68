package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ilikeorangutans/chime/pkg/engine"
	"github.com/ilikeorangutans/chime/pkg/notify"
	"gotest.tools/assert"
)

func newTestRouter() http.Handler {
	e := engine.New(notify.NewLogNotifier())
	return NewServer(e).Router()
}

func TestCreateAndListReminders(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/reminders", strings.NewReader(`{"text":"coffee at 11:30pm"}`)))
	assert.Equal(t, w.Code, http.StatusCreated)

	var created reminderResponse
	assert.NilError(t, json.NewDecoder(w.Body).Decode(&created))
	assert.Equal(t, created.Label, "coffee")
	assert.Assert(t, created.ID != "")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reminders", nil))
	assert.Equal(t, w.Code, http.StatusOK)

	var items []engine.Item
	assert.NilError(t, json.NewDecoder(w.Body).Decode(&items))
	assert.Equal(t, len(items), 1)
	assert.Equal(t, items[0].Label, "coffee")
}

func TestCreateReminderRejectsUnparseableInput(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/reminders", strings.NewReader(`{"text":"coffee"}`)))
	assert.Equal(t, w.Code, http.StatusBadRequest)

	var resp errorResponse
	assert.NilError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Assert(t, resp.Error != "")
}

func TestCreateReminderRejectsInvalidBody(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/reminders", strings.NewReader("not json")))
	assert.Equal(t, w.Code, http.StatusBadRequest)
}

func TestPing(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/services/ping", nil))
	assert.Equal(t, w.Code, http.StatusOK)
	assert.Equal(t, w.Body.String(), "pong")
}
