package notify

import (
	"errors"
	"testing"
	"time"

	"gotest.tools/assert"
)

type recordingNotifier struct {
	calls int
	err   error
}

func (r *recordingNotifier) Notify(title string, body string, fireAt time.Time) error {
	r.calls++
	return r.err
}

func TestMultiCallsAllNotifiers(t *testing.T) {
	first := &recordingNotifier{}
	second := &recordingNotifier{}

	err := Multi(first, second).Notify("title", "body", time.Now())
	assert.NilError(t, err)
	assert.Equal(t, first.calls, 1)
	assert.Equal(t, second.calls, 1)
}

func TestMultiIsolatesFailures(t *testing.T) {
	failing := &recordingNotifier{err: errors.New("boom")}
	second := &recordingNotifier{}

	err := Multi(failing, second).Notify("title", "body", time.Now())
	assert.NilError(t, err)
	assert.Equal(t, second.calls, 1)
}
