package engine

import (
	"testing"
	"time"

	"gotest.tools/assert"
)

func TestCountdown(t *testing.T) {
	dueAt := time.Date(2021, time.January, 8, 18, 5, 0, 0, time.Local)
	reminder := Reminder{Label: "walk dog", DueAt: dueAt}

	data := []struct {
		now      time.Time
		expected string
	}{
		{dueAt.Add(-5 * time.Second), "00:00:05"},
		{dueAt.Add(-5 * time.Minute), "00:05:00"},
		{dueAt.Add(-(time.Hour + 61*time.Second)), "01:01:01"},
		{dueAt.Add(-25 * time.Hour), "25:00:00"},
		{dueAt, "Now"},
		{dueAt.Add(time.Second), "Now"},
	}

	for _, d := range data {
		assert.Equal(t, reminder.Countdown(d.now), d.expected)
	}
}

func TestDue(t *testing.T) {
	dueAt := time.Date(2021, time.January, 8, 18, 5, 0, 0, time.Local)
	reminder := Reminder{Label: "walk dog", DueAt: dueAt}

	assert.Assert(t, !reminder.Due(dueAt.Add(-time.Second)))
	assert.Assert(t, reminder.Due(dueAt))
	assert.Assert(t, reminder.Due(dueAt.Add(time.Second)))
}
