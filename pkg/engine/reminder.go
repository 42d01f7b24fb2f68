package engine

import (
	"fmt"
	"time"
)

// Reminder is a label with an absolute due instant. Reminders are immutable; they
// live in the engine's active set until the first tick that observes them as due.
type Reminder struct {
	ID    string
	Label string
	DueAt time.Time
}

// Due reports whether the reminder's due instant has been reached.
func (r Reminder) Due(now time.Time) bool {
	return !r.DueAt.After(now)
}

// Countdown formats the time remaining until the due instant as HH:MM:SS, or "Now"
// once the instant has been reached.
func (r Reminder) Countdown(now time.Time) string {
	remaining := r.DueAt.Sub(now)
	if remaining <= 0 {
		return "Now"
	}

	seconds := int(remaining.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, seconds/60%60, seconds%60)
}

func (r Reminder) String() string {
	return fmt.Sprintf("%s at %s", r.Label, r.DueAt.Format("3:04PM"))
}
