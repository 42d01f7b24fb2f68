package engine

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ilikeorangutans/chime/pkg/notify"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Item is a row of the live reminder list as handed to renderers. Remaining holds
// the countdown as computed by the most recent tick.
type Item struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	DueAt     time.Time `json:"due_at"`
	Remaining string    `json:"remaining"`
}

func New(notifier notify.Notifier) *Engine {
	return &Engine{
		notifier: notifier,
		logger:   log.With().Str("component", "engine").Logger(),
	}
}

// Engine owns the active set of reminders. Mutations and reads go through a single
// mutex so a renderer never observes a half-updated set.
type Engine struct {
	mu        sync.Mutex
	reminders []*trackedReminder
	notifier  notify.Notifier
	logger    zerolog.Logger
}

type trackedReminder struct {
	Reminder
	remaining string
}

// AddInput parses a line of input and adds the resulting reminder. Rejected inputs
// leave the active set untouched.
func (e *Engine) AddInput(input string) (Reminder, error) {
	label, dueAt, err := Parse(input, time.Now())
	if err != nil {
		parseRejections.WithLabelValues(rejectionReason(err)).Inc()
		e.logger.Debug().Err(err).Msg("rejected input")
		return Reminder{}, err
	}

	return e.Add(label, dueAt), nil
}

// Add inserts a new reminder at the end of the active set and requests exactly one
// notification dispatch for its due instant. A failing dispatch is logged; the
// reminder is kept either way.
func (e *Engine) Add(label string, dueAt time.Time) Reminder {
	reminder := Reminder{
		ID:    uuid.NewString(),
		Label: label,
		DueAt: dueAt,
	}

	e.mu.Lock()
	e.reminders = append(e.reminders, &trackedReminder{
		Reminder:  reminder,
		remaining: reminder.Countdown(time.Now()),
	})
	e.mu.Unlock()

	activeReminders.Inc()

	if err := e.notifier.Notify(reminder.Label, notify.Body(dueAt), dueAt); err != nil {
		e.logger.Error().Err(err).Str("id", reminder.ID).Msg("could not schedule notification")
	}
	notificationsScheduled.Inc()

	e.logger.Info().Str("id", reminder.ID).Str("label", reminder.Label).Time("due-at", dueAt).Msg("reminder added")

	return reminder
}

// Tick recomputes every countdown against now and then sweeps reminders whose due
// instant has passed. The sweep runs on the same tick that first observes the
// crossing, so a swept reminder is never listed after that tick.
func (e *Engine) Tick(now time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()

	active := e.reminders[:0]
	for _, tracked := range e.reminders {
		tracked.remaining = tracked.Countdown(now)
		if tracked.Due(now) {
			e.logger.Info().Str("id", tracked.ID).Str("label", tracked.Label).Msg("reminder expired")
			remindersExpired.Inc()
			activeReminders.Dec()
			continue
		}
		active = append(active, tracked)
	}
	e.reminders = active
}

// List returns a snapshot of the active set in insertion order.
func (e *Engine) List() []Item {
	e.mu.Lock()
	defer e.mu.Unlock()

	items := make([]Item, 0, len(e.reminders))
	for _, tracked := range e.reminders {
		items = append(items, Item{
			ID:        tracked.ID,
			Label:     tracked.Label,
			DueAt:     tracked.DueAt,
			Remaining: tracked.remaining,
		})
	}
	return items
}
