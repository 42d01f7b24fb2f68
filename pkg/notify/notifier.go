package notify

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Notifier surfaces an alert for a reminder at the given instant. Implementations
// schedule the alert themselves; Notify returns as soon as the alert is scheduled.
type Notifier interface {
	Notify(title string, body string, fireAt time.Time) error
}

// Multi fans a notification out to all given notifiers. Individual failures are
// logged and do not prevent the remaining notifiers from being called.
func Multi(notifiers ...Notifier) Notifier {
	return multi(notifiers)
}

type multi []Notifier

func (m multi) Notify(title string, body string, fireAt time.Time) error {
	for _, n := range m {
		if err := n.Notify(title, body, fireAt); err != nil {
			log.Error().Err(err).Str("title", title).Msg("notifier failed")
		}
	}
	return nil
}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{
		logger: log.With().Str("component", "LogNotifier").Logger(),
	}
}

// LogNotifier writes the alert to the log when the reminder comes due. A fire
// instant that has already passed fires immediately.
type LogNotifier struct {
	logger zerolog.Logger
}

func (n *LogNotifier) Notify(title string, body string, fireAt time.Time) error {
	n.logger.Debug().Time("fire-at", fireAt).Str("title", title).Msg("scheduling notification")
	time.AfterFunc(time.Until(fireAt), func() {
		n.logger.Info().Str("title", title).Msgf("🔔 %s: %s", title, body)
	})
	return nil
}

// Body formats the standard notification body for a reminder due at the given
// instant, like "due in 5 minutes".
func Body(fireAt time.Time) string {
	return "due " + humanize.Time(fireAt)
}
