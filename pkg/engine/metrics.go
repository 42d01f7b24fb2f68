package engine

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	activeReminders = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "chime_reminders_active",
		Help: "Number of reminders currently in the active set.",
	})
	notificationsScheduled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chime_notifications_scheduled_total",
		Help: "Number of notification dispatches requested from the notifier.",
	})
	remindersExpired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chime_reminders_expired_total",
		Help: "Number of reminders removed by the expiry sweep.",
	})
	parseRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chime_parse_rejections_total",
		Help: "Number of inputs rejected by the time parser.",
	}, []string{"reason"})
)

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrSeparatorNotFound):
		return "separator-not-found"
	case errors.Is(err, ErrAmbiguousSeparator):
		return "ambiguous-separator"
	case errors.Is(err, ErrMalformedTimeExpression):
		return "malformed-time"
	default:
		return "unknown"
	}
}
