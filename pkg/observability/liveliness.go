package observability

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Attach mounts the prometheus handler and a services/ping endpoint on the router.
func Attach(r chi.Router) {
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/services/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	})
}
