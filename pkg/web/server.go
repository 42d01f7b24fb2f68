package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ilikeorangutans/chime/pkg/engine"
	"github.com/ilikeorangutans/chime/pkg/observability"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type createReminderRequest struct {
	Text string `json:"text"`
}

type reminderResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	DueAt string `json:"due_at"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewServer(engine *engine.Engine) *Server {
	return &Server{
		engine: engine,
		logger: log.With().Str("component", "web").Logger(),
	}
}

// Server is the HTTP shell around the engine: it feeds raw input lines in and lets
// renderers poll the live list.
type Server struct {
	engine *engine.Engine
	logger zerolog.Logger
}

// Router builds the chi router with the reminder endpoints and the observability
// endpoints attached.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Post("/reminders", s.createReminder)
	r.Get("/reminders", s.listReminders)

	observability.Attach(r)

	return r
}

func (s *Server) createReminder(w http.ResponseWriter, r *http.Request) {
	var req createReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.Debug().Err(err).Msg("could not decode request body")
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	reminder, err := s.engine.AddInput(req.Text)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, reminderResponse{
		ID:    reminder.ID,
		Label: reminder.Label,
		DueAt: reminder.DueAt.Format("15:04:05"),
	})
}

func (s *Server) listReminders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.List())
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("could not write response")
	}
}
