package sessionhandlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	sessionservice "github.com/ice-and-stone/scorekeeper/app/modules/session/application"
	"github.com/ice-and-stone/scorekeeper/app/shared/transport"
)

// SessionHandlers exposes the session lifecycle over HTTP.
type SessionHandlers struct {
	service sessionservice.Service
	logger  *slog.Logger
}

// NewSessionHandlers creates a new SessionHandlers.
func NewSessionHandlers(service sessionservice.Service, logger *slog.Logger) *SessionHandlers {
	return &SessionHandlers{service: service, logger: logger}
}

// Register mounts the session routes.
func (h *SessionHandlers) Register(r chi.Router) {
	r.Post("/sessions/start", h.HandleStart)
	r.Post("/sessions/end", h.HandleEnd)
}

type startSessionRequest struct {
	LaneID int64 `json:"laneId"`
}

func (h *SessionHandlers) HandleStart(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := transport.DecodeJSON(r, &req); err != nil {
		transport.RespondError(w, r, h.logger, err)
		return
	}

	session, err := h.service.Start(r.Context(), req.LaneID)
	if err != nil {
		transport.RespondError(w, r, h.logger, err)
		return
	}
	transport.RespondJSON(w, http.StatusOK, session)
}

type endSessionRequest struct {
	SessionID uuid.UUID `json:"sessionId"`
}

func (h *SessionHandlers) HandleEnd(w http.ResponseWriter, r *http.Request) {
	var req endSessionRequest
	if err := transport.DecodeJSON(r, &req); err != nil {
		transport.RespondError(w, r, h.logger, err)
		return
	}

	session, err := h.service.End(r.Context(), req.SessionID)
	if err != nil {
		transport.RespondError(w, r, h.logger, err)
		return
	}
	transport.RespondJSON(w, http.StatusOK, session)
}
