package roundhandlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	roundservice "github.com/ice-and-stone/scorekeeper/app/modules/round/application"
	"github.com/ice-and-stone/scorekeeper/app/shared/transport"
)

// RoundHandlers exposes the round lifecycle over HTTP.
type RoundHandlers struct {
	service roundservice.Service
	logger  *slog.Logger
}

// NewRoundHandlers creates a new RoundHandlers.
func NewRoundHandlers(service roundservice.Service, logger *slog.Logger) *RoundHandlers {
	return &RoundHandlers{service: service, logger: logger}
}

// Register mounts the round routes.
func (h *RoundHandlers) Register(r chi.Router) {
	r.Post("/rounds/start", h.HandleStart)
	r.Post("/rounds/end", h.HandleEnd)
}

type startRoundRequest struct {
	GameID            uuid.UUID `json:"gameId"`
	Number            int       `json:"number"`
	StartsFirstTeamID uuid.UUID `json:"startsFirstTeamId"`
}

func (h *RoundHandlers) HandleStart(w http.ResponseWriter, r *http.Request) {
	var req startRoundRequest
	if err := transport.DecodeJSON(r, &req); err != nil {
		transport.RespondError(w, r, h.logger, err)
		return
	}

	round, err := h.service.Start(r.Context(), req.GameID, req.Number, req.StartsFirstTeamID)
	if err != nil {
		transport.RespondError(w, r, h.logger, err)
		return
	}
	transport.RespondJSON(w, http.StatusOK, round)
}

type endRoundRequest struct {
	RoundID uuid.UUID `json:"roundId"`
}

func (h *RoundHandlers) HandleEnd(w http.ResponseWriter, r *http.Request) {
	var req endRoundRequest
	if err := transport.DecodeJSON(r, &req); err != nil {
		transport.RespondError(w, r, h.logger, err)
		return
	}

	round, err := h.service.End(r.Context(), req.RoundID)
	if err != nil {
		transport.RespondError(w, r, h.logger, err)
		return
	}
	transport.RespondJSON(w, http.StatusOK, round)
}
