package gamehandlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	gameservice "github.com/ice-and-stone/scorekeeper/app/modules/game/application"
	"github.com/ice-and-stone/scorekeeper/app/shared/transport"
)

// GameHandlers exposes the game lifecycle over HTTP.
type GameHandlers struct {
	service gameservice.Service
	logger  *slog.Logger
}

// NewGameHandlers creates a new GameHandlers.
func NewGameHandlers(service gameservice.Service, logger *slog.Logger) *GameHandlers {
	return &GameHandlers{service: service, logger: logger}
}

// Register mounts the game routes.
func (h *GameHandlers) Register(r chi.Router) {
	r.Post("/games/start", h.HandleStart)
	r.Post("/games/end", h.HandleEnd)
}

type startGameRequest struct {
	SessionID    uuid.UUID `json:"sessionId"`
	TargetRounds *int      `json:"targetRounds"`
}

func (h *GameHandlers) HandleStart(w http.ResponseWriter, r *http.Request) {
	var req startGameRequest
	if err := transport.DecodeJSON(r, &req); err != nil {
		transport.RespondError(w, r, h.logger, err)
		return
	}

	game, err := h.service.Start(r.Context(), req.SessionID, req.TargetRounds)
	if err != nil {
		transport.RespondError(w, r, h.logger, err)
		return
	}
	transport.RespondJSON(w, http.StatusOK, game)
}

type endGameRequest struct {
	GameID uuid.UUID `json:"gameId"`
}

func (h *GameHandlers) HandleEnd(w http.ResponseWriter, r *http.Request) {
	var req endGameRequest
	if err := transport.DecodeJSON(r, &req); err != nil {
		transport.RespondError(w, r, h.logger, err)
		return
	}

	game, err := h.service.End(r.Context(), req.GameID)
	if err != nil {
		transport.RespondError(w, r, h.logger, err)
		return
	}
	transport.RespondJSON(w, http.StatusOK, game)
}
