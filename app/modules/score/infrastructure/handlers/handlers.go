package scorehandlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	scoreservice "github.com/ice-and-stone/scorekeeper/app/modules/score/application"
	"github.com/ice-and-stone/scorekeeper/app/shared/faults"
	"github.com/ice-and-stone/scorekeeper/app/shared/transport"
)

// ScoreHandlers exposes the score ledger over HTTP.
type ScoreHandlers struct {
	service scoreservice.Service
	logger  *slog.Logger
}

// NewScoreHandlers creates a new ScoreHandlers.
func NewScoreHandlers(service scoreservice.Service, logger *slog.Logger) *ScoreHandlers {
	return &ScoreHandlers{service: service, logger: logger}
}

// Register mounts the score routes.
func (h *ScoreHandlers) Register(r chi.Router) {
	r.Post("/scores", h.HandlePost)
	r.Get("/rounds/{roundID}/scores", h.HandleListForRound)
}

type postScoreRequest struct {
	RoundID uuid.UUID `json:"roundId"`
	TeamID  uuid.UUID `json:"teamId"`
	Value   int       `json:"value"`
}

func (h *ScoreHandlers) HandlePost(w http.ResponseWriter, r *http.Request) {
	var req postScoreRequest
	if err := transport.DecodeJSON(r, &req); err != nil {
		transport.RespondError(w, r, h.logger, err)
		return
	}

	score, err := h.service.PostTeamScore(r.Context(), req.RoundID, req.TeamID, req.Value)
	if err != nil {
		transport.RespondError(w, r, h.logger, err)
		return
	}
	transport.RespondJSON(w, http.StatusOK, score)
}

func (h *ScoreHandlers) HandleListForRound(w http.ResponseWriter, r *http.Request) {
	roundID, err := uuid.Parse(chi.URLParam(r, "roundID"))
	if err != nil {
		transport.RespondError(w, r, h.logger,
			fmt.Errorf("%w: invalid round id", faults.ErrValidation))
		return
	}

	scores, err := h.service.ListForRound(r.Context(), roundID)
	if err != nil {
		transport.RespondError(w, r, h.logger, err)
		return
	}
	transport.RespondJSON(w, http.StatusOK, scores)
}
