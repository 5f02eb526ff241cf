package teamhandlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	teamservice "github.com/ice-and-stone/scorekeeper/app/modules/team/application"
	"github.com/ice-and-stone/scorekeeper/app/shared/faults"
	"github.com/ice-and-stone/scorekeeper/app/shared/transport"
)

// TeamHandlers exposes the roster operations over HTTP.
type TeamHandlers struct {
	service teamservice.Service
	logger  *slog.Logger
}

// NewTeamHandlers creates a new TeamHandlers.
func NewTeamHandlers(service teamservice.Service, logger *slog.Logger) *TeamHandlers {
	return &TeamHandlers{service: service, logger: logger}
}

// Register mounts the team routes.
func (h *TeamHandlers) Register(r chi.Router) {
	r.Post("/teams", h.HandleCreatePair)
	r.Post("/teams/players", h.HandleAddPlayers)
	r.Get("/games/{gameID}/teams", h.HandleListForGame)
	r.Get("/teams/{teamID}/players", h.HandleListPlayers)
}

type createPairRequest struct {
	GameID         uuid.UUID `json:"gameId"`
	NameA          string    `json:"nameA"`
	ColourA        string    `json:"colourA"`
	NameB          string    `json:"nameB"`
	ColourB        string    `json:"colourB"`
	FirstRoundTeam string    `json:"firstRoundTeam"`
}

func (h *TeamHandlers) HandleCreatePair(w http.ResponseWriter, r *http.Request) {
	var req createPairRequest
	if err := transport.DecodeJSON(r, &req); err != nil {
		transport.RespondError(w, r, h.logger, err)
		return
	}

	pair, err := h.service.CreatePair(r.Context(), teamservice.CreatePairInput{
		GameID:         req.GameID,
		NameA:          req.NameA,
		ColourA:        req.ColourA,
		NameB:          req.NameB,
		ColourB:        req.ColourB,
		FirstRoundTeam: req.FirstRoundTeam,
	})
	if err != nil {
		transport.RespondError(w, r, h.logger, err)
		return
	}
	transport.RespondJSON(w, http.StatusOK, pair)
}

type addPlayersRequest struct {
	TeamID uuid.UUID `json:"teamId"`
	Names  []string  `json:"names"`
}

func (h *TeamHandlers) HandleAddPlayers(w http.ResponseWriter, r *http.Request) {
	var req addPlayersRequest
	if err := transport.DecodeJSON(r, &req); err != nil {
		transport.RespondError(w, r, h.logger, err)
		return
	}

	if err := h.service.AddPlayers(r.Context(), req.TeamID, req.Names); err != nil {
		transport.RespondError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TeamHandlers) HandleListForGame(w http.ResponseWriter, r *http.Request) {
	gameID, err := uuid.Parse(chi.URLParam(r, "gameID"))
	if err != nil {
		transport.RespondError(w, r, h.logger,
			fmt.Errorf("%w: invalid game id", faults.ErrValidation))
		return
	}

	teams, err := h.service.ListForGame(r.Context(), gameID)
	if err != nil {
		transport.RespondError(w, r, h.logger, err)
		return
	}
	transport.RespondJSON(w, http.StatusOK, teams)
}

func (h *TeamHandlers) HandleListPlayers(w http.ResponseWriter, r *http.Request) {
	teamID, err := uuid.Parse(chi.URLParam(r, "teamID"))
	if err != nil {
		transport.RespondError(w, r, h.logger,
			fmt.Errorf("%w: invalid team id", faults.ErrValidation))
		return
	}

	players, err := h.service.ListPlayers(r.Context(), teamID)
	if err != nil {
		transport.RespondError(w, r, h.logger, err)
		return
	}
	transport.RespondJSON(w, http.StatusOK, players)
}
