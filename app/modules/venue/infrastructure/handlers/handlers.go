package venuehandlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	venueservice "github.com/ice-and-stone/scorekeeper/app/modules/venue/application"
	"github.com/ice-and-stone/scorekeeper/app/shared/faults"
	"github.com/ice-and-stone/scorekeeper/app/shared/transport"
)

// VenueHandlers exposes the venue and lane catalogue over HTTP.
type VenueHandlers struct {
	service venueservice.Service
	logger  *slog.Logger
}

// NewVenueHandlers creates a new VenueHandlers.
func NewVenueHandlers(service venueservice.Service, logger *slog.Logger) *VenueHandlers {
	return &VenueHandlers{service: service, logger: logger}
}

// Register mounts the venue routes.
func (h *VenueHandlers) Register(r chi.Router) {
	r.Get("/venues", h.HandleListVenues)
	r.Get("/venues/{venueID}/lanes", h.HandleListLanes)
}

func (h *VenueHandlers) HandleListVenues(w http.ResponseWriter, r *http.Request) {
	venues, err := h.service.ListVenues(r.Context())
	if err != nil {
		transport.RespondError(w, r, h.logger, err)
		return
	}
	transport.RespondJSON(w, http.StatusOK, venues)
}

func (h *VenueHandlers) HandleListLanes(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(chi.URLParam(r, "venueID"), 10, 64)
	if err != nil {
		transport.RespondError(w, r, h.logger,
			fmt.Errorf("%w: invalid venue id", faults.ErrValidation))
		return
	}

	lanes, err := h.service.ListLanes(r.Context(), venueID)
	if err != nil {
		transport.RespondError(w, r, h.logger, err)
		return
	}
	transport.RespondJSON(w, http.StatusOK, lanes)
}
