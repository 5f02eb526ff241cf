package achievementhandlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	achievementservice "github.com/ice-and-stone/scorekeeper/app/modules/achievement/application"
	"github.com/ice-and-stone/scorekeeper/app/shared/transport"
)

// AchievementHandlers exposes the achievement catalogue over HTTP.
type AchievementHandlers struct {
	service achievementservice.Service
	logger  *slog.Logger
}

// NewAchievementHandlers creates a new AchievementHandlers.
func NewAchievementHandlers(service achievementservice.Service, logger *slog.Logger) *AchievementHandlers {
	return &AchievementHandlers{service: service, logger: logger}
}

// Register mounts the achievement routes.
func (h *AchievementHandlers) Register(r chi.Router) {
	r.Get("/achievements", h.HandleList)
}

func (h *AchievementHandlers) HandleList(w http.ResponseWriter, r *http.Request) {
	achievements, err := h.service.List(r.Context())
	if err != nil {
		transport.RespondError(w, r, h.logger, err)
		return
	}
	transport.RespondJSON(w, http.StatusOK, achievements)
}
