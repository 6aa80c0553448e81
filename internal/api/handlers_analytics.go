package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/playlens/playlens/internal/api/respond"
	"github.com/playlens/playlens/internal/api/validate"
	"github.com/playlens/playlens/internal/services"
)

type AnalyticsHandler struct {
	analytics *services.AnalyticsService
}

func NewAnalyticsHandler(analytics *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// GetAnalytics handles GET /api/players/{playerId}/analytics.
func (h *AnalyticsHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	playerID := mux.Vars(r)["playerId"]
	if err := validate.PlayerID(playerID); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	snapshot, err := h.analytics.GetAnalytics(r.Context(), playerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteSuccess(w, snapshot)
}
