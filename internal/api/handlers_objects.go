package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/playlens/playlens/internal/api/respond"
	"github.com/playlens/playlens/internal/api/validate"
	"github.com/playlens/playlens/internal/services"
)

type ObjectHandler struct {
	objects *services.ObjectService
}

func NewObjectHandler(objects *services.ObjectService) *ObjectHandler {
	return &ObjectHandler{objects: objects}
}

// ListObjects handles GET /api/players/{playerId}/objects.
func (h *ObjectHandler) ListObjects(w http.ResponseWriter, r *http.Request) {
	playerID := mux.Vars(r)["playerId"]
	if err := validate.PlayerID(playerID); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	collection, err := h.objects.ListObjects(r.Context(), playerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteSuccess(w, collection)
}
