package api

import (
	"errors"
	"net/http"

	"github.com/playlens/playlens/internal/api/respond"
	"github.com/playlens/playlens/internal/model"
)

// writeServiceError maps service failures onto the response envelope: domain
// absences become 404, every other anticipated failure becomes 400. The
// messages carried by model error types are descriptive and never include
// credentials or stack traces.
func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, model.ErrNotFound) {
		respond.WriteNotFound(w, "not found")
		return
	}
	respond.WriteError(w, http.StatusBadRequest, err.Error())
}
