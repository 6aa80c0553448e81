package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/playlens/playlens/internal/api/respond"
	"github.com/playlens/playlens/internal/api/validate"
	"github.com/playlens/playlens/internal/services"
)

type FileHandler struct {
	files *services.FileService
}

func NewFileHandler(files *services.FileService) *FileHandler {
	return &FileHandler{files: files}
}

// ListFiles handles GET /api/players/{playerId}/files.
func (h *FileHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	playerID := mux.Vars(r)["playerId"]
	if err := validate.PlayerID(playerID); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	collection, err := h.files.ListFiles(r.Context(), playerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteSuccess(w, collection)
}

// DownloadFile handles GET /api/players/{playerId}/files/{fileName}/download.
// This is the one unwrapped endpoint: raw bytes with the stored content type.
func (h *FileHandler) DownloadFile(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	playerID, fileName := vars["playerId"], vars["fileName"]
	if err := validate.PlayerID(playerID); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if err := validate.FileName(fileName); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	content, file, err := h.files.DownloadFile(r.Context(), playerID, fileName)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}

// AnalyzeFile handles GET /api/players/{playerId}/files/{fileName}/analyze.
func (h *FileHandler) AnalyzeFile(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	playerID, fileName := vars["playerId"], vars["fileName"]
	if err := validate.PlayerID(playerID); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if err := validate.FileName(fileName); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	analysis, err := h.files.AnalyzeFile(r.Context(), playerID, fileName)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteSuccess(w, analysis)
}
