package api

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/playlens/playlens/internal/api/respond"
	"github.com/playlens/playlens/internal/api/validate"
	"github.com/playlens/playlens/internal/model"
	"github.com/playlens/playlens/internal/services"
)

type PlayerHandler struct {
	players  *services.PlayerService
	userData *services.UserDataService
}

func NewPlayerHandler(players *services.PlayerService, userData *services.UserDataService) *PlayerHandler {
	return &PlayerHandler{players: players, userData: userData}
}

// ListPlayers handles GET /api/players.
func (h *PlayerHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	pageNumber, err := validate.PageNumber(q.Get("pageNumber"))
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	pageSize, err := validate.PageSize(q.Get("pageSize"))
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	after, err := validate.Timestamp("lastLoginAfter", q.Get("lastLoginAfter"))
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	before, err := validate.Timestamp("lastLoginBefore", q.Get("lastLoginBefore"))
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	filter := model.PlayerFilter{
		SearchTerm:      q.Get("searchTerm"),
		LastLoginAfter:  after,
		LastLoginBefore: before,
		PageNumber:      pageNumber,
		PageSize:        pageSize,
	}

	page, err := h.players.ListPlayers(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteSuccess(w, page)
}

// GetPlayer handles GET /api/players/{playerId}.
func (h *PlayerHandler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	playerID := mux.Vars(r)["playerId"]
	if err := validate.PlayerID(playerID); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	player, err := h.players.GetPlayer(r.Context(), playerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteSuccess(w, player)
}

// GetUserData handles GET /api/players/{playerId}/userdata?keys=a,b.
func (h *PlayerHandler) GetUserData(w http.ResponseWriter, r *http.Request) {
	playerID := mux.Vars(r)["playerId"]
	if err := validate.PlayerID(playerID); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	var keys []string
	if raw := r.URL.Query().Get("keys"); raw != "" {
		for _, k := range strings.Split(raw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
	}

	snapshot, err := h.userData.GetUserData(r.Context(), playerID, keys)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteSuccess(w, snapshot)
}
