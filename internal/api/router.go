package api

import (
	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	"github.com/playlens/playlens/internal/api/recovery"
	"github.com/playlens/playlens/internal/services"
)

// Deps groups the services the router wires to handlers.
type Deps struct {
	Players   *services.PlayerService
	UserData  *services.UserDataService
	Files     *services.FileService
	Objects   *services.ObjectService
	Analytics *services.AnalyticsService

	CORSAllowedOrigins []string
}

// NewRouter builds the full REST surface.
func NewRouter(d Deps) *mux.Router {
	root := mux.NewRouter()
	root.Use(recovery.Middleware)
	root.Use(RequestLogger)
	root.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	players := NewPlayerHandler(d.Players, d.UserData)
	root.HandleFunc("/api/players", players.ListPlayers).Methods("GET")
	root.HandleFunc("/api/players/{playerId}", players.GetPlayer).Methods("GET")
	root.HandleFunc("/api/players/{playerId}/userdata", players.GetUserData).Methods("GET")

	analytics := NewAnalyticsHandler(d.Analytics)
	root.HandleFunc("/api/players/{playerId}/analytics", analytics.GetAnalytics).Methods("GET")

	files := NewFileHandler(d.Files)
	root.HandleFunc("/api/players/{playerId}/files", files.ListFiles).Methods("GET")
	root.HandleFunc("/api/players/{playerId}/files/{fileName}/download", files.DownloadFile).Methods("GET")
	root.HandleFunc("/api/players/{playerId}/files/{fileName}/analyze", files.AnalyzeFile).Methods("GET")

	objects := NewObjectHandler(d.Objects)
	root.HandleFunc("/api/players/{playerId}/objects", objects.ListObjects).Methods("GET")

	health := NewHealthHandler()
	root.HandleFunc("/api/health", health.CheckHealth).Methods("GET")

	return root
}
