package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/arcade-go/internal/services/auth"
	"github.com/mcoot/arcade-go/internal/services/score"
	"github.com/mcoot/arcade-go/internal/web/handler"
	"github.com/mcoot/arcade-go/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger       *slog.Logger
	AuthService  *auth.Service
	ScoreService *score.Service
	StaticDir    string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create middleware
	requestIDMiddleware := middleware.RequestID()
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()
	optionalAuthMiddleware := middleware.OptionalAuth(cfg.AuthService)

	// Apply global middleware to all routes
	r.Use(recoveryMiddleware)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)

	// Create handlers
	homeHandler := handler.NewHomeHandler()
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	gameHandler := handler.NewGameHandler()
	leaderboardHandler := handler.NewLeaderboardHandler(cfg.ScoreService)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	// All pages get flash + optional auth; nothing on the web surface
	// requires login (score submission authorizes via the API)
	pages := r.NewRoute().Subrouter()
	pages.Use(flashMiddleware)
	pages.Use(optionalAuthMiddleware)

	pages.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)

	pages.HandleFunc("/login", authHandler.LoginPage).Methods(http.MethodGet)
	pages.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	pages.HandleFunc("/register", authHandler.RegisterPage).Methods(http.MethodGet)
	pages.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	pages.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodGet)

	pages.HandleFunc("/games/{gameName}", gameHandler.GamePage).Methods(http.MethodGet)
	pages.HandleFunc("/leaderboard", leaderboardHandler.Leaderboard).Methods(http.MethodGet)

	return r
}
