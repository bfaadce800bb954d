package handler

import (
	"net/http"

	"github.com/mcoot/arcade-go/internal/model"
	"github.com/mcoot/arcade-go/internal/services/score"
	"github.com/mcoot/arcade-go/internal/web/templates"
)

// LeaderboardHandler serves the server-rendered leaderboard page
type LeaderboardHandler struct {
	scoreService *score.Service
}

// NewLeaderboardHandler creates a new LeaderboardHandler
func NewLeaderboardHandler(scoreService *score.Service) *LeaderboardHandler {
	return &LeaderboardHandler{
		scoreService: scoreService,
	}
}

// Leaderboard renders the leaderboard for the selected game (?game=...,
// defaulting to the first game in the registry)
func (h *LeaderboardHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	selected := model.Games[0]
	if name := r.URL.Query().Get("game"); name != "" {
		game, ok := model.GameByName(model.GameName(name))
		if !ok {
			http.NotFound(w, r)
			return
		}
		selected = game
	}

	entries, err := h.scoreService.Top(r.Context(), selected.Name, model.DefaultLeaderboardLimit)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := templates.LeaderboardData{
		PageData: pageData(r.Context(), "Leaderboard"),
		Games:    model.Games,
		Selected: selected,
		Entries:  entries,
	}
	render(w, r, "leaderboard", data)
}
