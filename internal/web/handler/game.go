package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/arcade-go/internal/model"
	"github.com/mcoot/arcade-go/internal/web/templates"
)

// GameHandler serves the game page shells
type GameHandler struct{}

// NewGameHandler creates a new GameHandler
func NewGameHandler() *GameHandler {
	return &GameHandler{}
}

// GamePage renders the shell page for a game; the game itself runs
// client-side
func (h *GameHandler) GamePage(w http.ResponseWriter, r *http.Request) {
	name := model.GameName(mux.Vars(r)["gameName"])

	game, ok := model.GameByName(name)
	if !ok {
		http.NotFound(w, r)
		return
	}

	data := templates.GameData{
		PageData: pageData(r.Context(), game.Title),
		Game:     game,
	}
	render(w, r, "game", data)
}
