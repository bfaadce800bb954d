package handler

import (
	"net/http"

	"github.com/mcoot/arcade-go/internal/model"
	"github.com/mcoot/arcade-go/internal/web/templates"
)

// HomeHandler handles the home page
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Home renders the home page with the game list
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := templates.HomeData{
		PageData: pageData(r.Context(), "Home"),
		Games:    model.Games,
	}
	render(w, r, "home", data)
}
