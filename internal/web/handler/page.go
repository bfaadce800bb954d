package handler

import (
	"context"
	"net/http"

	"github.com/mcoot/arcade-go/internal/web/middleware"
	"github.com/mcoot/arcade-go/internal/web/templates"
)

// pageData builds the layout data shared by every page from the request
// context (session + flash)
func pageData(ctx context.Context, title string) templates.PageData {
	data := templates.PageData{
		Title: title,
		Flash: middleware.GetFlash(ctx),
	}

	if sess := middleware.GetSession(ctx); sess != nil {
		data.LoggedIn = true
		data.Username = sess.Username
	}
	return data
}

// render writes a page, falling back to a plain 500 on template failure
func render(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Render(w, name, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
