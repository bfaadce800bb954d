package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/arcade-go/internal/middleware"
)

// Recovery creates panic recovery middleware for web pages
// Returns a plain 500 page on panic
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, middleware.DefaultPanicHandler)
}
