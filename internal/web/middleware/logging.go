package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/arcade-go/internal/middleware"
)

// Logging creates request logging middleware for web pages
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger)
}

// RequestID creates request-ID middleware for web pages
func RequestID() func(http.Handler) http.Handler {
	return middleware.RequestID()
}
