package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/arcade-go/internal/middleware"
)

// Logging creates request logging middleware for the API
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger)
}

// RequestID creates request-ID middleware for the API
func RequestID() func(http.Handler) http.Handler {
	return middleware.RequestID()
}
