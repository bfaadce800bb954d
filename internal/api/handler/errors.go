package handler

import (
	"net/http"

	"github.com/mcoot/arcade-go/internal/api/apierr"
)

// Re-exported apierr helpers so handlers stay terse

// WriteError writes a JSON error response
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}
