package session

import (
	"context"
	"errors"
	"time"

	"github.com/mcoot/arcade-go/internal/model"
)

// ErrSessionNotFound is returned for unknown or expired tokens; the two
// cases are deliberately indistinguishable
var ErrSessionNotFound = errors.New("session not found")

// Session maps an opaque browser token to an authenticated identity.
// The token is the only thing the client ever holds; all state stays
// server-side.
type Session struct {
	Token     string       `json:"token"`
	UserID    model.UserID `json:"user_id"`
	Username  string       `json:"username"`
	CreatedAt time.Time    `json:"created_at"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// Store persists sessions for the duration of a browser session
type Store interface {
	// Save persists a session until its ExpiresAt
	Save(ctx context.Context, session *Session) error
	// Get returns the session for a token, or ErrSessionNotFound if the
	// token is unknown or the session has expired
	Get(ctx context.Context, token string) (*Session, error)
	// Delete removes a session; deleting an unknown token is not an error
	Delete(ctx context.Context, token string) error
}
