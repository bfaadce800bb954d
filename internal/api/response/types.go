package response

import (
	"github.com/mcoot/arcade-go/internal/model"
	"github.com/mcoot/arcade-go/internal/session"
)

// Success is the bare success body: {"status":"success"}
type Success struct {
	Status string `json:"status"`
}

// NewSuccess creates a success body
func NewSuccess() Success {
	return Success{Status: "success"}
}

// User represents a user's public identity in API responses
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// UserFromModel converts a model.PublicUser to a response User
func UserFromModel(u model.PublicUser) User {
	return User{
		ID:       int64(u.ID),
		Username: u.Username,
	}
}

// AuthResponse is the response for register/login endpoints
type AuthResponse struct {
	Status string `json:"status"`
	Token  string `json:"token"`
	User   User   `json:"user"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *session.Session) AuthResponse {
	return AuthResponse{
		Status: "success",
		Token:  s.Token,
		User: User{
			ID:       int64(s.UserID),
			Username: s.Username,
		},
	}
}

// MeResponse is the response for the current-identity endpoint
type MeResponse struct {
	Status string `json:"status"`
	User   User   `json:"user"`
}
