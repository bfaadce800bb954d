package model

import "time"

// UserID uniquely identifies a registered user
type UserID int64

// User represents a registered account
// Accounts are immutable after registration: no profile edits, no deletion
type User struct {
	ID           UserID    `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Public returns the user's public identity, safe to hand to clients
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
	}
}

// PublicUser is the client-visible subset of a User
type PublicUser struct {
	ID       UserID `json:"id"`
	Username string `json:"username"`
}
