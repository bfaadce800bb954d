package storage

import (
	"context"

	"github.com/mcoot/arcade-go/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// User operations
	//
	// CreateUser persists a new user with the given (already hashed)
	// password. Username uniqueness is enforced by the store itself, not by
	// a prior read, so concurrent registrations cannot race; a duplicate
	// returns model.ErrUsernameTaken.
	CreateUser(ctx context.Context, username, passwordHash string) (*model.User, error)
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	CountUsers(ctx context.Context) (int, error)

	// Score operations
	//
	// SaveScore always inserts a new entry (assigning Score.ID); prior
	// scores for the same user/game pair are never overwritten.
	SaveScore(ctx context.Context, score *model.Score) error

	// TopScores returns at most limit entries for the game, ordered by
	// score descending; ties broken by earliest timestamp, then insertion
	// order.
	TopScores(ctx context.Context, gameName model.GameName, limit int) ([]model.LeaderboardEntry, error)
}
