package score

import (
	"context"

	"github.com/mcoot/arcade-go/internal/dependencies/clock"
	"github.com/mcoot/arcade-go/internal/model"
	"github.com/mcoot/arcade-go/internal/storage"
)

// Service handles score recording and leaderboard queries
type Service struct {
	storage storage.Storage
	clock   clock.Clock
}

// New creates a new score Service
func New(store storage.Storage, clk clock.Clock) *Service {
	return &Service{
		storage: store,
		clock:   clk,
	}
}

// Record appends a score entry for the user. Game names are validated
// against the registry; score values are trusted client input and carry no
// bounds check.
func (s *Service) Record(ctx context.Context, userID model.UserID, gameName model.GameName, value int) error {
	if !model.KnownGame(gameName) {
		return model.ErrUnknownGame
	}

	entry := &model.Score{
		UserID:    userID,
		GameName:  gameName,
		Score:     value,
		Timestamp: s.clock.Now(),
	}
	return s.storage.SaveScore(ctx, entry)
}

// Top returns the leaderboard for a game: at most limit entries, score
// descending, ties broken earliest-first. A non-positive limit uses the
// default of 10.
func (s *Service) Top(ctx context.Context, gameName model.GameName, limit int) ([]model.LeaderboardEntry, error) {
	if !model.KnownGame(gameName) {
		return nil, model.ErrUnknownGame
	}

	if limit <= 0 {
		limit = model.DefaultLeaderboardLimit
	}
	return s.storage.TopScores(ctx, gameName, limit)
}
