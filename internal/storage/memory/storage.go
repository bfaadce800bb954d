package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mcoot/arcade-go/internal/model"
	"github.com/mcoot/arcade-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	users         map[model.UserID]*model.User
	usernameIndex map[string]model.UserID
	scores        []*model.Score

	nextUserID  int64
	nextScoreID int64
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:         make(map[model.UserID]*model.User),
		usernameIndex: make(map[string]model.UserID),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) CreateUser(ctx context.Context, username, passwordHash string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Uniqueness check and insert happen under the same lock, mirroring a
	// relational unique constraint
	if _, exists := s.usernameIndex[username]; exists {
		return nil, model.ErrUsernameTaken
	}

	s.nextUserID++
	user := &model.User{
		ID:           model.UserID(s.nextUserID),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}

	s.users[user.ID] = user
	s.usernameIndex[username] = user.ID
	return user, nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *Storage) CountUsers(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), nil
}

// Score operations

func (s *Storage) SaveScore(ctx context.Context, score *model.Score) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextScoreID++
	score.ID = s.nextScoreID

	stored := *score
	s.scores = append(s.scores, &stored)
	return nil
}

func (s *Storage) TopScores(ctx context.Context, gameName model.GameName, limit int) ([]model.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*model.Score
	for _, sc := range s.scores {
		if sc.GameName == gameName {
			matched = append(matched, sc)
		}
	}

	// Score descending, then earliest timestamp, then insertion order
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Score != matched[j].Score {
			return matched[i].Score > matched[j].Score
		}
		if !matched[i].Timestamp.Equal(matched[j].Timestamp) {
			return matched[i].Timestamp.Before(matched[j].Timestamp)
		}
		return matched[i].ID < matched[j].ID
	})

	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}

	entries := make([]model.LeaderboardEntry, 0, len(matched))
	for _, sc := range matched {
		username := ""
		if user, ok := s.users[sc.UserID]; ok {
			username = user.Username
		}
		entries = append(entries, model.LeaderboardEntry{
			Username:  username,
			Score:     sc.Score,
			Timestamp: sc.Timestamp,
		})
	}
	return entries, nil
}
