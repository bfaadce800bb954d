package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/arcade-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// User tests

func (s *StorageSuite) TestCreateAndGetUser() {
	user, err := s.storage.CreateUser(s.ctx, "alice", "hash")
	s.Require().NoError(err)
	s.NotZero(user.ID)

	retrieved, err := s.storage.GetUser(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal("alice", retrieved.Username)
	s.Equal("hash", retrieved.PasswordHash)
}

func (s *StorageSuite) TestCreateUserAssignsSequentialIDs() {
	alice, _ := s.storage.CreateUser(s.ctx, "alice", "hash")
	bob, _ := s.storage.CreateUser(s.ctx, "bob", "hash")
	s.NotEqual(alice.ID, bob.ID)
}

func (s *StorageSuite) TestCreateUserRejectsDuplicateUsername() {
	_, err := s.storage.CreateUser(s.ctx, "alice", "hash")
	s.Require().NoError(err)

	_, err = s.storage.CreateUser(s.ctx, "alice", "otherhash")
	s.ErrorIs(err, model.ErrUsernameTaken)

	count, _ := s.storage.CountUsers(s.ctx)
	s.Equal(1, count)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, 42)
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestGetUserByUsername() {
	created, _ := s.storage.CreateUser(s.ctx, "alice", "hash")

	user, err := s.storage.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(created.ID, user.ID)
}

func (s *StorageSuite) TestGetUserByUsernameNotFound() {
	_, err := s.storage.GetUserByUsername(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrUserNotFound)
}

// Score tests

func (s *StorageSuite) TestSaveScoreAssignsID() {
	user, _ := s.storage.CreateUser(s.ctx, "alice", "hash")

	score := &model.Score{
		UserID:    user.ID,
		GameName:  model.GameSnake,
		Score:     100,
		Timestamp: time.Now(),
	}
	err := s.storage.SaveScore(s.ctx, score)
	s.Require().NoError(err)
	s.NotZero(score.ID)
}

func (s *StorageSuite) TestTopScoresEmptyGame() {
	entries, err := s.storage.TopScores(s.ctx, model.GameSnake, 10)
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *StorageSuite) TestTopScoresOrdering() {
	alice, _ := s.storage.CreateUser(s.ctx, "alice", "hash")
	bob, _ := s.storage.CreateUser(s.ctx, "bob", "hash")

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for _, sc := range []*model.Score{
		{UserID: alice.ID, GameName: model.GameSnake, Score: 100, Timestamp: base},
		{UserID: bob.ID, GameName: model.GameSnake, Score: 300, Timestamp: base.Add(time.Minute)},
		{UserID: alice.ID, GameName: model.GameSnake, Score: 300, Timestamp: base.Add(2 * time.Minute)},
	} {
		s.Require().NoError(s.storage.SaveScore(s.ctx, sc))
	}

	entries, err := s.storage.TopScores(s.ctx, model.GameSnake, 10)
	s.Require().NoError(err)
	s.Require().Len(entries, 3)

	// Ties broken by earliest timestamp
	s.Equal("bob", entries[0].Username)
	s.Equal(300, entries[0].Score)
	s.Equal("alice", entries[1].Username)
	s.Equal(300, entries[1].Score)
	s.Equal(100, entries[2].Score)
}

func (s *StorageSuite) TestTopScoresLimit() {
	user, _ := s.storage.CreateUser(s.ctx, "alice", "hash")
	for i := 0; i < 5; i++ {
		_ = s.storage.SaveScore(s.ctx, &model.Score{
			UserID:    user.ID,
			GameName:  model.GameSnake,
			Score:     i,
			Timestamp: time.Now(),
		})
	}

	entries, err := s.storage.TopScores(s.ctx, model.GameSnake, 3)
	s.Require().NoError(err)
	s.Len(entries, 3)
}

func (s *StorageSuite) TestTopScoresIgnoresOtherGames() {
	user, _ := s.storage.CreateUser(s.ctx, "alice", "hash")
	_ = s.storage.SaveScore(s.ctx, &model.Score{UserID: user.ID, GameName: model.GameSnake, Score: 1, Timestamp: time.Now()})
	_ = s.storage.SaveScore(s.ctx, &model.Score{UserID: user.ID, GameName: model.GameDino, Score: 2, Timestamp: time.Now()})

	entries, err := s.storage.TopScores(s.ctx, model.GameDino, 10)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal(2, entries[0].Score)
}
