package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/arcade-go/internal/dependencies/mocks"
	"github.com/mcoot/arcade-go/internal/session"
)

type StoreSuite struct {
	suite.Suite
	mini  *miniredis.Miniredis
	clock *mocks.MockClock
	store *Store
	ctx   context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.store = NewWithClient(client, s.clock)
	s.ctx = context.Background()
}

func (s *StoreSuite) TearDownTest() {
	if s.store != nil {
		_ = s.store.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StoreSuite) newSession(token string, ttl time.Duration) *session.Session {
	now := s.clock.Now()
	return &session.Session{
		Token:     token,
		UserID:    1,
		Username:  "alice",
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func (s *StoreSuite) TestSaveAndGet() {
	sess := s.newSession("sess_abc", time.Hour)
	s.Require().NoError(s.store.Save(s.ctx, sess))

	retrieved, err := s.store.Get(s.ctx, "sess_abc")
	s.Require().NoError(err)
	s.Equal(sess.UserID, retrieved.UserID)
	s.Equal("alice", retrieved.Username)
	s.True(sess.ExpiresAt.Equal(retrieved.ExpiresAt))
}

func (s *StoreSuite) TestSaveSetsTTL() {
	sess := s.newSession("sess_abc", time.Hour)
	_ = s.store.Save(s.ctx, sess)

	ttl := s.mini.TTL("arcade:session:sess_abc")
	s.Equal(time.Hour, ttl)
}

func (s *StoreSuite) TestSaveSkipsAlreadyExpiredSession() {
	sess := s.newSession("sess_abc", -time.Minute)
	s.Require().NoError(s.store.Save(s.ctx, sess))

	_, err := s.store.Get(s.ctx, "sess_abc")
	s.ErrorIs(err, session.ErrSessionNotFound)
}

func (s *StoreSuite) TestGetUnknownToken() {
	_, err := s.store.Get(s.ctx, "sess_unknown")
	s.ErrorIs(err, session.ErrSessionNotFound)
}

func (s *StoreSuite) TestGetAfterTTLExpiry() {
	sess := s.newSession("sess_abc", time.Hour)
	_ = s.store.Save(s.ctx, sess)

	s.mini.FastForward(2 * time.Hour)

	_, err := s.store.Get(s.ctx, "sess_abc")
	s.ErrorIs(err, session.ErrSessionNotFound)
}

func (s *StoreSuite) TestDelete() {
	sess := s.newSession("sess_abc", time.Hour)
	_ = s.store.Save(s.ctx, sess)

	s.Require().NoError(s.store.Delete(s.ctx, "sess_abc"))

	_, err := s.store.Get(s.ctx, "sess_abc")
	s.ErrorIs(err, session.ErrSessionNotFound)
}

func (s *StoreSuite) TestDeleteUnknownTokenIsNoop() {
	s.NoError(s.store.Delete(s.ctx, "sess_unknown"))
}
