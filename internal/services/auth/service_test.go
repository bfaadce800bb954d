package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/arcade-go/internal/dependencies/mocks"
	"github.com/mcoot/arcade-go/internal/model"
	sessionmemory "github.com/mcoot/arcade-go/internal/session/memory"
	"github.com/mcoot/arcade-go/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage  *memory.Storage
	sessions *sessionmemory.Store
	clock    *mocks.MockClock
	service  *Service
	ctx      context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.sessions = sessionmemory.New(s.clock)
	s.service = New(s.storage, s.sessions, s.clock, DefaultConfig())
	s.ctx = context.Background()
}

// Register tests

func (s *ServiceSuite) TestRegisterSucceeds() {
	user, err := s.service.Register(s.ctx, "alice", "password123")
	s.Require().NoError(err)

	s.Equal("alice", user.Username)
	s.NotZero(user.ID)
}

func (s *ServiceSuite) TestRegisterHashesPassword() {
	_, _ = s.service.Register(s.ctx, "alice", "password123")

	user, err := s.storage.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.NotEmpty(user.PasswordHash)
	s.NotEqual("password123", user.PasswordHash) // Should be hashed
}

func (s *ServiceSuite) TestRegisterFailsIfUsernameExists() {
	_, _ = s.service.Register(s.ctx, "alice", "password123")

	_, err := s.service.Register(s.ctx, "alice", "different")
	s.ErrorIs(err, model.ErrUsernameTaken)

	count, err := s.storage.CountUsers(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, count)
}

// Verify tests

func (s *ServiceSuite) TestVerifySucceeds() {
	registered, _ := s.service.Register(s.ctx, "alice", "password123")

	user, err := s.service.Verify(s.ctx, "alice", "password123")
	s.Require().NoError(err)
	s.Equal(registered.ID, user.ID)
}

func (s *ServiceSuite) TestVerifyFailsWithWrongPassword() {
	_, _ = s.service.Register(s.ctx, "alice", "password123")

	_, err := s.service.Verify(s.ctx, "alice", "wrongpassword")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestVerifyFailsWithUnknownUser() {
	_, err := s.service.Verify(s.ctx, "nobody", "password123")
	s.ErrorIs(err, ErrInvalidCredentials)
}

// Login tests

func (s *ServiceSuite) TestLoginCreatesSession() {
	user, _ := s.service.Register(s.ctx, "alice", "password123")

	sess, err := s.service.Login(s.ctx, user)
	s.Require().NoError(err)

	s.True(strings.HasPrefix(sess.Token, "sess_"))
	s.Equal(user.ID, sess.UserID)
	s.Equal("alice", sess.Username)
	s.Equal(s.clock.Now().Add(7*24*time.Hour), sess.ExpiresAt)
}

func (s *ServiceSuite) TestLoginTokensAreUnique() {
	user, _ := s.service.Register(s.ctx, "alice", "password123")

	first, _ := s.service.Login(s.ctx, user)
	second, _ := s.service.Login(s.ctx, user)
	s.NotEqual(first.Token, second.Token)
}

// SessionUser tests

func (s *ServiceSuite) TestSessionUserSucceeds() {
	user, _ := s.service.Register(s.ctx, "alice", "password123")
	sess, _ := s.service.Login(s.ctx, user)

	resolved, err := s.service.SessionUser(s.ctx, sess.Token)
	s.Require().NoError(err)
	s.Equal(user.ID, resolved.UserID)
	s.Equal("alice", resolved.Username)
}

func (s *ServiceSuite) TestSessionUserFailsWithUnknownToken() {
	_, err := s.service.SessionUser(s.ctx, "sess_unknown")
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestSessionUserFailsWhenExpired() {
	user, _ := s.service.Register(s.ctx, "alice", "password123")
	sess, _ := s.service.Login(s.ctx, user)

	// Advance time past expiration
	s.clock.Advance(7*24*time.Hour + time.Minute)

	_, err := s.service.SessionUser(s.ctx, sess.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

// Logout tests

func (s *ServiceSuite) TestLogoutRemovesSession() {
	user, _ := s.service.Register(s.ctx, "alice", "password123")
	sess, _ := s.service.Login(s.ctx, user)

	err := s.service.Logout(s.ctx, sess.Token)
	s.Require().NoError(err)

	_, err = s.service.SessionUser(s.ctx, sess.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestLogoutNoopForUnknownToken() {
	err := s.service.Logout(s.ctx, "sess_unknown")
	s.NoError(err)
}
