package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/arcade-go/internal/dependencies/clock"
	"github.com/mcoot/arcade-go/internal/model"
	"github.com/mcoot/arcade-go/internal/session"
	"github.com/mcoot/arcade-go/internal/storage"
)

// Errors
var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords; callers must not be able to enumerate accounts
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
)

// Service handles credential verification and session management
type Service struct {
	storage  storage.Storage
	sessions session.Store
	clock    clock.Clock

	sessionDuration time.Duration
}

// Config holds configuration for the auth service
type Config struct {
	SessionDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 7 * 24 * time.Hour,
	}
}

// New creates a new auth Service
func New(store storage.Storage, sessions session.Store, clk clock.Clock, cfg Config) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	return &Service{
		storage:         store,
		sessions:        sessions,
		clock:           clk,
		sessionDuration: cfg.SessionDuration,
	}
}

// Register creates a new user account. The password is bcrypt-hashed before
// it reaches the store; uniqueness is enforced by the store's constraint, so
// a duplicate username surfaces as model.ErrUsernameTaken without a
// check-then-act race.
func (s *Service) Register(ctx context.Context, username, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.storage.CreateUser(ctx, username, string(hash))
}

// Verify checks a username/password pair against the stored hash and
// returns the user on match. Unknown users and wrong passwords both return
// ErrInvalidCredentials.
func (s *Service) Verify(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.storage.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Login creates a session for an already-verified user
func (s *Service) Login(ctx context.Context, user *model.User) (*session.Session, error) {
	now := s.clock.Now()

	sess := &session.Session{
		Token:     generateToken(),
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionDuration),
	}

	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Logout destroys a session; logging out an unknown token is a no-op
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// SessionUser returns the identity associated with a session token
func (s *Service) SessionUser(ctx context.Context, token string) (*session.Session, error) {
	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}
	return sess, nil
}

// generateToken generates a random opaque session token
func generateToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return "sess_" + base64.RawURLEncoding.EncodeToString(b)
}
