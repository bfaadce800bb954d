package memory

import (
	"context"
	"sync"

	"github.com/mcoot/arcade-go/internal/dependencies/clock"
	"github.com/mcoot/arcade-go/internal/session"
)

// Store is an in-memory implementation of the session store
type Store struct {
	clock clock.Clock

	mu       sync.RWMutex
	sessions map[string]*session.Session
}

// New creates a new in-memory session store
func New(clk clock.Clock) *Store {
	return &Store{
		clock:    clk,
		sessions: make(map[string]*session.Session),
	}
}

// Ensure Store implements the interface
var _ session.Store = (*Store)(nil)

func (s *Store) Save(ctx context.Context, sess *session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Token] = sess
	return nil
}

func (s *Store) Get(ctx context.Context, token string) (*session.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, session.ErrSessionNotFound
	}

	// Expiry is checked lazily on read
	if s.clock.Now().After(sess.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, session.ErrSessionNotFound
	}

	return sess, nil
}

func (s *Store) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// Sweep removes expired sessions (call periodically)
func (s *Store) Sweep() {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, sess := range s.sessions {
		if now.After(sess.ExpiresAt) {
			delete(s.sessions, token)
		}
	}
}
