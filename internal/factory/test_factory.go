package factory

import (
	"time"

	"github.com/mcoot/arcade-go/internal/dependencies/mocks"
	"github.com/mcoot/arcade-go/internal/services/auth"
	sessionmemory "github.com/mcoot/arcade-go/internal/session/memory"
	"github.com/mcoot/arcade-go/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	sessions := sessionmemory.New(mockClock)

	app := newWithDependencies(store, sessions, mockClock, auth.DefaultConfig())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
