package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/arcade-go/internal/dependencies/clock"
	"github.com/mcoot/arcade-go/internal/services/auth"
	"github.com/mcoot/arcade-go/internal/services/score"
	"github.com/mcoot/arcade-go/internal/session"
	sessionmemory "github.com/mcoot/arcade-go/internal/session/memory"
	sessionredis "github.com/mcoot/arcade-go/internal/session/redis"
	"github.com/mcoot/arcade-go/internal/storage"
	"github.com/mcoot/arcade-go/internal/storage/memory"
	"github.com/mcoot/arcade-go/internal/storage/postgres"
)

// Storage type constants
const (
	StorageTypeMemory   = "memory"
	StorageTypePostgres = "postgres"
)

// Session store type constants
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage  storage.Storage
	Sessions session.Store

	// External dependencies
	Clock clock.Clock

	// Services
	AuthService  *auth.Service
	ScoreService *score.Service
}

// Config holds configuration for the application factory.
// All runtime configuration flows through here; there is no module-level
// state.
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "postgres")
	// If empty, defaults to "memory"
	StorageType string
	// PostgresConfig holds Postgres settings (required if StorageType is "postgres")
	PostgresConfig *postgres.Config
	// SessionStoreType selects the session backend ("memory" or "redis")
	// If empty, defaults to "memory"
	SessionStoreType string
	// RedisConfig holds Redis settings (required if SessionStoreType is "redis")
	RedisConfig *sessionredis.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	clk := clock.New()

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypePostgres:
		if cfg.PostgresConfig == nil {
			return nil, errors.New("PostgresConfig required when StorageType is postgres")
		}
		pgStore, err := postgres.New(*cfg.PostgresConfig)
		if err != nil {
			return nil, err
		}
		store = pgStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'postgres'")
	}

	// Create session store based on type
	var sessions session.Store
	sessionType := cfg.SessionStoreType
	if sessionType == "" {
		sessionType = SessionStoreMemory
	}

	switch sessionType {
	case SessionStoreMemory:
		sessions = sessionmemory.New(clk)
	case SessionStoreRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when SessionStoreType is redis")
		}
		redisSessions, err := sessionredis.New(*cfg.RedisConfig, clk)
		if err != nil {
			return nil, err
		}
		sessions = redisSessions
	default:
		return nil, errors.New("invalid SessionStoreType: must be 'memory' or 'redis'")
	}

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	return newWithDependencies(store, sessions, clk, authCfg), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, sessions session.Store, clk clock.Clock, authCfg auth.Config) *App {
	return &App{
		Storage:      store,
		Sessions:     sessions,
		Clock:        clk,
		AuthService:  auth.New(store, sessions, clk, authCfg),
		ScoreService: score.New(store, clk),
	}
}
