package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/mcoot/arcade-go/internal/model"
	"github.com/mcoot/arcade-go/internal/storage"
)

// Postgres error code for unique constraint violations
const uniqueViolationCode = "23505"

// Storage is a Postgres-backed implementation of the storage interface
type Storage struct {
	db  *sqlx.DB
	cfg Config
}

// New connects to Postgres and initializes the schema
func New(cfg Config) (*Storage, error) {
	db, err := sqlx.Connect("pgx", cfg.DSN)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	s := &Storage{db: db, cfg: cfg}
	if err := s.InitSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// NewWithDB creates a Postgres storage with an existing connection (for testing)
func NewWithDB(db *sqlx.DB, cfg Config) *Storage {
	return &Storage{db: db, cfg: cfg}
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) CreateUser(ctx context.Context, username, passwordHash string) (*model.User, error) {
	const query = `
		INSERT INTO users (username, password_hash, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, username, password_hash, created_at
	`

	var user model.User
	err := s.db.GetContext(ctx, &user, query, username, passwordHash)
	if err != nil {
		// Integrity violations stay inside the store boundary; callers only
		// ever see the domain error
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, model.ErrUsernameTaken
		}
		return nil, err
	}
	return &user, nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	const query = `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE id = $1
	`

	var user model.User
	err := s.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	const query = `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = $1
	`

	var user model.User
	err := s.db.GetContext(ctx, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Storage) CountUsers(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM users`

	var count int
	if err := s.db.GetContext(ctx, &count, query); err != nil {
		return 0, err
	}
	return count, nil
}

// Score operations

func (s *Storage) SaveScore(ctx context.Context, score *model.Score) error {
	const query = `
		INSERT INTO scores (user_id, game_name, score, timestamp)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	return s.db.GetContext(ctx, &score.ID, query,
		score.UserID, score.GameName, score.Score, score.Timestamp)
}

func (s *Storage) TopScores(ctx context.Context, gameName model.GameName, limit int) ([]model.LeaderboardEntry, error) {
	const query = `
		SELECT u.username, s.score, s.timestamp
		FROM scores s
		JOIN users u ON s.user_id = u.id
		WHERE s.game_name = $1
		ORDER BY s.score DESC, s.timestamp ASC, s.id ASC
		LIMIT $2
	`

	entries := []model.LeaderboardEntry{}
	if err := s.db.SelectContext(ctx, &entries, query, gameName, limit); err != nil {
		return nil, err
	}
	return entries, nil
}
