package model

import "time"

// Score is one submitted score entry
// Entries are append-only: never updated or deleted, and a user may hold
// arbitrarily many entries per game
type Score struct {
	ID        int64     `db:"id" json:"id"`
	UserID    UserID    `db:"user_id" json:"user_id"`
	GameName  GameName  `db:"game_name" json:"game_name"`
	Score     int       `db:"score" json:"score"`
	Timestamp time.Time `db:"timestamp" json:"timestamp"`
}

// LeaderboardEntry is one row of a leaderboard: the Score joined to its
// owning user's username
type LeaderboardEntry struct {
	Username  string    `db:"username" json:"username"`
	Score     int       `db:"score" json:"score"`
	Timestamp time.Time `db:"timestamp" json:"timestamp"`
}

// DefaultLeaderboardLimit is the number of entries a leaderboard query
// returns when the caller doesn't ask for a specific limit
const DefaultLeaderboardLimit = 10
