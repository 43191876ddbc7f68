// FILE: internal/storage/schema.go
package storage

import (
	"database/sql"
	"time"
)

// GameRecord represents a row in the games table
type GameRecord struct {
	GameID        string         `db:"game_id"`
	InitialLayout string         `db:"initial_layout"`
	StartingTurn  string         `db:"starting_turn"` // "b" or "w"
	BlackPlayerID string         `db:"black_player_id"`
	BlackName     string         `db:"black_name"`
	WhitePlayerID string         `db:"white_player_id"`
	WhiteName     string         `db:"white_name"`
	StartTimeUTC  time.Time      `db:"start_time_utc"`
	Result        sql.NullString `db:"result"`
	BlackDiscs    sql.NullInt64  `db:"black_discs"`
	WhiteDiscs    sql.NullInt64  `db:"white_discs"`
}

// MoveRecord represents a row in the moves table
type MoveRecord struct {
	MoveID          int64     `db:"move_id"`
	GameID          string    `db:"game_id"`
	MoveNumber      int       `db:"move_number"`
	Square          string    `db:"square"`
	Flipped         int       `db:"flipped"`
	LayoutAfterMove string    `db:"layout_after_move"`
	PlayerColor     string    `db:"player_color"` // "b" or "w"
	OpponentPassed  bool      `db:"opponent_passed"`
	MoveTimeUTC     time.Time `db:"move_time_utc"`
}

// ResultRecord closes a game row once play has ended
type ResultRecord struct {
	GameID     string
	Result     string
	BlackDiscs int
	WhiteDiscs int
}

// Schema defines the SQLite database structure
const Schema = `
CREATE TABLE IF NOT EXISTS games (
	game_id TEXT PRIMARY KEY,
	initial_layout TEXT NOT NULL CHECK(length(initial_layout) = 64),
	starting_turn TEXT NOT NULL CHECK(starting_turn IN ('b', 'w')),
	black_player_id TEXT NOT NULL,
	black_name TEXT NOT NULL DEFAULT '',
	white_player_id TEXT NOT NULL,
	white_name TEXT NOT NULL DEFAULT '',
	start_time_utc DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	result TEXT,
	black_discs INTEGER,
	white_discs INTEGER
);

CREATE TABLE IF NOT EXISTS moves (
	move_id INTEGER PRIMARY KEY AUTOINCREMENT,
	game_id TEXT NOT NULL,
	move_number INTEGER NOT NULL,
	square TEXT NOT NULL,
	flipped INTEGER NOT NULL CHECK(flipped > 0),
	layout_after_move TEXT NOT NULL,
	player_color TEXT NOT NULL CHECK(player_color IN ('b', 'w')),
	opponent_passed INTEGER NOT NULL DEFAULT 0,
	move_time_utc DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (game_id) REFERENCES games(game_id) ON DELETE CASCADE,
	UNIQUE(game_id, move_number)
);

CREATE INDEX IF NOT EXISTS idx_moves_game_id ON moves(game_id);
CREATE INDEX IF NOT EXISTS idx_games_black_player ON games(black_player_id);
CREATE INDEX IF NOT EXISTS idx_games_white_player ON games(white_player_id);
`
