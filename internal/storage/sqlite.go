// Package storage persists scores in SQLite through the pure-Go
// modernc.org/sqlite driver, so builds need no CGO.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store is a score database shared by every mode. It is safe for
// concurrent use.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one finished game.
type ScoreEntry struct {
	ID         int64
	GameID     string
	PlayerName string
	Score      int
	CreatedAt  time.Time
}

// migrations run in order; PRAGMA user_version records how many have been
// applied. Databases from before pilot names start at version 1.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		score INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
	CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);`,

	`ALTER TABLE scores ADD COLUMN player_name TEXT NOT NULL DEFAULT '';
	CREATE INDEX IF NOT EXISTS idx_scores_pilot ON scores(game_id, player_name);`,
}

const scoreColumns = `id, game_id, player_name, score, created_at`

// Open creates or opens the database at dbPath ("~" expands to the home
// directory) and brings its schema up to date.
func Open(dbPath string) (*Store, error) {
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// migrate applies the migrations the database has not seen yet.
func (s *Store) migrate() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return err
	}

	if version == 0 && s.hasPilotColumn() {
		// Created before user_version was tracked, already current
		version = len(migrations)
	}

	for i := version; i < len(migrations); i++ {
		if _, err := s.db.Exec(migrations[i]); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}

	// PRAGMA takes no placeholders
	_, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", len(migrations)))
	return err
}

// hasPilotColumn reports whether the scores table already has player_name.
func (s *Store) hasPilotColumn() bool {
	var n int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM pragma_table_info('scores') WHERE name = 'player_name'`,
	).Scan(&n)
	return err == nil && n > 0
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a finished game and returns the new row ID.
func (s *Store) SaveScore(gameID, playerName string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, player_name, score) VALUES (?, ?, ?)",
		gameID, playerName, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores returns the best limit scores of gameID (10 when limit is not
// positive). Equal scores keep insertion order.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryScores(
		`SELECT `+scoreColumns+` FROM scores WHERE game_id = ?
		 ORDER BY score DESC, id ASC LIMIT ?`,
		gameID, limit,
	)
}

// PilotBests returns the best entry of each pilot in gameID, best first.
// Ties between a pilot's equal scores go to the earliest game.
func (s *Store) PilotBests(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryScores(
		`SELECT `+scoreColumns+` FROM scores s
		 WHERE game_id = ? AND id = (
			SELECT id FROM scores b
			WHERE b.game_id = s.game_id AND b.player_name = s.player_name
			ORDER BY score DESC, id ASC LIMIT 1
		 )
		 ORDER BY score DESC, id ASC LIMIT ?`,
		gameID, limit,
	)
}

func (s *Store) queryScores(query string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.PlayerName, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// parseTimestamp accepts the driver's time.Time as well as SQLite's text
// datetimes.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{time.DateTime, time.RFC3339} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}

// HighScore returns the best score of gameID, or 0 when none exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM scores WHERE game_id = ?", gameID).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(score.Int64), nil
}

// ClearScores deletes every score of gameID.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameStats aggregates the scores of one mode.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	Players    int
	LastPlayed time.Time
}

const statsColumns = `game_id, COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
	COALESCE(SUM(score), 0), COUNT(DISTINCT player_name), MAX(created_at)`

func scanStats(row interface{ Scan(...any) error }) (*GameStats, error) {
	var gs GameStats
	var lastPlayed any
	err := row.Scan(&gs.GameID, &gs.GamesCount, &gs.HighScore, &gs.AvgScore, &gs.TotalScore, &gs.Players, &lastPlayed)
	if err != nil {
		return nil, err
	}
	gs.LastPlayed = parseTimestamp(lastPlayed)
	return &gs, nil
}

// GameStats returns the aggregates of gameID. A mode without scores has
// zero stats.
func (s *Store) GameStats(gameID string) (*GameStats, error) {
	stats, err := scanStats(s.db.QueryRow(
		`SELECT `+statsColumns+` FROM scores WHERE game_id = ? GROUP BY game_id`,
		gameID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return &GameStats{GameID: gameID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	return stats, nil
}

// AllGameStats returns the aggregates of every mode that has scores.
func (s *Store) AllGameStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(`SELECT ` + statsColumns + ` FROM scores GROUP BY game_id`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		gs, err := scanStats(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats[gs.GameID] = gs
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}
