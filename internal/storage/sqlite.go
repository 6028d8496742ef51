// Package storage provides SQLite-based persistence for finished game results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Outcome values recorded for a finished game.
const (
	OutcomeWon           = "won"
	OutcomeDeckExhausted = "deck_exhausted"
	OutcomeAbandoned     = "abandoned"
)

// Store manages the SQLite database connection for result history.
type Store struct {
	db *sql.DB
}

// Result represents a single finished game.
type Result struct {
	ID          int64
	DeckID      string
	Outcome     string // One of the Outcome constants
	Opportunity string // Who said yes; empty unless Outcome is OutcomeWon
	Turns       int
	Rejections  int
	Seed        int64
	CreatedAt   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			deck_id TEXT NOT NULL,
			outcome TEXT NOT NULL,
			opportunity TEXT NOT NULL DEFAULT '',
			turns INTEGER NOT NULL DEFAULT 0,
			rejections INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_deck_id ON results(deck_id);
		CREATE INDEX IF NOT EXISTS idx_results_created ON results(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO results (deck_id, outcome, opportunity, turns, rejections, seed)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.DeckID, r.Outcome, r.Opportunity, r.Turns, r.Rejections, r.Seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentResults retrieves the most recent results, newest first.
// An empty deckID matches every deck.
func (s *Store) RecentResults(deckID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, deck_id, outcome, opportunity, turns, rejections, seed, created_at
		 FROM results
		 WHERE ? = '' OR deck_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		deckID, deckID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.DeckID, &r.Outcome, &r.Opportunity,
			&r.Turns, &r.Rejections, &r.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// ClearResults deletes all results for the given deck, or every result when deckID is empty.
func (s *Store) ClearResults(deckID string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE ? = '' OR deck_id = ?", deckID, deckID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics over recorded results.
type Stats struct {
	Games         int
	Wins          int
	Exhausted     int
	Abandoned     int
	AvgTurnsToWin float64
	LastPlayed    time.Time
}

// WinRate returns the fraction of recorded games that were won.
func (st Stats) WinRate() float64 {
	if st.Games == 0 {
		return 0
	}
	return float64(st.Wins) / float64(st.Games)
}

// Stats retrieves aggregated statistics for a deck, or for all decks when deckID is empty.
func (s *Store) Stats(deckID string) (*Stats, error) {
	st := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(AVG(CASE WHEN outcome = ? THEN turns END), 0)
		 FROM results WHERE ? = '' OR deck_id = ?`,
		OutcomeWon, OutcomeDeckExhausted, OutcomeAbandoned, OutcomeWon, deckID, deckID,
	).Scan(&st.Games, &st.Wins, &st.Exhausted, &st.Abandoned, &st.AvgTurnsToWin)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM results WHERE ? = '' OR deck_id = ?
		 ORDER BY created_at DESC, id DESC LIMIT 1`,
		deckID, deckID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		st.LastPlayed = parseTime(lastPlayed)
	}

	return st, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
