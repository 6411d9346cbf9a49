// Package storage provides SQLite-based persistence for the memory bot.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Outcome grades a remembered move.
type Outcome string

const (
	OutcomeGood Outcome = "good"
	OutcomeBad  Outcome = "bad"
)

// Store manages the SQLite database connection for learned memories.
// It is safe for concurrent use; database/sql pools the connection.
type Store struct {
	db *sql.DB
}

// Memory is one remembered decision: where the head and food were, which
// way the snake went and whether that brought it closer to the food.
type Memory struct {
	ID        int64
	HeadX     int
	HeadY     int
	FoodX     int
	FoodY     int
	DirX      int
	DirY      int
	Outcome   Outcome
	CreatedAt time.Time
}

// Stats summarizes the memory table.
type Stats struct {
	Total       int
	Good        int
	Bad         int
	LastLearned time.Time
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
		CREATE TABLE IF NOT EXISTS memories (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			head_x INTEGER NOT NULL,
			head_y INTEGER NOT NULL,
			food_x INTEGER NOT NULL,
			food_y INTEGER NOT NULL,
			dir_x INTEGER NOT NULL,
			dir_y INTEGER NOT NULL,
			outcome TEXT NOT NULL CHECK (outcome IN ('good', 'bad')),
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (head_x, head_y, food_x, food_y, dir_x, dir_y, outcome)
		);
		CREATE INDEX IF NOT EXISTS idx_memories_head ON memories(head_x, head_y);
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

// SaveMemories inserts the given memories in one transaction, skipping any
// that are already stored. Returns how many rows were new.
func (s *Store) SaveMemories(ctx context.Context, memories []Memory) (int64, error) {
	if len(memories) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO memories
		 (head_x, head_y, food_x, food_y, dir_x, dir_y, outcome)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	var inserted int64
	for _, m := range memories {
		res, err := stmt.ExecContext(ctx, m.HeadX, m.HeadY, m.FoodX, m.FoodY, m.DirX, m.DirY, string(m.Outcome))
		if err != nil {
			return 0, fmt.Errorf("storage: cannot save memory: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("storage: cannot count inserted rows: %w", err)
		}
		inserted += n
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit memories: %w", err)
	}
	return inserted, nil
}

// LoadMemories retrieves every stored memory, oldest first.
func (s *Store) LoadMemories(ctx context.Context) ([]Memory, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, head_x, head_y, food_x, food_y, dir_x, dir_y, outcome, created_at
		 FROM memories
		 ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query memories: %w", err)
	}
	defer rows.Close()

	var memories []Memory
	for rows.Next() {
		var m Memory
		var outcome string
		var createdAt any
		if err := rows.Scan(&m.ID, &m.HeadX, &m.HeadY, &m.FoodX, &m.FoodY, &m.DirX, &m.DirY, &outcome, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		m.Outcome = Outcome(outcome)
		m.CreatedAt = parseTime(createdAt)
		memories = append(memories, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return memories, nil
}

// Stats returns aggregate counts for the memory table.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'good' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = 'bad' THEN 1 ELSE 0 END), 0)
		 FROM memories`,
	).Scan(&stats.Total, &stats.Good, &stats.Bad)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get memory stats: %w", err)
	}

	var lastLearned any
	err = s.db.QueryRowContext(ctx,
		`SELECT created_at FROM memories ORDER BY created_at DESC, id DESC LIMIT 1`,
	).Scan(&lastLearned)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last learned: %w", err)
	}
	if err == nil {
		stats.LastLearned = parseTime(lastLearned)
	}

	return stats, nil
}

// ClearMemories deletes every stored memory and returns how many were removed.
func (s *Store) ClearMemories(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM memories")
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear memories: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count cleared rows: %w", err)
	}
	return n, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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
