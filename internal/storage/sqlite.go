// Package storage provides SQLite-based persistence for the session log.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/blockfall/internal/history"
)

// Store manages the SQLite database connection for the session log.
type Store struct {
	db *sql.DB
}

// SessionEntry represents one finished game.
type SessionEntry struct {
	ID        int64
	SessionID string
	Engine    string
	StartedAt time.Time
	EndedAt   time.Time
	Updates   int
}

// Duration returns how long the game lasted.
func (e SessionEntry) Duration() time.Duration {
	return e.EndedAt.Sub(e.StartedAt)
}

// EngineStats contains aggregated statistics for an engine.
type EngineStats struct {
	Engine      string
	Games       int
	MostUpdates int
	TotalTime   time.Duration
	LastPlayed  time.Time
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

	// Create parent directories
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
// Times are stored as Unix milliseconds.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			engine TEXT NOT NULL,
			started_at INTEGER NOT NULL,
			ended_at INTEGER NOT NULL,
			updates INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_engine ON sessions(engine);
		CREATE INDEX IF NOT EXISTS idx_sessions_ended ON sessions(ended_at DESC);
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

// SaveSession records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(e SessionEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions (session_id, engine, started_at, ended_at, updates)
		 VALUES (?, ?, ?, ?, ?)`,
		e.SessionID, e.Engine, e.StartedAt.UnixMilli(), e.EndedAt.UnixMilli(), e.Updates,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SaveRecord implements history.Saver.
func (s *Store) SaveRecord(r history.Record) error {
	_, err := s.SaveSession(SessionEntry{
		SessionID: r.ID,
		Engine:    r.Engine,
		StartedAt: r.StartedAt,
		EndedAt:   r.EndedAt,
		Updates:   r.Updates,
	})
	return err
}

// Ensure Store implements history.Saver
var _ history.Saver = (*Store)(nil)

// RecentSessions retrieves the most recently finished games.
// An empty engine matches every engine.
func (s *Store) RecentSessions(engine string, limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, engine, started_at, ended_at, updates
		 FROM sessions
		 WHERE ? = '' OR engine = ?
		 ORDER BY ended_at DESC, id DESC
		 LIMIT ?`,
		engine, engine, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		e, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// SessionByID retrieves a game by its session ID.
// Returns nil if it does not exist.
func (s *Store) SessionByID(sessionID string) (*SessionEntry, error) {
	row := s.db.QueryRow(
		`SELECT id, session_id, engine, started_at, ended_at, updates
		 FROM sessions
		 WHERE session_id = ?`,
		sessionID,
	)

	e, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Stats retrieves aggregated statistics for one engine.
func (s *Store) Stats(engine string) (*EngineStats, error) {
	stats := &EngineStats{Engine: engine}

	var totalMs, lastMs int64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(updates), 0),
		        COALESCE(SUM(ended_at - started_at), 0), COALESCE(MAX(ended_at), 0)
		 FROM sessions WHERE engine = ?`,
		engine,
	).Scan(&stats.Games, &stats.MostUpdates, &totalMs, &lastMs)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get engine stats: %w", err)
	}

	stats.TotalTime = time.Duration(totalMs) * time.Millisecond
	if stats.Games > 0 {
		stats.LastPlayed = time.UnixMilli(lastMs)
	}
	return stats, nil
}

// ClearSessions deletes every game played on the engine.
func (s *Store) ClearSessions(engine string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE engine = ?", engine)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (SessionEntry, error) {
	var e SessionEntry
	var startedMs, endedMs int64
	if err := row.Scan(&e.ID, &e.SessionID, &e.Engine, &startedMs, &endedMs, &e.Updates); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return e, err
		}
		return e, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	e.StartedAt = time.UnixMilli(startedMs)
	e.EndedAt = time.UnixMilli(endedMs)
	return e, nil
}
