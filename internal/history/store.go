// Package history persists drill sessions and graded answers in a
// local SQLite database so past practice can be reviewed later.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Recorder is the subset of the store the drill session needs.
type Recorder interface {
	StartSession(ctx context.Context, s Session) error
	RecordAnswer(ctx context.Context, a Answer) error
	EndSession(ctx context.Context, id string, endedAt time.Time, answered, correct int) error
}

// Session is one drill run over a vocabulary file.
type Session struct {
	ID        string       `db:"id"`
	File      string       `db:"file"`
	StartedAt time.Time    `db:"started_at"`
	EndedAt   sql.NullTime `db:"ended_at"`
	Answered  int          `db:"answered"`
	Correct   int          `db:"correct"`
}

// Answer is one graded prompt within a session.
type Answer struct {
	SessionID string    `db:"session_id"`
	Word      string    `db:"word"`
	Answer    string    `db:"answer"`
	Correct   bool      `db:"correct"`
	Successes int       `db:"successes"`
	CreatedAt time.Time `db:"created_at"`
}

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id         TEXT PRIMARY KEY,
	file       TEXT NOT NULL,
	started_at TIMESTAMP NOT NULL,
	ended_at   TIMESTAMP,
	answered   INTEGER NOT NULL DEFAULT 0,
	correct    INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS answers (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL REFERENCES sessions(id),
	word       TEXT NOT NULL,
	answer     TEXT NOT NULL,
	correct    BOOLEAN NOT NULL,
	successes  INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_answers_session ON answers(session_id);
`

// Store records sessions and answers in SQLite.
type Store struct {
	db *sqlx.DB
}

// Open connects to the database at path, creating the file and the
// schema when missing.
func Open(path string) (*Store, error) {
	if err := EnsureDir(path); err != nil {
		return nil, err
	}
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA foreign_keys=ON;",
		"PRAGMA synchronous=NORMAL;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("configure history db: %w", err)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("bootstrap history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// StartSession inserts a new session row.
func (s *Store) StartSession(ctx context.Context, sess Session) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, file, started_at) VALUES (?, ?, ?)`,
		sess.ID, sess.File, sess.StartedAt)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	return nil
}

// RecordAnswer appends one graded answer to the session.
func (s *Store) RecordAnswer(ctx context.Context, a Answer) error {
	_, err := s.db.NamedExecContext(ctx,
		`INSERT INTO answers (session_id, word, answer, correct, successes, created_at)
		 VALUES (:session_id, :word, :answer, :correct, :successes, :created_at)`, a)
	if err != nil {
		return fmt.Errorf("record answer: %w", err)
	}
	return nil
}

// EndSession stamps the end time and the final tallies.
func (s *Store) EndSession(ctx context.Context, id string, endedAt time.Time, answered, correct int) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET ended_at = ?, answered = ?, correct = ? WHERE id = ?`,
		endedAt, answered, correct, id)
	if err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	return nil
}

// RecentSessions returns up to limit sessions, newest first.
func (s *Store) RecentSessions(ctx context.Context, limit int) ([]Session, error) {
	var sessions []Session
	err := s.db.SelectContext(ctx, &sessions,
		`SELECT id, file, started_at, ended_at, answered, correct
		 FROM sessions ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent sessions: %w", err)
	}
	return sessions, nil
}

// DefaultPath resolves the history database location: the
// WORDRILL_HISTORY environment variable wins, then the XDG data
// directory, then ~/.local/share.
func DefaultPath() (string, error) {
	if p := os.Getenv("WORDRILL_HISTORY"); p != "" {
		return p, nil
	}
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "wordrill", "history.db"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "wordrill", "history.db"), nil
}

// EnsureDir creates the parent directory of path if needed.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}
	return nil
}
