// Package storage keeps a log of finished quiz attempts in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The log is write-only during play. Session progress is never restored from
// it; it only feeds the stats command.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for the attempt log.
type Store struct {
	db *sql.DB
}

// Attempt is one resolved quiz: the level solved, how many moves it took and
// whether the follow-up question was answered correctly.
type Attempt struct {
	ID        int64
	SessionID string
	Level     int // 0-based level index
	Gate      string
	Moves     int
	Correct   bool
	CreatedAt time.Time
}

// LevelStats aggregates the attempts of one level.
type LevelStats struct {
	Level      int
	Gate       string
	Attempts   int
	Passes     int
	BestMoves  int // fewest moves among passed attempts, 0 if none
	LastPlayed time.Time
}

// PassRate returns passes / attempts, 0 when there are no attempts.
func (s LevelStats) PassRate() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Passes) / float64(s.Attempts)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("storage: empty database path")
	}

	// Expand ~ to home directory
	if dbPath[0] == '~' {
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

	// Test connection
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
		CREATE TABLE IF NOT EXISTS attempts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			level INTEGER NOT NULL,
			gate TEXT NOT NULL,
			moves INTEGER NOT NULL,
			correct INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_attempts_level ON attempts(level);
		CREATE INDEX IF NOT EXISTS idx_attempts_session ON attempts(session_id);
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

// SaveAttempt records a resolved quiz. Returns the ID of the inserted record.
func (s *Store) SaveAttempt(a Attempt) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO attempts (session_id, level, gate, moves, correct) VALUES (?, ?, ?, ?, ?)",
		a.SessionID, a.Level, a.Gate, a.Moves, a.Correct,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save attempt: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentAttempts returns the newest attempts first.
func (s *Store) RecentAttempts(limit int) ([]Attempt, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, level, gate, moves, correct, created_at
		 FROM attempts
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query attempts: %w", err)
	}
	return scanAttempts(rows)
}

// SessionAttempts returns every attempt of one session in play order.
func (s *Store) SessionAttempts(sessionID string) ([]Attempt, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, level, gate, moves, correct, created_at
		 FROM attempts
		 WHERE session_id = ?
		 ORDER BY id`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session attempts: %w", err)
	}
	return scanAttempts(rows)
}

// LevelAttempts returns the most recent attempts for one level, newest first.
func (s *Store) LevelAttempts(level, limit int) ([]Attempt, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, level, gate, moves, correct, created_at
		 FROM attempts
		 WHERE level = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level attempts: %w", err)
	}
	return scanAttempts(rows)
}

func scanAttempts(rows *sql.Rows) ([]Attempt, error) {
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var a Attempt
		var createdAt any
		if err := rows.Scan(&a.ID, &a.SessionID, &a.Level, &a.Gate, &a.Moves, &a.Correct, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		a.CreatedAt = parseTime(createdAt)
		out = append(out, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// BestMoves returns the fewest moves among passed attempts of a level.
// ok is false when the level has never been passed.
func (s *Store) BestMoves(level int) (moves int, ok bool, err error) {
	var best sql.NullInt64
	err = s.db.QueryRow(
		"SELECT MIN(moves) FROM attempts WHERE level = ? AND correct = 1",
		level,
	).Scan(&best)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best moves: %w", err)
	}

	if !best.Valid {
		return 0, false, nil
	}
	return int(best.Int64), true, nil
}

// AllLevelStats returns per-level aggregates ordered by level, covering only
// levels with at least one attempt.
func (s *Store) AllLevelStats() ([]LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level, MAX(gate), COUNT(*), COALESCE(SUM(correct), 0),
		        COALESCE(MIN(CASE WHEN correct = 1 THEN moves END), 0), MAX(created_at)
		 FROM attempts
		 GROUP BY level
		 ORDER BY level`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	defer rows.Close()

	var out []LevelStats
	for rows.Next() {
		var st LevelStats
		var lastPlayed any
		if err := rows.Scan(&st.Level, &st.Gate, &st.Attempts, &st.Passes, &st.BestMoves, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		out = append(out, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// ClearAttempts deletes the whole log.
func (s *Store) ClearAttempts() error {
	if _, err := s.db.Exec("DELETE FROM attempts"); err != nil {
		return fmt.Errorf("storage: cannot clear attempts: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string, depending on how the driver
// returns DATETIME columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
