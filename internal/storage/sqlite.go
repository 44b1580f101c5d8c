// Package storage provides SQLite-based persistence for the world index and
// the event journal. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
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

// ErrNotFound is returned when a world is not in the index.
var ErrNotFound = errors.New("storage: not found")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// WorldEntry is one indexed world.
type WorldEntry struct {
	Name      string
	Seed      uint64
	Path      string
	Tick      float64
	Actors    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// JournalEntry is one logged message.
type JournalEntry struct {
	ID        int64
	World     string
	Tick      float64
	Message   string
	CreatedAt time.Time
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
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS worlds (
			name TEXT PRIMARY KEY,
			seed TEXT NOT NULL,
			path TEXT NOT NULL,
			tick REAL NOT NULL DEFAULT 0,
			actors INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS journal (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			world TEXT NOT NULL,
			tick REAL NOT NULL,
			message TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_journal_world ON journal(world, id DESC);
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

// UpsertWorld inserts the world or refreshes its entry.
func (s *Store) UpsertWorld(e WorldEntry) error {
	_, err := s.db.Exec(
		`INSERT INTO worlds (name, seed, path, tick, actors)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		   seed = excluded.seed,
		   path = excluded.path,
		   tick = excluded.tick,
		   actors = excluded.actors,
		   updated_at = CURRENT_TIMESTAMP`,
		e.Name, fmt.Sprint(e.Seed), e.Path, e.Tick, e.Actors,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save world: %w", err)
	}
	return nil
}

const worldColumns = `name, seed, path, tick, actors, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanWorld(row scanner) (WorldEntry, error) {
	var e WorldEntry
	var seed string
	var createdAt, updatedAt any
	if err := row.Scan(&e.Name, &seed, &e.Path, &e.Tick, &e.Actors, &createdAt, &updatedAt); err != nil {
		return e, err
	}
	if _, err := fmt.Sscan(seed, &e.Seed); err != nil {
		return e, fmt.Errorf("bad seed %q: %w", seed, err)
	}
	e.CreatedAt = parseTime(createdAt)
	e.UpdatedAt = parseTime(updatedAt)
	return e, nil
}

// Worlds lists indexed worlds, most recently updated first.
func (s *Store) Worlds() ([]WorldEntry, error) {
	rows, err := s.db.Query(
		`SELECT ` + worldColumns + ` FROM worlds ORDER BY updated_at DESC, name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query worlds: %w", err)
	}
	defer rows.Close()

	var entries []WorldEntry
	for rows.Next() {
		e, err := scanWorld(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// World returns one indexed world.
func (s *Store) World(name string) (WorldEntry, error) {
	e, err := scanWorld(s.db.QueryRow(
		`SELECT `+worldColumns+` FROM worlds WHERE name = ?`, name,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return WorldEntry{}, fmt.Errorf("%w: world %q", ErrNotFound, name)
	}
	if err != nil {
		return WorldEntry{}, fmt.Errorf("storage: cannot query world: %w", err)
	}
	return e, nil
}

// DeleteWorld removes the world and its journal.
func (s *Store) DeleteWorld(name string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec("DELETE FROM worlds WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete world: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM journal WHERE world = ?", name); err != nil {
		return fmt.Errorf("storage: cannot delete journal: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: world %q", ErrNotFound, name)
	}
	return nil
}

// AppendJournal records the messages produced at tick.
func (s *Store) AppendJournal(world string, tick float64, messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT INTO journal (world, tick, message) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("storage: cannot prepare journal insert: %w", err)
	}
	defer stmt.Close()

	for _, m := range messages {
		if _, err := stmt.Exec(world, tick, m); err != nil {
			return fmt.Errorf("storage: cannot append journal: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

// Journal returns the latest messages of a world in chronological order.
func (s *Store) Journal(world string, limit int) ([]JournalEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(
		`SELECT id, world, tick, message, created_at FROM (
		   SELECT id, world, tick, message, created_at
		   FROM journal
		   WHERE world = ?
		   ORDER BY id DESC
		   LIMIT ?
		 ) ORDER BY id ASC`,
		world, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query journal: %w", err)
	}
	defer rows.Close()

	var entries []JournalEntry
	for rows.Next() {
		var e JournalEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.World, &e.Tick, &e.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
