package library

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

var (
	// ErrEmptyStorePath indicates a missing grant store path.
	ErrEmptyStorePath = errors.New("grant store: db path cannot be empty")
)

const grantSchema = `
CREATE TABLE IF NOT EXISTS authorization_grant (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	status TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS limited_selection (
	path TEXT PRIMARY KEY,
	added_at TEXT NOT NULL
);
`

// GrantStore persists the authorization grant and the limited-selection set,
// the only state the library keeps across launches.
type GrantStore struct {
	db *sql.DB
}

// NewGrantStore opens (creating if needed) a SQLite-backed grant store.
func NewGrantStore(dbPath string) (*GrantStore, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, ErrEmptyStorePath
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("grant store: create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("grant store: open db: %w", err)
	}

	store := &GrantStore{db: db}
	if err := store.init(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (g *GrantStore) init() error {
	if _, err := g.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("grant store: set busy timeout: %w", err)
	}

	if _, err := g.db.Exec(grantSchema); err != nil {
		return fmt.Errorf("grant store: create schema: %w", err)
	}

	return nil
}

// Close closes the underlying SQLite connection.
func (g *GrantStore) Close() error {
	if g == nil || g.db == nil {
		return nil
	}
	return g.db.Close()
}

// Authorization returns the persisted grant, or AuthNotDetermined when the
// user was never asked.
func (g *GrantStore) Authorization() (Authorization, error) {
	var status string
	err := g.db.QueryRow("SELECT status FROM authorization_grant WHERE id = 1").Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return AuthNotDetermined, nil
	}
	if err != nil {
		return AuthNotDetermined, fmt.Errorf("grant store: read grant: %w", err)
	}
	return ParseAuthorization(status), nil
}

// SetAuthorization records the outcome of an authorization prompt.
func (g *GrantStore) SetAuthorization(a Authorization) error {
	_, err := g.db.Exec(
		`INSERT INTO authorization_grant (id, status, updated_at) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET status = excluded.status, updated_at = excluded.updated_at`,
		a.String(), utcNow(),
	)
	if err != nil {
		return fmt.Errorf("grant store: write grant: %w", err)
	}
	return nil
}

// LimitedSelection returns the persisted limited-access paths in insertion
// order.
func (g *GrantStore) LimitedSelection() ([]string, error) {
	rows, err := g.db.Query("SELECT path FROM limited_selection ORDER BY added_at, path")
	if err != nil {
		return nil, fmt.Errorf("grant store: read selection: %w", err)
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("grant store: scan selection: %w", err)
		}
		paths = append(paths, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("grant store: iterate selection: %w", err)
	}
	return paths, nil
}

// AddToLimitedSelection grants access to additional paths. Already granted
// paths are ignored.
func (g *GrantStore) AddToLimitedSelection(paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	tx, err := g.db.Begin()
	if err != nil {
		return fmt.Errorf("grant store: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := utcNow()
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			continue
		}
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO limited_selection (path, added_at) VALUES (?, ?)", p, now,
		); err != nil {
			return fmt.Errorf("grant store: add selection: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("grant store: commit: %w", err)
	}
	return nil
}

func utcNow() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
