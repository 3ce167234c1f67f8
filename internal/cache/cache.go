// Package cache memoizes Check results by source text, for the CLI only
// (the core Check entry point is pure and never touches this package).
// Grounded on the sqlite-backed store in northstar.Store: open-or-create,
// initSchema, a mutex-guarded *sql.DB.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

// Cache stores rendered check output keyed by the sha256 of the source
// text plus the locale and display flags it was rendered with.
type Cache struct {
	db   *sql.DB
	path string
	mu   sync.RWMutex
}

// Open creates or opens the cache database at path, creating parent
// directories as needed.
func Open(path string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}
	c := &Cache{db: db, path: path}
	if err := c.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing cache schema: %w", err)
	}
	return c, nil
}

// Close closes the underlying database connection.
func (c *Cache) Close() error { return c.db.Close() }

// Path returns the cache file's path.
func (c *Cache) Path() string { return c.path }

func (c *Cache) initSchema() error {
	_, err := c.db.Exec(`
	CREATE TABLE IF NOT EXISTS results (
		key        TEXT PRIMARY KEY,
		output     TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`)
	return err
}

// Key derives the cache key for a given source text and rendering mode.
func Key(source, locale, mode string) string {
	h := sha256.Sum256([]byte(locale + "\x00" + mode + "\x00" + source))
	return hex.EncodeToString(h[:])
}

// Get returns the cached output for key, if present.
func (c *Cache) Get(key string) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var output string
	err := c.db.QueryRow(`SELECT output FROM results WHERE key = ?`, key).Scan(&output)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading cache entry: %w", err)
	}
	return output, true, nil
}

// Put stores output under key, overwriting any existing entry.
func (c *Cache) Put(key, output string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := c.db.Exec(
		`INSERT INTO results(key, output) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET output = excluded.output, created_at = CURRENT_TIMESTAMP`,
		key, output)
	if err != nil {
		return fmt.Errorf("writing cache entry: %w", err)
	}
	return nil
}
