// Package httpcache provides a content-addressed SQLite cache for
// fetched pages, plus the two fetchers (plain HTTP and headless
// browser) that populate it (spec §4.9, §5).
package httpcache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ryanrhee/snowboard-db-sub000/internal/logging"
)

// Cache is a sha256(url)-keyed last-writer-wins page cache backed by
// the cache SQLite database (spec §6: http_cache table).
type Cache struct {
	db *sql.DB
}

// Open opens (creating if necessary) the http_cache table at dbPath.
func Open(dbPath string) (*Cache, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS http_cache (
		url_hash TEXT PRIMARY KEY,
		url TEXT NOT NULL,
		body BLOB NOT NULL,
		fetched_at INTEGER NOT NULL,
		ttl_ms INTEGER NOT NULL
	)`); err != nil {
		db.Close()
		return nil, err
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// HashURL derives the content-address key for a URL.
func HashURL(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached body for url if present and not expired.
func (c *Cache) Get(url string, now time.Time) ([]byte, bool) {
	var body []byte
	var fetchedAtMs, ttlMs int64
	row := c.db.QueryRow(`SELECT body, fetched_at, ttl_ms FROM http_cache WHERE url_hash = ?`, HashURL(url))
	if err := row.Scan(&body, &fetchedAtMs, &ttlMs); err != nil {
		return nil, false
	}
	if ttlMs > 0 {
		expiresAt := time.UnixMilli(fetchedAtMs).Add(time.Duration(ttlMs) * time.Millisecond)
		if now.After(expiresAt) {
			return nil, false
		}
	}
	return body, true
}

// Set writes a cache entry, replacing any existing row for the same
// URL (spec: "last-writer-wins, INSERT OR REPLACE").
func (c *Cache) Set(url string, body []byte, fetchedAt time.Time, ttl time.Duration) error {
	_, err := c.db.Exec(
		`INSERT OR REPLACE INTO http_cache (url_hash, url, body, fetched_at, ttl_ms) VALUES (?, ?, ?, ?, ?)`,
		HashURL(url), url, body, fetchedAt.UnixMilli(), ttl.Milliseconds(),
	)
	return err
}

// PruneExpired deletes rows whose TTL has elapsed as of now, returning
// the number of rows removed.
func (c *Cache) PruneExpired(now time.Time) (int64, error) {
	result, err := c.db.Exec(
		`DELETE FROM http_cache WHERE ttl_ms > 0 AND (fetched_at + ttl_ms) < ?`,
		now.UnixMilli(),
	)
	if err != nil {
		return 0, err
	}
	n, _ := result.RowsAffected()
	if n > 0 {
		logging.Cache("pruned %d expired http cache rows", n)
	}
	return n, nil
}
