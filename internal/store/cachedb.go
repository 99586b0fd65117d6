package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ryanrhee/snowboard-db-sub000/internal/httpcache"
	"github.com/ryanrhee/snowboard-db-sub000/internal/reviewsite"
)

const cacheSchema = `
CREATE TABLE IF NOT EXISTS review_sitemap_cache (
	key TEXT PRIMARY KEY,
	entries_json TEXT NOT NULL,
	fetched_at INTEGER NOT NULL,
	ttl_ms INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS review_url_map (
	key TEXT PRIMARY KEY,
	url TEXT NOT NULL,
	fetched_at INTEGER NOT NULL,
	ttl_ms INTEGER NOT NULL
);
`

// CacheDB wraps the cache SQLite file: the content-addressed HTTP
// cache (httpcache.Cache) plus the two review-site lookup caches
// (spec §6: http_cache, review_sitemap_cache, review_url_map). It
// satisfies reviewsite.SitemapCache and reviewsite.URLMapCache so the
// enricher can be wired directly to persistent storage.
type CacheDB struct {
	HTTP *httpcache.Cache

	db *sql.DB
	mu sync.Mutex
}

// OpenCacheDB opens (creating if necessary) the cache database at
// path, sharing the file with the HTTP cache's own connection.
func OpenCacheDB(path string) (*CacheDB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create cache db directory: %w", err)
		}
	}

	httpCache, err := httpcache.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open http cache: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		httpCache.Close()
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	if _, err := db.Exec(cacheSchema); err != nil {
		httpCache.Close()
		db.Close()
		return nil, fmt.Errorf("create cache schema: %w", err)
	}

	return &CacheDB{HTTP: httpCache, db: db}, nil
}

// Close releases both connections backing the cache database.
func (c *CacheDB) Close() error {
	c.db.Close()
	return c.HTTP.Close()
}

// GetSitemap implements reviewsite.SitemapCache.
func (c *CacheDB) GetSitemap(key string) ([]reviewsite.Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var entriesJSON string
	var fetchedAtMs, ttlMs int64
	row := c.db.QueryRow(`SELECT entries_json, fetched_at, ttl_ms FROM review_sitemap_cache WHERE key = ?`, key)
	if err := row.Scan(&entriesJSON, &fetchedAtMs, &ttlMs); err != nil {
		return nil, false
	}
	if ttlMs != 0 && time.Now().After(time.UnixMilli(fetchedAtMs).Add(time.Duration(ttlMs)*time.Millisecond)) {
		return nil, false
	}

	var entries []reviewsite.Entry
	if err := json.Unmarshal([]byte(entriesJSON), &entries); err != nil {
		return nil, false
	}
	return entries, true
}

// SetSitemap implements reviewsite.SitemapCache.
func (c *CacheDB) SetSitemap(key string, entries []reviewsite.Entry, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := json.Marshal(entries)
	if err != nil {
		return
	}
	c.db.Exec(
		`INSERT OR REPLACE INTO review_sitemap_cache (key, entries_json, fetched_at, ttl_ms) VALUES (?, ?, ?, ?)`,
		key, string(data), time.Now().UnixMilli(), ttl.Milliseconds(),
	)
}

// GetURL implements reviewsite.URLMapCache.
func (c *CacheDB) GetURL(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var url string
	var fetchedAtMs, ttlMs int64
	row := c.db.QueryRow(`SELECT url, fetched_at, ttl_ms FROM review_url_map WHERE key = ?`, key)
	if err := row.Scan(&url, &fetchedAtMs, &ttlMs); err != nil {
		return "", false
	}
	if ttlMs != 0 && time.Now().After(time.UnixMilli(fetchedAtMs).Add(time.Duration(ttlMs)*time.Millisecond)) {
		return "", false
	}
	return url, true
}

// SetURL implements reviewsite.URLMapCache.
func (c *CacheDB) SetURL(key, url string, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.db.Exec(
		`INSERT OR REPLACE INTO review_url_map (key, url, fetched_at, ttl_ms) VALUES (?, ?, ?, ?)`,
		key, url, time.Now().UnixMilli(), ttl.Milliseconds(),
	)
}

// PruneExpiredHTTPCache removes stale http_cache rows (spec §4.8 step 8).
func (c *CacheDB) PruneExpiredHTTPCache(now time.Time) (int64, error) {
	return c.HTTP.PruneExpired(now)
}
