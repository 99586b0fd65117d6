// Package store persists the reconciled catalog to two independent
// SQLite databases: a primary DB (boards, listings, spec provenance,
// search runs) and a cache DB (HTTP cache, review-site lookup caches)
// (spec §6, §4.11).
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ryanrhee/snowboard-db-sub000/internal/logging"
)

// Store wraps the primary catalog database.
type Store struct {
	db   *sql.DB
	mu   sync.RWMutex
	path string
}

const primarySchema = `
CREATE TABLE IF NOT EXISTS search_runs (
	id TEXT PRIMARY KEY,
	timestamp INTEGER NOT NULL,
	constraints_json TEXT,
	board_count INTEGER NOT NULL,
	retailers_queried TEXT,
	duration_ms INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS boards (
	board_key TEXT PRIMARY KEY,
	brand TEXT NOT NULL,
	model TEXT NOT NULL,
	gender TEXT NOT NULL,
	flex INTEGER,
	profile TEXT,
	shape TEXT,
	category TEXT,
	ability_level_min TEXT,
	ability_level_max TEXT,
	terrain_piste INTEGER NOT NULL DEFAULT 0,
	terrain_powder INTEGER NOT NULL DEFAULT 0,
	terrain_park INTEGER NOT NULL DEFAULT 0,
	terrain_freeride INTEGER NOT NULL DEFAULT 0,
	terrain_freestyle INTEGER NOT NULL DEFAULT 0,
	msrp_usd REAL,
	manufacturer_url TEXT,
	description TEXT,
	beginner_score REAL,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS listings (
	id TEXT PRIMARY KEY,
	board_key TEXT NOT NULL REFERENCES boards(board_key),
	run_id TEXT NOT NULL REFERENCES search_runs(id),
	retailer TEXT NOT NULL,
	region TEXT,
	url TEXT NOT NULL,
	currency TEXT,
	original_price REAL,
	sale_price REAL,
	sale_price_usd REAL,
	discount_percent INTEGER,
	length_cm REAL,
	width_mm REAL,
	availability TEXT NOT NULL,
	condition TEXT NOT NULL,
	gender TEXT NOT NULL,
	stock_count INTEGER,
	scraped_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_listings_board_key ON listings(board_key);
CREATE INDEX IF NOT EXISTS idx_listings_run_id ON listings(run_id);

CREATE TABLE IF NOT EXISTS spec_sources (
	board_key TEXT NOT NULL,
	field TEXT NOT NULL,
	source TEXT NOT NULL,
	value TEXT NOT NULL,
	source_url TEXT,
	ts INTEGER NOT NULL,
	PRIMARY KEY (board_key, field, source)
);
CREATE INDEX IF NOT EXISTS idx_spec_sources_board_key ON spec_sources(board_key);

CREATE TABLE IF NOT EXISTS spec_cache (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at INTEGER NOT NULL
);
`

// Open opens (creating if necessary) the primary catalog database at
// path with WAL journaling and foreign keys enabled.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open primary db: %w", err)
	}
	if _, err := db.Exec(primarySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create primary schema: %w", err)
	}

	logging.Store("opened primary database at %s", path)
	return &Store{db: db, path: path}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying handle for migration helpers that need it
// alongside a cache DB handle.
func (s *Store) DB() *sql.DB {
	return s.db
}
