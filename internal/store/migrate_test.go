package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateLegacyCacheMovesAndDropsRows(t *testing.T) {
	primaryPath := filepath.Join(t.TempDir(), "primary.db")
	primary, err := Open(primaryPath)
	require.NoError(t, err)
	t.Cleanup(func() { primary.Close() })

	_, err = primary.db.Exec(`CREATE TABLE review_url_map (
		key TEXT PRIMARY KEY, url TEXT NOT NULL, fetched_at INTEGER NOT NULL, ttl_ms INTEGER NOT NULL
	)`)
	require.NoError(t, err)
	_, err = primary.db.Exec(
		`INSERT INTO review_url_map (key, url, fetched_at, ttl_ms) VALUES (?, ?, ?, ?)`,
		"burton|custom", "https://example.com/custom", time.Now().UnixMilli(), 3600000,
	)
	require.NoError(t, err)

	cacheDB := openTestCacheDB(t)

	require.NoError(t, MigrateLegacyCache(primary, cacheDB))

	url, ok := cacheDB.GetURL("burton|custom")
	require.True(t, ok)
	assert.Equal(t, "https://example.com/custom", url)

	exists, err := tableExists(primary.db, "review_url_map")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMigrateLegacyCacheSkipsAbsentTables(t *testing.T) {
	primary := openTestStore(t)
	cacheDB := openTestCacheDB(t)
	require.NoError(t, MigrateLegacyCache(primary, cacheDB))
}
