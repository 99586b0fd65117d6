package httpcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	cache, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestSetThenGetRoundTrip(t *testing.T) {
	cache := openTestCache(t)
	now := time.Unix(1000, 0)
	require.NoError(t, cache.Set("https://example.com/a", []byte("hello"), now, time.Hour))

	body, ok := cache.Get("https://example.com/a", now.Add(time.Minute))
	require.True(t, ok)
	assert.Equal(t, []byte("hello"), body)
}

func TestGetMissReturnsFalse(t *testing.T) {
	cache := openTestCache(t)
	_, ok := cache.Get("https://example.com/missing", time.Now())
	assert.False(t, ok)
}

func TestExpiredEntryNotReturned(t *testing.T) {
	cache := openTestCache(t)
	now := time.Unix(1000, 0)
	require.NoError(t, cache.Set("https://example.com/a", []byte("hello"), now, time.Minute))

	_, ok := cache.Get("https://example.com/a", now.Add(2*time.Minute))
	assert.False(t, ok)
}

func TestLastWriterWins(t *testing.T) {
	cache := openTestCache(t)
	now := time.Unix(1000, 0)
	require.NoError(t, cache.Set("https://example.com/a", []byte("v1"), now, time.Hour))
	require.NoError(t, cache.Set("https://example.com/a", []byte("v2"), now, time.Hour))

	body, ok := cache.Get("https://example.com/a", now)
	require.True(t, ok)
	assert.Equal(t, []byte("v2"), body)
}

func TestPruneExpiredRemovesOnlyStaleRows(t *testing.T) {
	cache := openTestCache(t)
	now := time.Unix(1000, 0)
	require.NoError(t, cache.Set("https://example.com/stale", []byte("old"), now, time.Minute))
	require.NoError(t, cache.Set("https://example.com/fresh", []byte("new"), now, 24*time.Hour))

	n, err := cache.PruneExpired(now.Add(2 * time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, ok := cache.Get("https://example.com/fresh", now.Add(2*time.Minute))
	assert.True(t, ok)
}

func TestHashURLStable(t *testing.T) {
	assert.Equal(t, HashURL("https://example.com"), HashURL("https://example.com"))
	assert.NotEqual(t, HashURL("https://example.com/a"), HashURL("https://example.com/b"))
}
