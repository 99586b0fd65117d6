package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledByDefault(t *testing.T) {
	mu.Lock()
	initialized = false
	debugMode = false
	mu.Unlock()

	assert.False(t, IsCategoryEnabled(CategoryScrape))
	l := Get(CategoryScrape)
	assert.Nil(t, l.sugar)
	l.Info("should not panic") // no-op
}

func TestInitializeWritesPerCategoryFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Initialize(dir, true, nil))
	defer CloseAll()

	Get(CategoryScrape).Info("scrape started")
	Get(CategoryCoalesce).Debug("coalescing %d boards", 3)
	CloseAll()

	data, err := os.ReadFile(filepath.Join(dir, "logs", "scrape.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "scrape started")
}

func TestCategoryFilter(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Initialize(dir, true, map[Category]bool{CategoryScrape: false}))
	defer CloseAll()

	assert.False(t, IsCategoryEnabled(CategoryScrape))
	assert.True(t, IsCategoryEnabled(CategoryCoalesce))
}

func TestTimerStop(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Initialize(dir, true, nil))
	defer CloseAll()

	timer := StartTimer(CategoryPipeline, "test-op")
	elapsed := timer.Stop()
	assert.GreaterOrEqual(t, elapsed.Nanoseconds(), int64(0))
}
