package store

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanrhee/snowboard-db-sub000/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleBoard(key string) model.Board {
	now := time.Unix(1700000000, 0)
	return model.Board{
		BoardKey:  key,
		Brand:     "Burton",
		Model:     "Custom Camber",
		Gender:    model.GenderUnisex,
		Profile:   "camber",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestUpsertThenGetBoardRoundTrip(t *testing.T) {
	s := openTestStore(t)
	b := sampleBoard("burton|custom camber|unisex")
	require.NoError(t, s.UpsertBoard(b))

	got, ok, err := s.GetBoard(b.BoardKey)
	require.NoError(t, err)
	require.True(t, ok)
	if diff := cmp.Diff(b, got); diff != "" {
		t.Errorf("round-tripped board differs from what was upserted:\n%s", diff)
	}
}

func TestUpsertBoardOverwritesExisting(t *testing.T) {
	s := openTestStore(t)
	b := sampleBoard("burton|custom camber|unisex")
	require.NoError(t, s.UpsertBoard(b))

	b.Profile = "hybrid_camber"
	require.NoError(t, s.UpsertBoard(b))

	got, ok, err := s.GetBoard(b.BoardKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "hybrid_camber", got.Profile)
}

func TestGetBoardMissingReturnsFalse(t *testing.T) {
	s := openTestStore(t)
	_, ok, err := s.GetBoard("missing|key|unisex")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPruneOrphanBoardsKeepsOnlyBoardsWithListings(t *testing.T) {
	s := openTestStore(t)
	keep := sampleBoard("burton|custom camber|unisex")
	orphan := sampleBoard("burton|orphan|unisex")
	require.NoError(t, s.UpsertBoard(keep))
	require.NoError(t, s.UpsertBoard(orphan))

	require.NoError(t, s.InsertSearchRun(SearchRun{ID: "run1", Timestamp: time.Now(), BoardCount: 2}))
	require.NoError(t, s.InsertListings([]model.Listing{{
		ID: "listing1", BoardKey: keep.BoardKey, RunID: "run1",
		Retailer: "tactics", URL: "https://example.com/a",
		Availability: model.AvailabilityInStock, Condition: model.ConditionNew, Gender: model.GenderUnisex,
		ScrapedAt: time.Now(),
	}}))

	n, err := s.PruneOrphanBoards()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, ok, _ := s.GetBoard(keep.BoardKey)
	assert.True(t, ok)
	_, ok, _ = s.GetBoard(orphan.BoardKey)
	assert.False(t, ok)
}

func TestListBoardsReturnsAll(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.UpsertBoard(sampleBoard("a|a|unisex")))
	require.NoError(t, s.UpsertBoard(sampleBoard("b|b|unisex")))

	boards, err := s.ListBoards()
	require.NoError(t, err)
	assert.Len(t, boards, 2)
}
