package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInsertSearchRun(t *testing.T) {
	s := openTestStore(t)
	run := SearchRun{
		ID:               "run1",
		Timestamp:        time.Unix(1700000000, 0),
		ConstraintsJSON:  `{"region":"US"}`,
		BoardCount:       12,
		RetailersQueried: []string{"tactics", "burton"},
		DurationMs:       4200,
	}
	require.NoError(t, s.InsertSearchRun(run))

	var boardCount int
	var retailers string
	row := s.db.QueryRow(`SELECT board_count, retailers_queried FROM search_runs WHERE id = ?`, run.ID)
	require.NoError(t, row.Scan(&boardCount, &retailers))
	require.Equal(t, 12, boardCount)
	require.Equal(t, "tactics,burton", retailers)
}

func TestInsertSearchRunDuplicateIDFails(t *testing.T) {
	s := openTestStore(t)
	run := SearchRun{ID: "run1", Timestamp: time.Now(), BoardCount: 1}
	require.NoError(t, s.InsertSearchRun(run))
	require.Error(t, s.InsertSearchRun(run))
}
