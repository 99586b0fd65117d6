package store

import (
	"fmt"
	"strings"
	"time"
)

// SearchRun is one row of the search_runs table (spec §6).
type SearchRun struct {
	ID               string
	Timestamp        time.Time
	ConstraintsJSON  string
	BoardCount       int
	RetailersQueried []string
	DurationMs       int64
}

// InsertSearchRun records one completed (or attempted) pipeline run.
func (s *Store) InsertSearchRun(run SearchRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		`INSERT INTO search_runs (id, timestamp, constraints_json, board_count, retailers_queried, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.Timestamp.UnixMilli(), run.ConstraintsJSON, run.BoardCount,
		strings.Join(run.RetailersQueried, ","), run.DurationMs,
	)
	if err != nil {
		return fmt.Errorf("insert search run %s: %w", run.ID, err)
	}
	return nil
}
