package pipeline

import (
	"fmt"
	"time"

	"github.com/ryanrhee/snowboard-db-sub000/internal/logging"
	"github.com/ryanrhee/snowboard-db-sub000/internal/model"
	"github.com/ryanrhee/snowboard-db-sub000/internal/store"
)

// persist writes one run's output in order: the search_runs row,
// spec_sources (one transaction), boards (one upsert per board, each
// committed on its own), listings (one transaction), then prunes orphan
// boards and expired HTTP cache rows (spec §4.8 step 8). The writes do
// not share a transaction, so an error part-way leaves the earlier
// writes in place.
func (o *Orchestrator) persist(runID string, start time.Time, boards []model.Board, listings []model.Listing, specSources []model.SpecSourceRow, retailers []string) error {
	run := store.SearchRun{
		ID:               runID,
		Timestamp:        start,
		BoardCount:       len(boards),
		RetailersQueried: retailers,
		DurationMs:       o.clock().Sub(start).Milliseconds(),
	}
	if err := o.Store.InsertSearchRun(run); err != nil {
		return fmt.Errorf("persist run: %w", err)
	}

	if err := o.Store.WriteSpecSources(specSources); err != nil {
		return fmt.Errorf("persist spec sources: %w", err)
	}

	for _, b := range boards {
		if err := o.Store.UpsertBoard(b); err != nil {
			return fmt.Errorf("persist board %s: %w", b.BoardKey, err)
		}
	}

	if err := o.Store.InsertListings(listings); err != nil {
		return fmt.Errorf("persist listings: %w", err)
	}

	if _, err := o.Store.PruneOrphanBoards(); err != nil {
		return fmt.Errorf("prune orphan boards: %w", err)
	}

	if o.Cache != nil {
		if _, err := o.Cache.PruneExpiredHTTPCache(o.clock()); err != nil {
			logging.Pipeline("prune expired http cache failed: %v", err)
		}
	}

	return nil
}
