package pipeline

import (
	"context"
	"fmt"

	"github.com/ryanrhee/snowboard-db-sub000/internal/model"
	"github.com/ryanrhee/snowboard-db-sub000/internal/resolve"
	"github.com/ryanrhee/snowboard-db-sub000/internal/store"
)

// runResolve skips all scraping and re-runs the resolver over every
// board already in the store (spec §4.8: "resolve" mode).
func (o *Orchestrator) runResolve(ctx context.Context) (*Result, error) {
	start := o.clock()
	runID := newRunID()

	boards, err := o.Store.ListBoards()
	if err != nil {
		return nil, fmt.Errorf("load boards: %w", err)
	}

	resolved, err := o.reresolve(boards)
	if err != nil {
		return nil, err
	}

	run := store.SearchRun{
		ID:         runID,
		Timestamp:  start,
		BoardCount: len(resolved),
		DurationMs: o.clock().Sub(start).Milliseconds(),
	}
	if err := o.Store.InsertSearchRun(run); err != nil {
		return nil, fmt.Errorf("persist run: %w", err)
	}

	withListings, err := boardsWithListings(o.Store, resolved)
	if err != nil {
		return nil, err
	}
	return &Result{RunID: runID, Boards: withListings}, nil
}

// reresolve re-derives every board's resolved specs from its existing
// spec_sources rows and upserts the result, returning the refreshed
// boards.
func (o *Orchestrator) reresolve(boards []model.Board) ([]model.Board, error) {
	out := make([]model.Board, 0, len(boards))
	for _, b := range boards {
		rows, err := o.Store.LoadSpecSources(b.BoardKey)
		if err != nil {
			return nil, fmt.Errorf("load spec sources for %s: %w", b.BoardKey, err)
		}
		r, _ := resolve.ResolveBoard(b, rows)
		if err := o.Store.UpsertBoard(r); err != nil {
			return nil, fmt.Errorf("persist board %s: %w", r.BoardKey, err)
		}
		out = append(out, r)
	}
	return out, nil
}
