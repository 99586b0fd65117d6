package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/ryanrhee/snowboard-db-sub000/internal/coalesce"
	"github.com/ryanrhee/snowboard-db-sub000/internal/model"
	"github.com/ryanrhee/snowboard-db-sub000/internal/reviewsite"
	"github.com/ryanrhee/snowboard-db-sub000/internal/store"
)

// runReviewSites loads boards already in the store, builds a
// review-site scraper from their identities, runs it, writes
// provenance, re-resolves, and persists (spec §4.8: "review-sites"
// mode).
func (o *Orchestrator) runReviewSites(ctx context.Context) (*Result, error) {
	start := o.clock()
	runID := newRunID()
	now := o.clock()

	boards, err := o.Store.ListBoards()
	if err != nil {
		return nil, fmt.Errorf("load boards: %w", err)
	}

	if o.Review == nil || len(boards) == 0 {
		withListings, err := boardsWithListings(o.Store, boards)
		if err != nil {
			return nil, err
		}
		return &Result{RunID: runID, Boards: withListings}, nil
	}

	boardKeyByIdentity := make(map[string]string, len(boards))
	targets := make([]reviewsite.Target, 0, len(boards))
	for _, b := range boards {
		boardKeyByIdentity[identityKey(b.Brand, b.Model)] = b.BoardKey
		targets = append(targets, reviewsite.Target{Brand: b.Brand, Model: b.Model})
	}

	var errs []ScraperError
	enriched, err := o.Review.Run(ctx, targets)
	if err != nil {
		errs = append(errs, ScraperError{Scraper: "review-site:" + o.Review.SiteName, Reason: err.Error()})
		enriched = nil
	}

	var rows []model.SpecSourceRow
	for _, sb := range enriched {
		boardKey, ok := boardKeyByIdentity[identityKey(sb.BrandRaw, sb.Model)]
		if !ok {
			continue
		}
		rows = append(rows, coalesce.SpecSourceRows(boardKey, sb, now)...)
	}

	if err := o.Store.WriteSpecSources(rows); err != nil {
		return nil, fmt.Errorf("persist spec sources: %w", err)
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
	return &Result{RunID: runID, Boards: withListings, Errors: errs}, nil
}

func identityKey(brandName, modelName string) string {
	return strings.ToLower(strings.TrimSpace(brandName)) + "|" + strings.ToLower(strings.TrimSpace(modelName))
}
