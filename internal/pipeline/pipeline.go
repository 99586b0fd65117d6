// Package pipeline orchestrates the full reconciliation run: scraper
// fan-out, demo-fallback substitution, board coalescence, review-site
// enrichment, spec resolution, and persistence (spec §4.8).
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ryanrhee/snowboard-db-sub000/internal/logging"
	"github.com/ryanrhee/snowboard-db-sub000/internal/model"
	"github.com/ryanrhee/snowboard-db-sub000/internal/reviewsite"
	"github.com/ryanrhee/snowboard-db-sub000/internal/scrape"
	"github.com/ryanrhee/snowboard-db-sub000/internal/store"
)

// Scope selects what one orchestrator run does: which scrapers to run
// (embedded scrape.Scope) and which mode to run them in (spec §4.8).
type Scope struct {
	scrape.Scope
	From string // "scrape" (default), "review-sites", "resolve"
}

// ScraperError records one scraper's failure without aborting the run
// (spec §4.8 step 2, §7).
type ScraperError struct {
	Scraper string
	Reason  string
}

// Result is the reply shape returned by every orchestrator mode and
// serialized verbatim by the debug HTTP surface (spec §6).
type Result struct {
	RunID  string
	Boards []model.BoardWithListings
	Errors []ScraperError
}

// Orchestrator wires the registry, review-site enricher, and store
// together into the full pipeline. Every dependency is passed in
// explicitly (spec §9: "global state... Model them as explicit
// handles passed to components").
type Orchestrator struct {
	Store    *store.Store
	Cache    *store.CacheDB
	Scrapers *scrape.Registry
	Review   *reviewsite.Enricher

	Rates                  map[string]float64
	MaxConcurrentRetailers int

	// now, when set, overrides time.Now for deterministic tests.
	now func() time.Time
}

func (o *Orchestrator) clock() time.Time {
	if o.now != nil {
		return o.now()
	}
	return time.Now()
}

// Run dispatches to the mode named by scope.From, defaulting to the
// full scrape pipeline (spec §4.8).
func (o *Orchestrator) Run(ctx context.Context, scope Scope) (*Result, error) {
	mode := scope.From
	if mode == "" {
		mode = "scrape"
	}

	timer := logging.StartTimer(logging.CategoryPipeline, "run:"+mode)
	defer timer.Stop()

	switch mode {
	case "resolve":
		return o.runResolve(ctx)
	case "review-sites":
		return o.runReviewSites(ctx)
	case "scrape":
		return o.runScrape(ctx, scope.Scope)
	default:
		return nil, fmt.Errorf("pipeline: unknown mode %q", mode)
	}
}

func newRunID() string {
	return uuid.New().String()
}

func boardsWithListings(s *store.Store, boards []model.Board) ([]model.BoardWithListings, error) {
	out := make([]model.BoardWithListings, 0, len(boards))
	for _, b := range boards {
		listings, err := s.ListListingsForBoard(b.BoardKey)
		if err != nil {
			return nil, fmt.Errorf("load listings for %s: %w", b.BoardKey, err)
		}
		out = append(out, model.BoardWithListings{Board: b, Listings: listings})
	}
	return out, nil
}
