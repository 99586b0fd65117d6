package pipeline

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ryanrhee/snowboard-db-sub000/internal/logging"
	"github.com/ryanrhee/snowboard-db-sub000/internal/model"
	"github.com/ryanrhee/snowboard-db-sub000/internal/scrape"
)

// runScrapers fans out every selected scraper in parallel, bounded by
// limit (spec §4.8 step 2, §5: "N scrapers execute concurrently").
// A scraper failure never aborts the group; it is recorded in errs.
func runScrapers(ctx context.Context, scrapers []scrape.Scraper, scope scrape.Scope, limit int) ([]model.ScrapedBoard, []ScraperError) {
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	var mu sync.Mutex
	var boards []model.ScrapedBoard
	var errs []ScraperError

	for _, s := range scrapers {
		s := s
		g.Go(func() error {
			result, err := s.Scrape(gctx, scope)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logging.Pipeline("scraper %s failed: %v", s.Name(), err)
				errs = append(errs, ScraperError{Scraper: s.Name(), Reason: err.Error()})
				return nil
			}
			boards = append(boards, result...)
			return nil
		})
	}

	// errgroup.Go's error is always nil above (failures are recorded,
	// not propagated), so Wait only ever returns ctx cancellation.
	_ = g.Wait()

	return boards, errs
}
