package pipeline

import (
	"context"

	"github.com/ryanrhee/snowboard-db-sub000/internal/boardid"
	"github.com/ryanrhee/snowboard-db-sub000/internal/coalesce"
	"github.com/ryanrhee/snowboard-db-sub000/internal/logging"
	"github.com/ryanrhee/snowboard-db-sub000/internal/model"
	"github.com/ryanrhee/snowboard-db-sub000/internal/reviewsite"
	"github.com/ryanrhee/snowboard-db-sub000/internal/scrape"
)

// runScrape executes the full pipeline (spec §4.8 steps 1-8).
func (o *Orchestrator) runScrape(ctx context.Context, scope scrape.Scope) (*Result, error) {
	start := o.clock()
	runID := newRunID()

	// Step 1: select the scraper set.
	selected := o.Scrapers.Select(scope)

	// Step 2: fan out.
	scraped, scraperErrs := runScrapers(ctx, selected, scope, o.MaxConcurrentRetailers)

	// Step 3: demo fallback if no retailer listings were produced and
	// at least one scraper failed.
	if len(scraperErrs) > 0 && !hasRetailerListing(scraped) {
		logging.Pipeline("no retailer listings produced, substituting demo seed set")
		scraped = append(scraped, scrape.DemoSeedBoards()...)
		scraperErrs = append(scraperErrs, ScraperError{Scraper: "system", Reason: "no retailer listings produced; using demo seed set"})
	}

	// Step 4: identify boards (the per-record brand/model of Coalescer
	// Phase A, via boardid; the Phase B profile-variant split is not
	// applied, so variants of one model share a target) to build the
	// unique {brand, model} target set for the review-site enricher.
	targets := uniqueReviewTargets(scraped)

	// Step 5: build and run the review-site enricher.
	if o.Review != nil && len(targets) > 0 {
		enriched, err := o.Review.Run(ctx, targets)
		if err != nil {
			logging.Pipeline("review-site enrichment failed: %v", err)
			scraperErrs = append(scraperErrs, ScraperError{Scraper: "review-site:" + o.Review.SiteName, Reason: err.Error()})
		} else {
			scraped = append(scraped, enriched...)
		}
	}

	// Step 6: coalesce (Phases C+D+E).
	now := o.clock()
	coalesced := coalesce.Coalesce(scraped, o.Rates, runID, now)

	// Step 7: resolve specs, compute beginnerScore, backfill discount.
	boards, listings := resolveAndBackfill(coalesced)

	// Step 8: persist (persist documents which writes are transactional).
	retailers := retailerNames(selected)
	if err := o.persist(runID, start, boards, listings, coalesced.SpecSources, retailers); err != nil {
		return nil, err
	}

	withListings, err := boardsWithListings(o.Store, boards)
	if err != nil {
		return nil, err
	}

	return &Result{RunID: runID, Boards: withListings, Errors: scraperErrs}, nil
}

func hasRetailerListing(scraped []model.ScrapedBoard) bool {
	for _, sb := range scraped {
		if len(sb.Listings) > 0 {
			return true
		}
	}
	return false
}

// uniqueReviewTargets derives the deduplicated {brand, model} set the
// review-site enricher should resolve against (spec §4.8 step 4-5).
func uniqueReviewTargets(scraped []model.ScrapedBoard) []reviewsite.Target {
	seen := map[string]bool{}
	var out []reviewsite.Target
	for _, sb := range scraped {
		id := boardid.New(sb)
		brandName, modelName := id.Brand(), id.Model()
		key := brandName + "|" + modelName
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, reviewsite.Target{Brand: brandName, Model: modelName})
	}
	return out
}

func retailerNames(selected []scrape.Scraper) []string {
	var out []string
	for _, s := range selected {
		if s.SourceType() == "retailer" {
			out = append(out, s.Name())
		}
	}
	return out
}
