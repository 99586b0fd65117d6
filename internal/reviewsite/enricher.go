package reviewsite

import (
	"context"
	"strconv"
	"time"

	"github.com/ryanrhee/snowboard-db-sub000/internal/logging"
	"github.com/ryanrhee/snowboard-db-sub000/internal/model"
)

// Target is one {brand, model} pair the pipeline wants enriched with
// review-site specs.
type Target struct {
	Brand string
	Model string
}

// Enricher fetches one review site's sitemap once per run, resolves
// each target against it, and scrapes whatever pages match closely
// enough (spec §4.7). It is not registered in the retailer scraper set
// since it runs from the already-identified board pool rather than a
// blind crawl.
type Enricher struct {
	SiteName   string
	SitemapURL string
	Fetcher    Fetcher
	Sitemaps   SitemapCache
	URLMap     URLMapCache
	Delay      time.Duration
}

// Run resolves and scrapes review specs for every target, skipping
// any target with no confident sitemap match. A fetch or parse
// failure on one target is logged and skipped rather than aborting
// the whole run.
func (e *Enricher) Run(ctx context.Context, targets []Target) ([]model.ScrapedBoard, error) {
	entries, err := getSitemapIndex(ctx, e.Fetcher, e.Sitemaps, e.SitemapURL)
	if err != nil {
		return nil, err
	}

	var out []model.ScrapedBoard
	for i, t := range targets {
		if ctx.Err() != nil {
			return out, ctx.Err()
		}

		url, ok := resolveReviewUrl(entries, e.URLMap, t.Brand, t.Model)
		if !ok {
			continue
		}

		specs, err := scrapeReviewSpecs(ctx, e.Fetcher, url)
		if err != nil {
			logging.ReviewSite("failed to scrape %s: %v", url, err)
			continue
		}
		if specs == nil {
			continue
		}

		out = append(out, toScrapedBoard(e.SiteName, t, url, specs))

		if e.Delay > 0 && i < len(targets)-1 {
			select {
			case <-time.After(e.Delay):
			case <-ctx.Done():
				return out, ctx.Err()
			}
		}
	}

	logging.ReviewSite("%s enriched %d of %d targets", e.SiteName, len(out), len(targets))
	return out, nil
}

func toScrapedBoard(siteName string, t Target, url string, specs *ReviewSpecs) model.ScrapedBoard {
	return model.ScrapedBoard{
		Source:       "review-site:" + siteName,
		BrandRaw:     t.Brand,
		Model:        t.Model,
		RawModel:     t.Model,
		Flex:         flexToString(specs.Flex),
		Profile:      specs.Profile,
		Shape:        specs.Shape,
		Category:     specs.Category,
		AbilityLevel: specs.AbilityLevel,
		MSRPUsd:      specs.MSRPUsd,
		SourceURL:    url,
		Extras:       specs.Extras,
	}
}

func flexToString(flex *int) string {
	if flex == nil {
		return ""
	}
	return strconv.Itoa(*flex)
}
