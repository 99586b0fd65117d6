package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanrhee/snowboard-db-sub000/internal/model"
	"github.com/ryanrhee/snowboard-db-sub000/internal/scrape"
	"github.com/ryanrhee/snowboard-db-sub000/internal/store"
)

func TestHasRetailerListing(t *testing.T) {
	assert.False(t, hasRetailerListing(nil))
	assert.False(t, hasRetailerListing([]model.ScrapedBoard{{Source: "manufacturer:burton"}}))
	assert.True(t, hasRetailerListing([]model.ScrapedBoard{{Listings: []model.ScrapedListing{{URL: "x"}}}}))
}

func TestUniqueReviewTargetsDeduplicates(t *testing.T) {
	scraped := []model.ScrapedBoard{
		{BrandRaw: "Burton", RawModel: "Custom Camber Snowboard"},
		{BrandRaw: "Burton", RawModel: "Custom Camber Snowboard"},
		{BrandRaw: "GNU", RawModel: "Ladies Choice C2X Snowboard"},
	}
	targets := uniqueReviewTargets(scraped)
	assert.Len(t, targets, 2)
}

func TestRetailerNamesFiltersToRetailersOnly(t *testing.T) {
	selected := []scrape.Scraper{
		stubScraper{name: "tactics", sourceType: "retailer"},
		stubScraper{name: "burton", sourceType: "manufacturer"},
	}
	names := retailerNames(selected)
	assert.Equal(t, []string{"tactics"}, names)
}

func openPipelineTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOrchestratorRunScrapePersistsBoardsAndListings(t *testing.T) {
	s := openPipelineTestStore(t)

	fixedTime := time.Unix(1700000000, 0)

	retailer := stubScraper{
		name: "tactics", sourceType: "retailer",
		boards: []model.ScrapedBoard{{
			Source: "retailer:tactics", BrandRaw: "Burton", RawModel: "Custom Camber Snowboard",
			Listings: []model.ScrapedListing{{
				URL: "https://tactics.com/burton-custom", Currency: "USD",
				OriginalPrice: usd(599.95), SalePrice: usd(479.95),
				Availability: "in stock", ScrapedAt: fixedTime,
			}},
		}},
	}
	registry := scrape.NewRegistry(retailer)

	o := &Orchestrator{
		Store:    s,
		Scrapers: registry,
		Rates:    map[string]float64{},
		now:      func() time.Time { return fixedTime },
	}

	result, err := o.Run(context.Background(), Scope{})
	require.NoError(t, err)
	require.NotEmpty(t, result.Boards)
	assert.NotEmpty(t, result.Boards[0].Listings)
	assert.Empty(t, result.Errors)

	stored, err := s.ListBoards()
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestOrchestratorRunScrapeFallsBackToDemoSeedOnAllFailures(t *testing.T) {
	s := openPipelineTestStore(t)

	registry := scrape.NewRegistry(stubScraper{name: "broken", sourceType: "retailer", err: assertErr{}})

	o := &Orchestrator{Store: s, Scrapers: registry, Rates: map[string]float64{}}

	result, err := o.Run(context.Background(), Scope{})
	require.NoError(t, err)
	require.NotEmpty(t, result.Boards)
	require.Len(t, result.Errors, 2)
}

type assertErr struct{}

func (assertErr) Error() string { return "scrape failed" }
