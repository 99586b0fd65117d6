package pipeline

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanrhee/snowboard-db-sub000/internal/model"
	"github.com/ryanrhee/snowboard-db-sub000/internal/scrape"
)

type stubScraper struct {
	name       string
	sourceType string
	boards     []model.ScrapedBoard
	err        error
}

func (s stubScraper) Name() string       { return s.name }
func (s stubScraper) SourceType() string { return s.sourceType }
func (s stubScraper) Regions() []string  { return nil }
func (s stubScraper) Scrape(ctx context.Context, _ scrape.Scope) ([]model.ScrapedBoard, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.boards, nil
}

func TestRunScrapersCollectsSuccessesAndErrors(t *testing.T) {
	scrapers := []scrape.Scraper{
		stubScraper{name: "tactics", sourceType: "retailer", boards: []model.ScrapedBoard{{Source: "retailer:tactics"}}},
		stubScraper{name: "broken", sourceType: "retailer", err: fmt.Errorf("boom")},
	}

	boards, errs := runScrapers(context.Background(), scrapers, scrape.Scope{}, 0)
	require.Len(t, boards, 1)
	require.Len(t, errs, 1)
	assert.Equal(t, "broken", errs[0].Scraper)
	assert.Equal(t, "boom", errs[0].Reason)
}

func TestRunScrapersEmptySetReturnsNothing(t *testing.T) {
	boards, errs := runScrapers(context.Background(), nil, scrape.Scope{}, 2)
	assert.Empty(t, boards)
	assert.Empty(t, errs)
}
