package scrape

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanrhee/snowboard-db-sub000/internal/model"
)

type stubScraper struct {
	name       string
	sourceType string
	regions    []string
}

func (s stubScraper) Name() string       { return s.name }
func (s stubScraper) SourceType() string { return s.sourceType }
func (s stubScraper) Regions() []string  { return s.regions }
func (s stubScraper) Scrape(context.Context, Scope) ([]model.ScrapedBoard, error) {
	return nil, nil
}

func testRegistry() *Registry {
	r := &Registry{}
	r.register(stubScraper{name: "tactics", sourceType: "retailer"})
	r.register(stubScraper{name: "burton", sourceType: "manufacturer"})
	r.register(stubScraper{name: "evo", sourceType: "retailer"})
	return r
}

func TestSelectWithNilScopeIncludesAll(t *testing.T) {
	r := testRegistry()
	assert.Len(t, r.Select(Scope{}), 3)
}

func TestSelectFiltersBySourceType(t *testing.T) {
	r := testRegistry()
	selected := r.Select(Scope{SourceType: []string{"retailer"}})
	require.Len(t, selected, 2)
	for _, s := range selected {
		assert.Equal(t, "retailer", s.SourceType())
	}
}

func TestSelectEmptyRetailersExcludesAllRetailers(t *testing.T) {
	r := testRegistry()
	selected := r.Select(Scope{Retailers: []string{}})
	require.Len(t, selected, 1)
	assert.Equal(t, "burton", selected[0].Name())
}

func TestSelectByExactSiteName(t *testing.T) {
	r := testRegistry()
	selected := r.Select(Scope{Sites: []string{"evo"}})
	require.Len(t, selected, 1)
	assert.Equal(t, "evo", selected[0].Name())
}

func TestSelectFiltersByRegionOnlyAmongRegionScopedScrapers(t *testing.T) {
	r := &Registry{}
	r.register(stubScraper{name: "tactics", sourceType: "retailer"})
	r.register(stubScraper{name: "eu-only", sourceType: "retailer", regions: []string{"EU"}})

	selected := r.Select(Scope{Regions: []string{"US"}})
	require.Len(t, selected, 1)
	assert.Equal(t, "tactics", selected[0].Name())

	selected = r.Select(Scope{Regions: []string{"EU"}})
	names := map[string]bool{}
	for _, s := range selected {
		names[s.Name()] = true
	}
	assert.True(t, names["tactics"])
	assert.True(t, names["eu-only"])
}

func TestALLScrapersRegistersReferenceAdapters(t *testing.T) {
	names := map[string]bool{}
	for _, s := range ALL_SCRAPERS.Select(Scope{}) {
		names[s.Name()] = true
	}
	assert.True(t, names["tactics"])
	assert.True(t, names["burton"])
}
