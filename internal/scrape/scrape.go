// Package scrape defines the scraper registry and reference
// retailer/manufacturer adapters the pipeline fans out across (spec
// §4.8 step 1-2, §4.10).
package scrape

import (
	"context"

	"github.com/ryanrhee/snowboard-db-sub000/internal/model"
)

// Scope selects which scrapers run and constrains what they fetch.
// Nil/absent slices mean "include all"; an empty (non-nil) slice
// excludes that source type entirely.
type Scope struct {
	Sites         []string
	Retailers     []string
	Manufacturers []string
	Regions       []string
	SourceType    []string
}

// Scraper is one retailer or manufacturer adapter.
type Scraper interface {
	Name() string
	SourceType() string
	// Regions reports which regions this scraper serves. Nil means the
	// scraper isn't region-scoped (a single global site) and is never
	// excluded by a region filter.
	Regions() []string
	Scrape(ctx context.Context, scope Scope) ([]model.ScrapedBoard, error)
}

func matchesFilter(filter []string, value string) bool {
	if filter == nil {
		return true
	}
	for _, f := range filter {
		if f == value {
			return true
		}
	}
	return false
}

// regionsMatch reports whether a region-scoped scraper's regions
// intersect scope's region filter. A scraper with no declared regions
// is never region-restricted and always matches.
func regionsMatch(filter, scraperRegions []string) bool {
	if filter == nil || scraperRegions == nil {
		return true
	}
	for _, want := range filter {
		for _, have := range scraperRegions {
			if want == have {
				return true
			}
		}
	}
	return false
}

// matches reports whether scraper s should run under scope. Each
// non-nil filter dimension must include s's name, source type, or
// (for region-scoped scrapers only) one of its regions.
func matches(s Scraper, scope Scope) bool {
	if !matchesFilter(scope.Sites, s.Name()) {
		return false
	}
	if !matchesFilter(scope.SourceType, s.SourceType()) {
		return false
	}
	if !regionsMatch(scope.Regions, s.Regions()) {
		return false
	}
	switch s.SourceType() {
	case "retailer":
		if !matchesFilter(scope.Retailers, s.Name()) {
			return false
		}
	case "manufacturer":
		if !matchesFilter(scope.Manufacturers, s.Name()) {
			return false
		}
	}
	return true
}
