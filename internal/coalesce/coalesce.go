// Package coalesce groups ScrapedBoard records into canonical Board
// and Listing rows, writing provenance to spec_sources along the way
// (spec §4.5). The resolver (internal/resolve) is what later fills in
// each Board's specs; Coalesce itself leaves them null.
package coalesce

import (
	"sort"
	"time"

	"github.com/ryanrhee/snowboard-db-sub000/internal/model"
)

// Result is the output of a Coalesce run: draft boards (specs unset),
// their listings, and the provenance rows the resolver will consume.
type Result struct {
	Boards      []model.Board
	Listings    []model.Listing
	SpecSources []model.SpecSourceRow
}

// Coalesce runs Phases A through E over a pool of scraped records.
// rates maps a non-USD currency code to its USD multiplier; now is
// the provenance timestamp for every written spec_sources row.
func Coalesce(scraped []model.ScrapedBoard, rates map[string]float64, runID string, now time.Time) Result {
	items := identifyAll(scraped)
	preSplit := groupByBoardKey(items)

	finalGroups := map[string][]identified{}
	for _, group := range preSplit {
		for key, split := range splitByProfileVariant(group) {
			finalGroups[key] = append(finalGroups[key], split...)
		}
	}

	keys := make([]string, 0, len(finalGroups))
	for k := range finalGroups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var result Result
	for _, boardKey := range keys {
		group := finalGroups[boardKey]
		var manufacturer manufacturerInfo
		haveManufacturer := false

		for _, it := range group {
			result.SpecSources = append(result.SpecSources, SpecSourceRows(boardKey, it.scraped, now)...)
			result.Listings = append(result.Listings, buildListings(boardKey, it.scraped, rates, runID)...)
			if info, ok := manufacturerInfoFor(it.scraped); ok {
				manufacturer = info
				haveManufacturer = true
			}
		}

		board := model.Board{
			BoardKey:  boardKey,
			Brand:     group[0].brand,
			Model:     group[0].model,
			Gender:    group[0].gender,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if haveManufacturer {
			board.MSRPUsd = manufacturer.msrpUsd
			board.ManufacturerURL = manufacturer.manufacturerURL
		}
		result.Boards = append(result.Boards, board)
	}

	return result
}
