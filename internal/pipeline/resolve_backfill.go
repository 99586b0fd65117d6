package pipeline

import (
	"math"

	"github.com/ryanrhee/snowboard-db-sub000/internal/coalesce"
	"github.com/ryanrhee/snowboard-db-sub000/internal/model"
	"github.com/ryanrhee/snowboard-db-sub000/internal/resolve"
)

// resolveAndBackfill runs the resolver over every coalesced board and
// fills listing discountPercent from Board.MSRPUsd where the coalescer
// could not compute one from original/sale price (spec §4.8 step 7).
func resolveAndBackfill(c coalesce.Result) ([]model.Board, []model.Listing) {
	resolved := make([]model.Board, 0, len(c.Boards))
	msrpByKey := make(map[string]*float64, len(c.Boards))
	for _, b := range c.Boards {
		r, _ := resolve.ResolveBoard(b, c.SpecSources)
		resolved = append(resolved, r)
		msrpByKey[r.BoardKey] = r.MSRPUsd
	}

	listings := make([]model.Listing, len(c.Listings))
	copy(listings, c.Listings)
	for i := range listings {
		if listings[i].DiscountPercent != nil {
			continue
		}
		msrp := msrpByKey[listings[i].BoardKey]
		if msrp == nil || listings[i].SalePriceUsd == nil || *msrp <= 0 || *msrp <= *listings[i].SalePriceUsd {
			continue
		}
		pct := int(math.Round((*msrp - *listings[i].SalePriceUsd) / *msrp * 100))
		listings[i].DiscountPercent = &pct
	}

	return resolved, listings
}
