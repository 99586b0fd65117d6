package scrape

import (
	"time"

	"github.com/ryanrhee/snowboard-db-sub000/internal/model"
)

// DemoSeedBoards is the hard-coded fallback used when no retailer
// listings were produced and at least one scraper errored (spec §4.8
// step 3), so the pipeline still returns a usable run rather than an
// empty one.
func DemoSeedBoards() []model.ScrapedBoard {
	now := time.Now()
	usd := func(v float64) *float64 { return &v }

	return []model.ScrapedBoard{
		{
			Source:   "retailer:demo",
			BrandRaw: "Burton",
			RawModel: "Custom Camber Snowboard",
			Model:    "Custom Camber Snowboard",
			Profile:  "camber",
			Shape:    "directional",
			Category: "all_mountain",
			Listings: []model.ScrapedListing{{
				URL:           "https://example.com/demo/burton-custom",
				OriginalPrice: usd(599.95),
				SalePrice:     usd(479.95),
				Currency:      "USD",
				Availability:  "in stock",
				ScrapedAt:     now,
			}},
		},
		{
			Source:   "retailer:demo",
			BrandRaw: "GNU",
			RawModel: "Ladies Choice C2X Snowboard - Women's",
			Model:    "Ladies Choice C2X Snowboard - Women's",
			Profile:  "hybrid_rocker",
			Shape:    "true_twin",
			Category: "freestyle",
			Gender:   "womens",
			Listings: []model.ScrapedListing{{
				URL:           "https://example.com/demo/gnu-ladies-choice",
				OriginalPrice: usd(449.95),
				SalePrice:     usd(449.95),
				Currency:      "USD",
				Availability:  "in stock",
				ScrapedAt:     now,
			}},
		},
		{
			Source:   "retailer:demo",
			BrandRaw: "Jones",
			RawModel: "Mountain Twin Snowboard",
			Model:    "Mountain Twin Snowboard",
			Profile:  "camber",
			Shape:    "true_twin",
			Category: "all_mountain",
			Listings: []model.ScrapedListing{{
				URL:           "https://example.com/demo/jones-mountain-twin",
				OriginalPrice: usd(529.95),
				SalePrice:     usd(529.95),
				Currency:      "USD",
				Availability:  "low stock",
				ScrapedAt:     now,
			}},
		},
	}
}
