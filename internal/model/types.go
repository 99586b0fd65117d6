// Package model defines the wire/storage types shared across the
// identification, coalescence, resolution, and persistence stages:
// ScrapedBoard, ScrapedListing, Board, and Listing (spec §3).
package model

import "time"

// Gender is the closed gender enum used for board keys and listings.
type Gender string

const (
	GenderUnisex Gender = "unisex"
	GenderWomens Gender = "womens"
	GenderKids   Gender = "kids"
	GenderMens   Gender = "mens"
)

// Availability is the closed listing-availability enum.
type Availability string

const (
	AvailabilityInStock    Availability = "in_stock"
	AvailabilityLowStock   Availability = "low_stock"
	AvailabilityOutOfStock Availability = "out_of_stock"
	AvailabilityUnknown    Availability = "unknown"
)

// Condition is the closed listing-condition enum.
type Condition string

const (
	ConditionNew        Condition = "new"
	ConditionBlemished  Condition = "blemished"
	ConditionCloseout   Condition = "closeout"
)

// ScrapedListing is one retailer's offer of one size of one board.
type ScrapedListing struct {
	URL            string
	ImageURL       string
	LengthCm       *float64
	WidthMm        *float64
	OriginalPrice  *float64
	SalePrice      *float64
	Currency       string
	Availability   string
	Condition      string
	StockCount     *int
	ScrapedAt      time.Time
	Gender         string
	ComboContents  string
	Region         string
}

// ScrapedBoard is one record per (source, board model) emitted by a
// scraper, manufacturer adapter, or review-site enricher.
type ScrapedBoard struct {
	Source      string // e.g. "retailer:tactics", "manufacturer:burton", "review-site:the-good-ride"
	BrandRaw    string
	Model       string
	RawModel    string
	Year        *int
	Flex        string
	Profile     string
	Shape       string
	Category    string
	AbilityLevel string
	Gender      string
	ConditionHint string
	MSRPUsd     *float64
	Description string
	SourceURL   string
	Extras      map[string]string
	Listings    []ScrapedListing

	// ProfileVariant holds a brand-specific bend-profile code (e.g.
	// "camber", "c2x"). No stage sets or reads it; the identification
	// stage exposes the variant through boardid.Identifier.ProfileVariant.
	ProfileVariant string
}

// TerrainScores rates a board 0..3 against each discipline.
type TerrainScores struct {
	Piste     int
	Powder    int
	Park      int
	Freeride  int
	Freestyle int
}

// Board is the canonical, deduplicated entity keyed by BoardKey.
type Board struct {
	BoardKey string
	Brand    string
	Model    string
	Gender   Gender

	Flex             *int
	Profile          string
	Shape            string
	Category         string
	AbilityLevelMin  string
	AbilityLevelMax  string

	Terrain TerrainScores

	MSRPUsd         *float64
	ManufacturerURL string
	Description     string
	BeginnerScore   *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Listing is one retailer's offer, keyed by a deterministic hash of
// (retailer, url, lengthCm).
type Listing struct {
	ID       string
	BoardKey string
	RunID    string

	Retailer string
	Region   string
	URL      string

	Currency       string
	OriginalPrice  *float64
	SalePrice      *float64
	SalePriceUsd   *float64
	DiscountPercent *int

	LengthCm   *float64
	WidthMm    *float64
	Availability Availability
	Condition    Condition
	Gender       Gender
	StockCount   *int

	ScrapedAt time.Time
}

// SpecSourceRow is one provenance row in the spec_sources table:
// one (boardKey, field, source) triple maps to exactly one value.
type SpecSourceRow struct {
	BoardKey  string
	Field     string
	Source    string
	Value     string
	SourceURL string
	Timestamp time.Time
}

// BoardWithListings pairs a Board with its current Listing set, the
// shape returned by the debug surface (§6).
type BoardWithListings struct {
	Board    Board
	Listings []Listing
}
