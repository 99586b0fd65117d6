// Package boardid bundles a raw ScrapedBoard with a lazily-derived
// canonical identity: brand, model, condition, gender, and year
// (spec §4.4). Each field is computed once and memoized, mirroring
// brand.Identifier's sync.Once pattern.
package boardid

import (
	"regexp"
	"strconv"
	"sync"

	"github.com/ryanrhee/snowboard-db-sub000/internal/brand"
	"github.com/ryanrhee/snowboard-db-sub000/internal/identify"
	"github.com/ryanrhee/snowboard-db-sub000/internal/model"
	"github.com/ryanrhee/snowboard-db-sub000/internal/normalize"
)

var (
	fourDigitYearPattern = regexp.MustCompile(`\b20[1-2]\d\b`)
	twoDigitYearPattern  = regexp.MustCompile(`\b[1-2]\d\b`)
)

// Identifier is a lazy wrapper over a raw ScrapedBoard.
type Identifier struct {
	board model.ScrapedBoard

	brandOnce sync.Once
	brandID   *brand.Identifier

	modelOnce  sync.Once
	modelName  string
	variant    *string

	conditionOnce sync.Once
	condition     string

	genderOnce sync.Once
	gender     string

	yearOnce sync.Once
	year     *int
}

// New wraps a raw scraped board for lazy identity derivation.
func New(board model.ScrapedBoard) *Identifier {
	return &Identifier{board: board}
}

func (b *Identifier) brandIdentifier() *brand.Identifier {
	b.brandOnce.Do(func() {
		b.brandID = brand.From(b.board.BrandRaw)
	})
	return b.brandID
}

// Brand returns the canonical brand name, or "Unknown" if none could
// be derived.
func (b *Identifier) Brand() string {
	bi := b.brandIdentifier()
	if bi == nil {
		return "Unknown"
	}
	return bi.Canonical()
}

func (b *Identifier) deriveModel() {
	b.modelOnce.Do(func() {
		bi := b.brandIdentifier()
		canonicalBrand := "Unknown"
		manufacturerKey := brand.ManufacturerDefault
		if bi != nil {
			canonicalBrand = bi.Canonical()
			manufacturerKey = bi.Manufacturer()
		}

		rawModel := b.board.RawModel
		if rawModel == "" {
			rawModel = b.board.Model
		}

		identity := identify.StrategyFor(manufacturerKey).Identify(identify.BoardSignal{
			RawModel:        rawModel,
			CanonicalBrand:  canonicalBrand,
			ManufacturerKey: manufacturerKey,
			Source:          b.board.Source,
			SourceURL:       b.board.SourceURL,
			Profile:         b.board.Profile,
			Gender:          b.board.Gender,
		})
		b.modelName = identity.NormalizedModel
		b.variant = identity.ProfileVariant
	})
}

// Model returns the normalized model name.
func (b *Identifier) Model() string {
	b.deriveModel()
	return b.modelName
}

// ProfileVariant returns the brand-specific bend-profile code
// extracted during identification, or nil if none was found.
func (b *Identifier) ProfileVariant() *string {
	b.deriveModel()
	return b.variant
}

// Condition returns the listing condition, preferring an explicit
// hint and falling back to detection from model text and source URL.
func (b *Identifier) Condition() string {
	b.conditionOnce.Do(func() {
		if b.board.ConditionHint != "" {
			b.condition = b.board.ConditionHint
			return
		}
		b.condition = normalize.Condition(b.board.RawModel, b.board.SourceURL)
	})
	return b.condition
}

// Gender returns the board gender, preferring an explicit hint and
// falling back to detection from model text and source URL.
func (b *Identifier) Gender() string {
	b.genderOnce.Do(func() {
		if b.board.Gender != "" {
			b.gender = b.board.Gender
			return
		}
		b.gender = normalize.Gender(b.board.RawModel, b.board.SourceURL)
	})
	return b.gender
}

// Year returns the hinted or inferred model year. Inference first
// tries a 4-digit 201x/202x pattern on the raw model, then falls back
// to a 2-digit pattern clamped to 18-29, mapped to 2018-2029.
func (b *Identifier) Year() *int {
	b.yearOnce.Do(func() {
		if b.board.Year != nil {
			b.year = b.board.Year
			return
		}
		if m := fourDigitYearPattern.FindString(b.board.RawModel); m != "" {
			if y, err := strconv.Atoi(m); err == nil {
				b.year = &y
				return
			}
		}
		if m := twoDigitYearPattern.FindString(b.board.RawModel); m != "" {
			if y, err := strconv.Atoi(m); err == nil && y >= 18 && y <= 29 {
				full := 2000 + y
				b.year = &full
			}
		}
	})
	return b.year
}
