// Package identify dispatches a raw scraped model string to a
// manufacturer-specific strategy that derives a normalized model name
// and, where the manufacturer supports it, a profile-variant code
// (spec §4.3).
package identify

import "github.com/ryanrhee/snowboard-db-sub000/internal/brand"

// BoardSignal is the input to a Strategy: a raw model string plus the
// hints a scraper was able to attach to it.
type BoardSignal struct {
	RawModel        string
	CanonicalBrand  string
	ManufacturerKey brand.ManufacturerKey
	Source          string
	SourceURL       string
	Profile         string
	Gender          string
}

// BoardIdentity is the output of a Strategy.
type BoardIdentity struct {
	NormalizedModel string
	ProfileVariant  *string
}

// Strategy normalizes a BoardSignal into a BoardIdentity.
type Strategy interface {
	Identify(signal BoardSignal) BoardIdentity
}

// StrategyFor dispatches a manufacturer key to its Strategy.
func StrategyFor(key brand.ManufacturerKey) Strategy {
	switch key {
	case brand.ManufacturerBurton:
		return burtonStrategy{}
	case brand.ManufacturerMervin:
		return mervinStrategy{}
	default:
		return defaultStrategy{}
	}
}

func variant(code string) *string {
	v := code
	return &v
}
