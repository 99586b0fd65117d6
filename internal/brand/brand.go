// Package brand resolves noisy scraped brand strings into canonical
// brand identities and dispatches them to a manufacturer strategy key
// (spec §4.2). Derivation is lazy and memoized, mirroring the teacher's
// sync.Once-based one-shot initializers (internal/store/local.go uses
// the same "compute once, cache forever" shape for schema setup).
package brand

import (
	"regexp"
	"strings"
	"sync"

	"github.com/ryanrhee/snowboard-db-sub000/internal/textutil"
)

// ManufacturerKey is the strategy-dispatch key derived from a canonical
// brand name.
type ManufacturerKey string

const (
	ManufacturerBurton  ManufacturerKey = "burton"
	ManufacturerMervin  ManufacturerKey = "mervin"
	ManufacturerDefault ManufacturerKey = "default"
)

// brandSuffixPattern strips the common retailer/manufacturer suffixes
// from a raw brand string before alias lookup.
var brandSuffixPattern = regexp.MustCompile(`(?i)\s+(snowboarding|snowboards|snowboard|snowboard co\.?)\s*$`)

// aliases maps a lowercased, cleaned brand key to its canonical
// display form. Unknown keys pass through untouched.
var aliases = map[string]string{
	"lib technologies": "Lib Tech",
	"lib tech":         "Lib Tech",
	"capita":           "CAPiTA",
	"yes":              "Yes.",
	"dwd":              "Dinosaurs Will Die",
	"dinosaurs will die": "Dinosaurs Will Die",
	"gnu":              "GNU",
	"burton":           "Burton",
	"rossignol":        "Rossignol",
	"salomon":          "Salomon",
	"k2":               "K2",
	"nitro":            "Nitro",
	"ride":             "RIDE",
	"jones":            "Jones",
	"arbor":            "Arbor",
	"never summer":     "Never Summer",
	"gentemstick":      "Gentemstick",
	"aesmo":            "Aesmo",
}

// manufacturers maps a canonical brand (case-insensitive) to its
// identification-strategy key.
var manufacturers = map[string]ManufacturerKey{
	"burton":    ManufacturerBurton,
	"lib tech":  ManufacturerMervin,
	"gnu":       ManufacturerMervin,
}

// Identifier resolves a raw brand string into cleaned/canonical/
// manufacturer forms. Fields are derived lazily on first access and
// memoized; an Identifier is value-equal to any other built from the
// same raw string (spec invariant).
type Identifier struct {
	raw string

	cleanedOnce sync.Once
	cleaned     string

	canonicalOnce sync.Once
	canonical     string

	manufacturerOnce sync.Once
	manufacturer     ManufacturerKey
}

// New constructs an Identifier from a raw brand string.
func New(raw string) *Identifier {
	return &Identifier{raw: raw}
}

// From returns an Identifier built from the first non-empty string
// argument (ignoring all others), or nil if none qualify.
func From(candidates ...string) *Identifier {
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return New(c)
		}
	}
	return nil
}

// Raw returns the untouched constructor input.
func (b *Identifier) Raw() string {
	return b.raw
}

// Cleaned strips zero-width code points and trailing "Snowboard(s|ing)"
// / "Snowboard Co." suffixes.
func (b *Identifier) Cleaned() string {
	b.cleanedOnce.Do(func() {
		s := textutil.StripZeroWidth(b.raw)
		s = brandSuffixPattern.ReplaceAllString(s, "")
		b.cleaned = strings.TrimSpace(s)
	})
	return b.cleaned
}

// Canonical applies the alias table (case-insensitive on the cleaned
// key) and preserves unknown-brand casing unchanged.
func (b *Identifier) Canonical() string {
	b.canonicalOnce.Do(func() {
		cleaned := b.Cleaned()
		key := strings.ToLower(cleaned)
		if canon, ok := aliases[key]; ok {
			b.canonical = canon
			return
		}
		b.canonical = cleaned
	})
	return b.canonical
}

// Manufacturer maps the canonical brand to a strategy-dispatch key.
func (b *Identifier) Manufacturer() ManufacturerKey {
	b.manufacturerOnce.Do(func() {
		key := strings.ToLower(b.Canonical())
		if m, ok := manufacturers[key]; ok {
			b.manufacturer = m
			return
		}
		b.manufacturer = ManufacturerDefault
	})
	return b.manufacturer
}

// Equal reports value-equality: two Identifiers built from the same
// raw input always agree on Canonical/Manufacturer.
func (b *Identifier) Equal(other *Identifier) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.raw == other.raw
}
