// Package textutil holds small string-cleanup helpers shared across the
// brand, identification, and board-key derivation stages.
package textutil

import "strings"

// zeroWidth lists the invisible code points that leak into scraped
// brand and model strings (spec §3): zero-width space, zero-width
// non-joiner, zero-width joiner, BOM/zero-width-no-break-space, and
// soft hyphen.
var zeroWidth = []string{
	"​", // ZERO WIDTH SPACE
	"‌", // ZERO WIDTH NON-JOINER
	"‍", // ZERO WIDTH JOINER
	"\uFEFF", // ZERO WIDTH NO-BREAK SPACE / BOM
	"­", // SOFT HYPHEN
}

// StripZeroWidth removes every zero-width code point from s.
func StripZeroWidth(s string) string {
	for _, r := range zeroWidth {
		s = strings.ReplaceAll(s, r, "")
	}
	return s
}
