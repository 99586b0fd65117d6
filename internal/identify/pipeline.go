package identify

import (
	"regexp"
	"strings"

	"github.com/ryanrhee/snowboard-db-sub000/internal/textutil"
)

var (
	comboInfoPattern   = regexp.MustCompile(`(?i)\s+(\+|w/|&\s*bindings?\b).*$`)
	retailTagPattern   = regexp.MustCompile(`(?i)\s*[-(]\s*(closeout|blem|sale)\)?\s*`)
	snowboardSuffixPattern = regexp.MustCompile(`(?i)\s*\bsnowboards?\b.*$`)
	yearRangePattern   = regexp.MustCompile(`(?i)\s*-?\s*\b(19|20)\d{2}(/(19|20)?\d{2})?\b\s*$`)
	seasonSuffixPattern = regexp.MustCompile(`(?i)\b\d{4}\s+early\s+release\b`)
	trailingSizePattern = regexp.MustCompile(`\s+(1[3-9]\d|2[0-2]\d)\s*$`)
	genderSuffixPattern = regexp.MustCompile(`(?i)\s*-?\s*(women'?s|wmn|men'?s|kids'?|boys'?|girls'?)\s*$`)
	genderPrefixPattern = regexp.MustCompile(`(?i)^\s*(women'?s|wmn|men'?s|kids'?|boys'?|girls'?)\s+`)
	leadingThePattern   = regexp.MustCompile(`(?i)^the\s+`)
	dashSpacerPattern   = regexp.MustCompile(`\s+-\s+`)
	acronymTokenPattern = regexp.MustCompile(`^([A-Za-z]\.){2,}$`)
	hyphenPattern       = regexp.MustCompile(`-`)
	packageWordPattern  = regexp.MustCompile(`(?i)\bpackage\b`)
	whitespacePattern   = regexp.MustCompile(`\s+`)
	trailingSlashDash   = regexp.MustCompile(`[/\-\s]+$`)
)

// sharedPreNormalize applies spec §4.3 steps 1-10, common to every
// strategy, before brand-specific variant extraction runs.
func sharedPreNormalize(raw, canonicalBrand string) string {
	s := textutil.StripZeroWidth(raw)
	s = strings.ReplaceAll(s, "|", " ")
	s = comboInfoPattern.ReplaceAllString(s, "")
	s = retailTagPattern.ReplaceAllString(s, " ")
	s = snowboardSuffixPattern.ReplaceAllString(s, "")
	s = yearRangePattern.ReplaceAllString(s, "")
	s = seasonSuffixPattern.ReplaceAllString(s, "")
	s = trailingSizePattern.ReplaceAllString(s, "")
	s = genderSuffixPattern.ReplaceAllString(s, "")
	s = genderPrefixPattern.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = stripBrandPrefix(s, canonicalBrand)
	return strings.TrimSpace(s)
}

// stripBrandPrefix removes a leading canonical-brand token, but only
// on a word boundary: "Chrome Rome Snowboard" with brand "Rome" is
// left untouched because "Rome" does not start the string.
func stripBrandPrefix(s, canonicalBrand string) string {
	canonicalBrand = strings.TrimSpace(canonicalBrand)
	if canonicalBrand == "" {
		return s
	}
	lower := strings.ToLower(s)
	brandLower := strings.ToLower(canonicalBrand)
	if !strings.HasPrefix(lower, brandLower) {
		return s
	}
	rest := s[len(canonicalBrand):]
	if rest == "" {
		return s
	}
	if rest[0] != ' ' {
		return s
	}
	return strings.TrimSpace(rest)
}

// sharedPostNormalize applies spec §4.3 steps 11-16, common to every
// strategy, after brand-specific variant extraction runs.
func sharedPostNormalize(s string) string {
	s = leadingThePattern.ReplaceAllString(s, "")
	s = dashSpacerPattern.ReplaceAllString(s, " ")
	s = stripInterLetterPeriods(s)
	s = hyphenPattern.ReplaceAllString(s, " ")
	s = packageWordPattern.ReplaceAllString(s, "")
	s = whitespacePattern.ReplaceAllString(s, " ")
	s = trailingSlashDash.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// stripInterLetterPeriods collapses an acronym token like "D.O.A." to
// "DOA" while leaving version numbers like "2.0" alone: only tokens
// made entirely of letter-period pairs qualify.
func stripInterLetterPeriods(s string) string {
	tokens := strings.Fields(s)
	for i, tok := range tokens {
		if acronymTokenPattern.MatchString(tok) {
			tokens[i] = strings.ReplaceAll(tok, ".", "")
		}
	}
	return strings.Join(tokens, " ")
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

// stripRiderNames removes a rider name from s wherever it appears in
// one of three position-sensitive forms: leading ("<rider> Model"),
// trailing ("Model <rider>"), or infix ("Model by <rider>").
func stripRiderNames(s string, riders []string) string {
	for _, rider := range riders {
		s = stripOneRiderName(s, rider)
	}
	return s
}

func stripOneRiderName(s, rider string) string {
	riderLower := strings.ToLower(rider)

	lower := strings.ToLower(s)
	byPattern := " by " + riderLower
	if idx := strings.Index(lower, byPattern); idx >= 0 {
		s = strings.TrimSpace(s[:idx] + s[idx+len(byPattern):])
		lower = strings.ToLower(s)
	}

	if lower == riderLower {
		return ""
	}
	if strings.HasPrefix(lower, riderLower+" ") {
		s = strings.TrimSpace(s[len(rider):])
		lower = strings.ToLower(s)
	}
	if strings.HasSuffix(lower, " "+riderLower) {
		s = strings.TrimSpace(s[:len(s)-len(rider)-1])
	}
	return s
}

// stripPrefixFold removes prefix from s (case-insensitive) if present.
func stripPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) {
		return s, false
	}
	if strings.EqualFold(s[:len(prefix)], prefix) {
		return s[len(prefix):], true
	}
	return s, false
}

// stripSuffixFold removes suffix from s (case-insensitive) if present.
func stripSuffixFold(s, suffix string) (string, bool) {
	if len(s) < len(suffix) {
		return s, false
	}
	if strings.EqualFold(s[len(s)-len(suffix):], suffix) {
		return s[:len(s)-len(suffix)], true
	}
	return s, false
}
