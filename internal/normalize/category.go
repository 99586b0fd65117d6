package normalize

import "strings"

// categoryOrder fixes tie-break order: first enum member wins ties in
// the description keyword scan.
var categoryOrder = []string{"all_mountain", "freestyle", "freeride", "powder", "park"}

var categoryAliases = map[string]string{
	"all mountain":  "all_mountain",
	"all-mountain":  "all_mountain",
	"freestyle":     "freestyle",
	"freeride":      "freeride",
	"powder":        "powder",
	"park":          "park",
}

// categoryKeywords are scanned against free-form descriptions when no
// exact category label was supplied.
var categoryKeywords = map[string][]string{
	"all_mountain": {"all mountain", "all-mountain", "versatile", "everyday"},
	"freestyle":    {"freestyle", "park lap", "jib", "butter", "rail"},
	"freeride":     {"freeride", "backcountry", "big mountain", "steep"},
	"powder":       {"powder", "deep snow", "float", "pow day"},
	"park":         {"park", "jump", "halfpipe", "rails and boxes"},
}

// Category resolves a category label, falling back to a description
// keyword scan, returning "" if nothing matches.
func Category(raw, description string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if v, ok := categoryAliases[s]; ok {
		return v
	}

	desc := strings.ToLower(description)
	if desc == "" {
		return ""
	}

	best := ""
	bestCount := 0
	for _, cat := range categoryOrder {
		count := 0
		for _, kw := range categoryKeywords[cat] {
			if strings.Contains(desc, kw) {
				count++
			}
		}
		if count > bestCount {
			best = cat
			bestCount = count
		}
	}
	return best
}
