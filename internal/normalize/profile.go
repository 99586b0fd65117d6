// Package normalize maps free-form scraped strings to the closed enum
// values spec §4.1 defines for profile, shape, category, flex, ability
// range, gender, and condition. Every function is pure and never
// panics; an unrecognized input returns the zero value, except for
// Gender, which defaults to "unisex", and Condition, which defaults to
// "new".
package normalize

import "strings"

// profileAliases is the exact-match table consulted before substring
// heuristics. Brand-specific contour codes (c2, c2x, btx, ...) live
// here because they are unambiguous once lowercased.
var profileAliases = map[string]string{
	"camber":           "camber",
	"true camber":      "camber",
	"traditional camber": "camber",
	"c3":               "camber",
	"rocker":           "rocker",
	"banana":           "rocker",
	"flat":             "flat",
	"flat top":         "flat",
	"zero camber":      "flat",
	"hybrid camber":    "hybrid_camber",
	"camrock":          "hybrid_camber",
	"c2":               "hybrid_camber",
	"c2e":              "hybrid_camber",
	"hybrid rocker":    "hybrid_rocker",
	"flying v":         "hybrid_rocker",
	"btx":              "hybrid_rocker",
	"c2x":              "hybrid_rocker",
	"c3 btx":           "hybrid_rocker",
}

// Profile resolves a free-form profile/bend string to one of
// {camber, rocker, flat, hybrid_camber, hybrid_rocker}, or "" if
// nothing matches.
func Profile(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}

	if v, ok := profileAliases[s]; ok {
		return v
	}

	hasRocker := strings.Contains(s, "rocker")
	hasCamber := strings.Contains(s, "camber")
	if hasRocker && hasCamber {
		if strings.Index(s, "rocker") < strings.Index(s, "camber") {
			return "hybrid_rocker"
		}
		return "hybrid_camber"
	}

	for _, kw := range []string{"camber", "rocker", "flat"} {
		if strings.Contains(s, kw) {
			if kw == "camber" {
				return "camber"
			}
			if kw == "rocker" {
				return "rocker"
			}
			return "flat"
		}
	}

	return ""
}
