package normalize

import (
	"regexp"
	"strings"
)

var genderWordPattern = regexp.MustCompile(`\b(women'?s|wmn|men'?s|kids'?|boys'?|girls'?|toddlers?'?|unisex)\b`)

var genderWordAliases = map[string]string{
	"women's": "womens",
	"womens":  "womens",
	"wmn":     "womens",
	"men's":   "mens",
	"mens":    "mens",
	"kids'":   "kids",
	"kids":    "kids",
	"boys'":   "kids",
	"boys":    "kids",
	"girls'":  "kids",
	"girls":   "kids",
	"toddler": "kids",
	"toddlers": "kids",
	"unisex":  "unisex",
}

var genderURLTokens = []struct {
	token  string
	gender string
}{
	{"-womens", "womens"},
	{"-mens", "mens"},
	{"-kids", "kids"},
}

// Gender resolves a free-form title/description/URL to one of
// {unisex, womens, kids, mens}, defaulting to "unisex" when nothing
// matches. The title is matched with a single word-boundary regex whose
// leftmost match wins; the boundary keeps "mens" from matching inside
// "womens", so the order of the alternatives does not matter.
func Gender(title, url string) string {
	s := strings.ToLower(title)
	if m := genderWordPattern.FindString(s); m != "" {
		if g, ok := genderWordAliases[strings.TrimSpace(m)]; ok {
			return g
		}
	}

	u := strings.ToLower(url)
	for _, tok := range genderURLTokens {
		if strings.Contains(u, tok.token) {
			return tok.gender
		}
	}

	return "unisex"
}
