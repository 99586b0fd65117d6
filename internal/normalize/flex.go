package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	flexOutOfTenPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:/|out of)\s*10`)
	flexBareIntPattern  = regexp.MustCompile(`\b([1-9]|10)\b`)
)

// flexPhrases must be tested in order: compound phrases before the
// prefix words they contain (e.g. "soft-medium" before "soft").
var flexPhrases = []struct {
	phrase string
	value  int
}{
	{"very soft", 2},
	{"soft-medium", 4},
	{"soft medium", 4},
	{"medium-stiff", 6},
	{"medium stiff", 6},
	{"very stiff", 9},
	{"soft", 3},
	{"medium", 5},
	{"stiff", 7},
}

// Flex resolves a free-form flex description to an integer in [1,10],
// or nil if nothing matches.
func Flex(raw string) *int {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return nil
	}

	if m := flexOutOfTenPattern.FindStringSubmatch(s); m != nil {
		if f, err := strconv.ParseFloat(m[1], 64); err == nil {
			v := clampFlex(int(f + 0.5))
			return &v
		}
	}

	if m := flexBareIntPattern.FindString(s); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			v := clampFlex(n)
			return &v
		}
	}

	for _, p := range flexPhrases {
		if strings.Contains(s, p.phrase) {
			v := p.value
			return &v
		}
	}

	return nil
}

func clampFlex(n int) int {
	if n < 1 {
		return 1
	}
	if n > 10 {
		return 10
	}
	return n
}
