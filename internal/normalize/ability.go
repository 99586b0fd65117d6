package normalize

import (
	"regexp"
	"strings"
)

// abilityOrder fixes the canonical ordering used to derive a range
// when only one endpoint is known.
var abilityOrder = []string{"beginner", "intermediate", "advanced", "expert"}

var abilityAliases = map[string]string{
	"novice":      "beginner",
	"entry level": "beginner",
	"entry-level": "beginner",
	"day 1":       "beginner",
	"beginner":    "beginner",
	"intermediate": "intermediate",
	"intermediate rider": "intermediate",
	"advanced":    "advanced",
	"expert":      "expert",
	"pro":         "expert",
	"pro level":   "expert",
	"professional": "expert",
}

var abilityRangePattern = regexp.MustCompile(`(beginner|novice|entry[\s-]level|day 1|intermediate|advanced|expert|pro(?:\s*level)?|professional)\s*(?:-|to|through)\s*(beginner|novice|entry[\s-]level|day 1|intermediate|advanced|expert|pro(?:\s*level)?|professional)`)

// abilityScanOrder fixes substring-scan order: longer, more specific
// phrases before the shorter words they contain.
var abilityScanOrder = []string{
	"entry level", "entry-level", "day 1", "pro level", "professional",
	"novice", "beginner", "intermediate", "advanced", "expert", "pro",
}

// AbilityRange resolves a free-form ability description to a
// (min, max) pair drawn from {beginner, intermediate, advanced,
// expert}. Either or both may be "" if nothing matches.
func AbilityRange(raw string) (min, max string) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return "", ""
	}

	if m := abilityRangePattern.FindStringSubmatch(s); m != nil {
		lo := abilityAliases[m[1]]
		hi := abilityAliases[m[2]]
		if lo != "" && hi != "" {
			return orderAbility(lo, hi)
		}
	}

	for _, phrase := range abilityScanOrder {
		if strings.Contains(s, phrase) {
			level := abilityAliases[phrase]
			return level, level
		}
	}

	return "", ""
}

func orderAbility(a, b string) (min, max string) {
	ia, ib := abilityIndex(a), abilityIndex(b)
	if ia <= ib {
		return a, b
	}
	return b, a
}

func abilityIndex(level string) int {
	for i, l := range abilityOrder {
		if l == level {
			return i
		}
	}
	return len(abilityOrder)
}
