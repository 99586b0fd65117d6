package normalize

import "strings"

var shapeAliases = map[string]string{
	"true twin":        "true_twin",
	"twin":              "true_twin",
	"directional twin":  "directional_twin",
	"directional":       "directional",
	"tapered directional": "directional",
	"tapered":           "tapered",
	"tapered twin":      "tapered",
}

// Shape resolves a free-form shape string to one of
// {true_twin, directional_twin, directional, tapered}, or "".
func Shape(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}

	if v, ok := shapeAliases[s]; ok {
		return v
	}

	hasTwin := strings.Contains(s, "twin")
	hasDirectional := strings.HasPrefix(s, "direct") || strings.Contains(s, "direct")
	if hasTwin && hasDirectional {
		return "directional_twin"
	}
	if strings.Contains(s, "tapered") {
		return "tapered"
	}
	if hasDirectional {
		return "directional"
	}
	if hasTwin {
		return "true_twin"
	}
	return ""
}
