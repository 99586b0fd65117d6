package coalesce

import (
	"strings"
	"unicode"
)

// titleCase upper-cases the first rune of each whitespace-separated
// word, leaving the rest of the word untouched ("c2x" -> "C2x",
// "flying v" -> "Flying V").
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
