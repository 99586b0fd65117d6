package normalize

import "strings"

var blemishedTitleMarkers = []string{"(blem)", "- blem", "blem"}
var blemishedURLMarkers = []string{"-blem", "/blem"}

var closeoutTitleMarkers = []string{"(closeout)", "closeout"}
var closeoutURLMarkers = []string{"/outlet/", "-closeout"}

// Condition resolves a free-form title/URL to one of
// {new, blemished, closeout}. "(Sale)" is a pricing signal, not a
// condition, and is deliberately not matched here.
func Condition(title, url string) string {
	t := strings.ToLower(title)
	u := strings.ToLower(url)

	for _, marker := range blemishedTitleMarkers {
		if strings.Contains(t, marker) {
			return "blemished"
		}
	}
	for _, marker := range blemishedURLMarkers {
		if strings.Contains(u, marker) {
			return "blemished"
		}
	}

	for _, marker := range closeoutTitleMarkers {
		if strings.Contains(t, marker) {
			return "closeout"
		}
	}
	for _, marker := range closeoutURLMarkers {
		if strings.Contains(u, marker) {
			return "closeout"
		}
	}

	return "new"
}
