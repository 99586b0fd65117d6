package identify

import (
	"regexp"
	"strings"
)

var tRicePattern = regexp.MustCompile(`(?i)\bT\.Rice\b`)

// mervinContourCodes is the ordered suffix set checked against the end
// of the model string; the first match wins. "camber" remaps to "c3".
var mervinContourCodes = []string{"c3 btx", "c2x", "c2e", "c2", "c3", "btx", "camber"}

var mervinRidersGNU = []string{"Forest Bailey", "Max Warbington", "Cummins'"}
var mervinRidersLibTech = []string{"T. Rice", "Travis Rice"}

type mervinStrategy struct{}

func (mervinStrategy) Identify(signal BoardSignal) BoardIdentity {
	isLibTech := strings.EqualFold(signal.CanonicalBrand, "Lib Tech")
	isGNU := strings.EqualFold(signal.CanonicalBrand, "GNU")

	s := sharedPreNormalize(signal.RawModel, signal.CanonicalBrand)

	if isLibTech {
		if stripped, ok := stripPrefixFold(s, "Tech "); ok {
			s = stripped
		}
	}
	s = tRicePattern.ReplaceAllString(s, "T. Rice")

	var v *string
	for _, code := range mervinContourCodes {
		if stripped, ok := stripSuffixFold(s, " "+code); ok {
			s = strings.TrimSpace(stripped)
			v = variant(remapContour(code))
			break
		}
	}

	if v == nil && signal.Profile != "" {
		if code := contourFromProfile(signal.Profile); code != "" {
			v = variant(code)
		}
	}

	if isGNU {
		s = stripRiderNames(s, mervinRidersGNU)
	} else if isLibTech {
		s = stripRiderNames(s, mervinRidersLibTech)
	}

	if stripped, ok := stripPrefixFold(s, "Signature Series "); ok {
		s = stripped
	} else if stripped, ok := stripPrefixFold(s, "Ltd "); ok {
		s = stripped
	}

	if isGNU {
		s = applyGNUOnlyRules(s)
	}

	s = applyMervinAliases(s)
	s = sharedPostNormalize(s)
	return BoardIdentity{NormalizedModel: s, ProfileVariant: v}
}

func remapContour(code string) string {
	if strings.EqualFold(code, "camber") {
		return "c3"
	}
	return strings.ToLower(code)
}

// contourFromProfile derives a contour code from a free-form profile
// string when the model itself carried no explicit code suffix.
func contourFromProfile(profile string) string {
	p := strings.ToLower(profile)
	for _, code := range []string{"c2x", "c2e", "c3 btx", "c2", "c3", "btx"} {
		if strings.Contains(p, code) {
			return code
		}
	}
	if strings.Contains(p, "hybrid camber") || strings.Contains(p, "camrock") {
		return "c2"
	}
	if strings.Contains(p, "hybrid rocker") || strings.Contains(p, "flying v") {
		return "btx"
	}
	if strings.Contains(p, "camber") {
		return "c3"
	}
	if strings.Contains(p, "rocker") {
		return "btx"
	}
	return ""
}

func applyGNUOnlyRules(s string) string {
	if stripped, ok := stripPrefixFold(s, "Asym "); ok {
		s = stripped
	}
	if stripped, ok := stripSuffixFold(s, " Asym"); ok {
		s = stripped
	}
	s = strings.ReplaceAll(s, "-", " ")
	if stripped, ok := stripPrefixFold(s, "C "); ok {
		s = stripped
	}
	if stripped, ok := stripSuffixFold(s, " C"); ok {
		s = stripped
	}
	return s
}

func applyMervinAliases(s string) string {
	lower := strings.ToLower(s)
	if idx := strings.Index(lower, "son of a birdman"); idx >= 0 {
		s = s[:idx] + "son of birdman" + s[idx+len("son of a birdman"):]
	}
	return s
}
