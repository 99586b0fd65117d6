package identify

import "strings"

// burtonVariantSuffixes is the ordered suffix set checked against the
// end of the model string; the first match wins.
var burtonVariantSuffixes = []string{
	"purepop camber",
	"flying v",
	"flat top",
	"purepop",
	"camber",
}

type burtonStrategy struct{}

func (burtonStrategy) Identify(signal BoardSignal) BoardIdentity {
	s := sharedPreNormalize(signal.RawModel, signal.CanonicalBrand)
	s = applyBurtonAliases(s)

	var v *string
	for _, suffix := range burtonVariantSuffixes {
		if stripped, ok := stripSuffixFold(strings.TrimSpace(s), " "+suffix); ok {
			s = stripped
			v = variant(strings.ToLower(suffix))
			break
		}
		if strings.EqualFold(strings.TrimSpace(s), suffix) {
			s = ""
			v = variant(strings.ToLower(suffix))
			break
		}
	}

	s = sharedPostNormalize(s)
	return BoardIdentity{NormalizedModel: s, ProfileVariant: v}
}

func applyBurtonAliases(s string) string {
	lower := strings.ToLower(s)
	if idx := strings.Index(lower, "fish 3d directional"); idx >= 0 {
		s = s[:idx] + "3d fish directional" + s[idx+len("fish 3d directional"):]
	}
	if stripped, ok := stripPrefixFold(s, "snowboards "); ok {
		s = stripped
	}
	return s
}
