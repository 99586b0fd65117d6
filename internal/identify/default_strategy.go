package identify

import "strings"

// defaultRidersByBrand is the per-brand rider-name stripping table.
// Names are the public riders each manufacturer has historically
// named signature boards after.
var defaultRidersByBrand = map[string][]string{
	"capita":      {"Jess Kimura", "Bryan Iguchi", "Mark Carter"},
	"nitro":       {"Korok Ozeki", "Zak Hale"},
	"jones":       {"Jeremy Jones", "Elena Hight"},
	"arbor":       {"Austin Smith", "Ethan Deiss"},
	"gentemstick": {"Taro Tamai"},
	"aesmo":       {},
}

var defaultExactModelAliases = map[string]string{
	"mega merc":   "Mega Mercury",
	"hel yes":     "Hell Yes",
	"paradice":    "Paradise",
	"dreamweaver": "Dream Weaver",
}

var defaultPrefixModelAliases = []struct {
	prefix string
	repl   string
}{
	{"sb ", "Spring Break "},
	{"snowboards ", ""},
	{"darkhorse ", "Dark Horse "},
}

type defaultStrategy struct{}

func (defaultStrategy) Identify(signal BoardSignal) BoardIdentity {
	s := sharedPreNormalize(signal.RawModel, signal.CanonicalBrand)

	if strings.EqualFold(signal.CanonicalBrand, "Dinosaurs Will Die") {
		if stripped, ok := stripPrefixFold(s, "Will Die "); ok {
			s = stripped
		} else if stripped, ok := stripPrefixFold(s, "Dinosaurs "); ok {
			s = stripped
		}
	}

	brandKey := strings.ToLower(signal.CanonicalBrand)
	if riders, ok := defaultRidersByBrand[brandKey]; ok {
		s = stripRiderNames(s, riders)
	}

	s = applyDefaultModelAliases(s)
	s = sharedPostNormalize(s)
	return BoardIdentity{NormalizedModel: s, ProfileVariant: nil}
}

func applyDefaultModelAliases(s string) string {
	lower := strings.ToLower(strings.TrimSpace(s))
	if alias, ok := defaultExactModelAliases[lower]; ok {
		return alias
	}
	for _, pa := range defaultPrefixModelAliases {
		if stripped, ok := stripPrefixFold(s, pa.prefix); ok {
			return pa.repl + stripped
		}
	}
	return s
}
