package scrape

// Registry holds every scraper known to the pipeline.
type Registry struct {
	scrapers []Scraper
}

// ALL_SCRAPERS is the flat registry populated at init() with every
// reference adapter this repository ships.
var ALL_SCRAPERS = &Registry{}

// NewRegistry builds a registry from an explicit scraper list, for
// callers (tests, alternate pipeline wiring) that want a set other
// than ALL_SCRAPERS.
func NewRegistry(scrapers ...Scraper) *Registry {
	return &Registry{scrapers: scrapers}
}

func (r *Registry) register(s Scraper) {
	r.scrapers = append(r.scrapers, s)
}

// Select filters the registry by scope (spec §4.8 step 1).
func (r *Registry) Select(scope Scope) []Scraper {
	var out []Scraper
	for _, s := range r.scrapers {
		if matches(s, scope) {
			out = append(out, s)
		}
	}
	return out
}

func init() {
	ALL_SCRAPERS.register(NewTacticsScraper())
	ALL_SCRAPERS.register(NewBurtonScraper())
}
