package scrape

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// jsonLDProduct is the subset of schema.org Product JSON-LD this
// scraper understands.
type jsonLDProduct struct {
	Type  string `json:"@type"`
	Name  string `json:"name"`
	Offers struct {
		Price         json.Number `json:"price"`
		PriceCurrency string      `json:"priceCurrency"`
		Availability  string      `json:"availability"`
	} `json:"offers"`
}

// findJSONLDProduct scans every <script type="application/ld+json">
// block on the page for a Product entry whose name matches title
// case-insensitively.
func findJSONLDProduct(doc *goquery.Document, title string) *jsonLDProduct {
	var found *jsonLDProduct
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var p jsonLDProduct
		if err := json.Unmarshal([]byte(s.Text()), &p); err != nil {
			return true
		}
		if !strings.EqualFold(p.Type, "Product") {
			return true
		}
		if title != "" && !strings.EqualFold(p.Name, title) {
			return true
		}
		found = &p
		return false
	})
	return found
}

func (p *jsonLDProduct) price() *float64 {
	if p == nil {
		return nil
	}
	f, err := p.Offers.Price.Float64()
	if err != nil {
		return nil
	}
	return &f
}

func (p *jsonLDProduct) availability() string {
	if p == nil {
		return ""
	}
	return strings.TrimPrefix(p.Offers.Availability, "https://schema.org/")
}

// parsePriceText parses a free-form price string like "$349.95" into
// a float, used when no JSON-LD block matched.
func parsePriceText(raw string) *float64 {
	cleaned := strings.Map(func(r rune) rune {
		if r == '.' || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, raw)
	if cleaned == "" {
		return nil
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &f
}
