package reviewsite

import (
	"bytes"
	"context"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ryanrhee/snowboard-db-sub000/internal/normalize"
)

// ReviewSpecs is what scrapeReviewSpecs recovers from one review page.
type ReviewSpecs struct {
	Shape        string
	Profile      string
	Category     string
	AbilityLevel string
	Flex         *int
	MSRPUsd      *float64
	Extras       map[string]string
}

var (
	flexImagePattern = regexp.MustCompile(`/img/(\d{1,3})\.png`)
	listPricePattern = regexp.MustCompile(`(?i)List Price[:\s]*\$?([\d,]+(?:\.\d+)?)`)
)

// scrapeReviewSpecs fetches url and extracts specs from its labeled
// spec table and rating-bar image. It returns (nil, nil) when none of
// shape, profile, category, flex, or MSRP were recoverable, signaling
// a page that wasn't a real spec page (spec §4.7).
func scrapeReviewSpecs(ctx context.Context, fetcher Fetcher, url string) (*ReviewSpecs, error) {
	body, err := fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	specs := &ReviewSpecs{Extras: map[string]string{}}

	doc.Find("table tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() < 2 {
			return
		}
		label := strings.TrimSpace(cells.Eq(0).Text())
		value := strings.TrimSpace(cells.Eq(1).Text())
		if label == "" || value == "" {
			return
		}
		applyLabeledSpec(specs, label, value)
	})

	doc.Find("img[src*='/img/']").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		src, ok := img.Attr("src")
		if !ok {
			return true
		}
		m := flexImagePattern.FindStringSubmatch(src)
		if m == nil {
			return true
		}
		pct, err := strconv.Atoi(m[1])
		if err != nil {
			return true
		}
		f := int(math.Round(float64(pct) / 10.0))
		specs.Flex = &f
		return false
	})

	if m := listPricePattern.FindStringSubmatch(doc.Text()); m != nil {
		cleaned := strings.ReplaceAll(m[1], ",", "")
		if v, err := strconv.ParseFloat(cleaned, 64); err == nil {
			specs.MSRPUsd = &v
		}
	}

	if specs.Shape == "" && specs.Profile == "" && specs.Category == "" &&
		specs.Flex == nil && specs.MSRPUsd == nil {
		return nil, nil
	}
	return specs, nil
}

func applyLabeledSpec(specs *ReviewSpecs, label, value string) {
	switch strings.ToLower(label) {
	case "shape":
		specs.Shape = normalize.Shape(value)
	case "camber profile", "profile", "camber":
		specs.Profile = normalize.Profile(value)
	case "riding style", "terrain":
		specs.Category = normalize.Category(value, "")
	case "ability level", "ability":
		specs.AbilityLevel = value
	default:
		specs.Extras[label] = value
	}
}
