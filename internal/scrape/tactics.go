package scrape

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/ryanrhee/snowboard-db-sub000/internal/logging"
	"github.com/ryanrhee/snowboard-db-sub000/internal/model"
)

const (
	tacticsListingURL = "https://www.tactics.com/snowboards"
	tacticsRegion     = "US"
)

// TacticsScraper scrapes tactics.com's snowboard listing page,
// preferring embedded JSON-LD Product data for price/availability and
// falling back to the page's own price/badge markup when JSON-LD is
// absent or malformed (spec §4.10, §6 wire formats).
type TacticsScraper struct {
	fetcher Fetcher
	baseURL string
}

// NewTacticsScraper builds the reference tactics.com adapter.
func NewTacticsScraper() *TacticsScraper {
	return &TacticsScraper{baseURL: tacticsListingURL}
}

// WithFetcher binds the HTTP fetcher; the pipeline calls this once
// httpcache.PlainFetcher is constructed.
func (s *TacticsScraper) WithFetcher(f Fetcher) *TacticsScraper {
	s.fetcher = f
	return s
}

func (s *TacticsScraper) Name() string       { return "tactics" }
func (s *TacticsScraper) SourceType() string { return "retailer" }

// Regions reports nil: tactics.com ships one catalog with no
// region-specific listing set, so it's never excluded by a region filter.
func (s *TacticsScraper) Regions() []string { return nil }

func (s *TacticsScraper) Scrape(ctx context.Context, _ Scope) ([]model.ScrapedBoard, error) {
	if s.fetcher == nil {
		return nil, fmt.Errorf("tactics scraper: no fetcher configured")
	}

	body, err := s.fetcher.Fetch(ctx, s.baseURL)
	if err != nil {
		return nil, fmt.Errorf("fetch tactics listing: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse tactics listing: %w", err)
	}

	now := time.Now()
	var boards []model.ScrapedBoard

	doc.Find(".product-grid-item").Each(func(_ int, card *goquery.Selection) {
		titleLink := card.Find(".product-grid-item__title a")
		title := strings.TrimSpace(titleLink.Text())
		href, _ := titleLink.Attr("href")
		if title == "" || href == "" {
			logging.ScrapeDebug("tactics: skipping card with no title/href")
			return
		}

		product := findJSONLDProduct(doc, title)
		salePrice := product.price()
		availability := product.availability()
		if salePrice == nil {
			salePrice = parsePriceText(card.Find(".product-grid-item__price").Text())
		}
		if availability == "" {
			availability = strings.TrimSpace(card.Find(".product-grid-item__badge").Text())
		}

		var originalPrice *float64
		if s := strings.TrimSpace(card.Find(".product-grid-item__price--original").Text()); s != "" {
			originalPrice = parsePriceText(s)
		}

		boards = append(boards, model.ScrapedBoard{
			Source:    "retailer:tactics",
			RawModel:  title,
			Model:     title,
			SourceURL: href,
			Listings: []model.ScrapedListing{{
				URL:           href,
				OriginalPrice: originalPrice,
				SalePrice:     salePrice,
				Currency:      "USD",
				Availability:  availability,
				ScrapedAt:     now,
				Region:        tacticsRegion,
			}},
		})
	})

	logging.Scrape("tactics: scraped %d boards", len(boards))
	return boards, nil
}
