package scrape

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ryanrhee/snowboard-db-sub000/internal/logging"
	"github.com/ryanrhee/snowboard-db-sub000/internal/model"
)

const burtonCatalogURL = "https://www.burton.com/us/en/c/snowboards"

// BurtonScraper scrapes burton.com's catalog page for manufacturer
// specs (profile, shape, MSRP). It never carries listings; its
// contribution is pure spec provenance at "manufacturer:burton"
// priority (spec §4.6, §4.10).
type BurtonScraper struct {
	fetcher Fetcher
	baseURL string
}

// NewBurtonScraper builds the reference burton.com adapter.
func NewBurtonScraper() *BurtonScraper {
	return &BurtonScraper{baseURL: burtonCatalogURL}
}

// WithFetcher binds the HTTP fetcher.
func (s *BurtonScraper) WithFetcher(f Fetcher) *BurtonScraper {
	s.fetcher = f
	return s
}

func (s *BurtonScraper) Name() string       { return "burton" }
func (s *BurtonScraper) SourceType() string { return "manufacturer" }

// Regions reports nil: the catalog page covers burton.com's US site
// with no regional split, so it's never excluded by a region filter.
func (s *BurtonScraper) Regions() []string { return nil }

func (s *BurtonScraper) Scrape(ctx context.Context, _ Scope) ([]model.ScrapedBoard, error) {
	if s.fetcher == nil {
		return nil, fmt.Errorf("burton scraper: no fetcher configured")
	}

	body, err := s.fetcher.Fetch(ctx, s.baseURL)
	if err != nil {
		return nil, fmt.Errorf("fetch burton catalog: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse burton catalog: %w", err)
	}

	var boards []model.ScrapedBoard
	doc.Find(".catalog-card").Each(func(_ int, card *goquery.Selection) {
		title := strings.TrimSpace(card.Find(".catalog-card__title").Text())
		href, _ := card.Find("a").Attr("href")
		if title == "" {
			logging.ScrapeDebug("burton: skipping card with no title")
			return
		}

		profile := strings.TrimSpace(card.Find(".catalog-card__profile").Text())
		shape := strings.TrimSpace(card.Find(".catalog-card__shape").Text())
		msrp := parsePriceText(card.Find(".catalog-card__msrp").Text())

		boards = append(boards, model.ScrapedBoard{
			Source:    "manufacturer:burton",
			BrandRaw:  "Burton",
			RawModel:  title,
			Model:     title,
			Profile:   profile,
			Shape:     shape,
			MSRPUsd:   msrp,
			SourceURL: href,
		})
	})

	logging.Scrape("burton: scraped %d boards", len(boards))
	return boards, nil
}
