package main

import (
	"fmt"

	"github.com/ryanrhee/snowboard-db-sub000/internal/config"
	"github.com/ryanrhee/snowboard-db-sub000/internal/httpcache"
	"github.com/ryanrhee/snowboard-db-sub000/internal/pipeline"
	"github.com/ryanrhee/snowboard-db-sub000/internal/reviewsite"
	"github.com/ryanrhee/snowboard-db-sub000/internal/scrape"
	"github.com/ryanrhee/snowboard-db-sub000/internal/store"
)

// theGoodRideSitemapURL is the one review site this repository's
// reference enricher targets; sitemap.go's sub-sitemap filter
// (subSitemapNamePattern) is written against thegoodride.com's
// sitemap structure.
const (
	reviewSiteName      = "the-good-ride"
	theGoodRideSitemapURL = "https://www.thegoodride.com/sitemap_index.xml"
)

// rig bundles every live handle a CLI command needs; Close releases
// them in reverse order of acquisition.
type rig struct {
	cfg          *config.Config
	store        *store.Store
	cache        *store.CacheDB
	plainFetcher *httpcache.PlainFetcher
	orchestrator *pipeline.Orchestrator
}

func buildRig(cfg *config.Config) (*rig, error) {
	primary, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open primary store: %w", err)
	}

	cacheDB, err := store.OpenCacheDB(cfg.CacheDBPath)
	if err != nil {
		primary.Close()
		return nil, fmt.Errorf("open cache store: %w", err)
	}

	if err := store.MigrateLegacyCache(primary, cacheDB); err != nil {
		primary.Close()
		cacheDB.Close()
		return nil, fmt.Errorf("migrate legacy cache: %w", err)
	}

	plain := httpcache.NewPlainFetcher(cacheDB.HTTP)
	browser := httpcache.NewBrowserFetcher(cacheDB.HTTP)

	for _, s := range scrape.ALL_SCRAPERS.Select(scrape.Scope{}) {
		bindFetcher(s, plain, browser)
	}

	enricher := &reviewsite.Enricher{
		SiteName:   reviewSiteName,
		SitemapURL: theGoodRideSitemapURL,
		Fetcher:    plain,
		Sitemaps:   cacheDB,
		URLMap:     cacheDB,
		Delay:      cfg.ScrapeDelay(),
	}

	orch := &pipeline.Orchestrator{
		Store:                  primary,
		Cache:                  cacheDB,
		Scrapers:               scrape.ALL_SCRAPERS,
		Review:                 enricher,
		Rates:                  map[string]float64{"KRW": cfg.KRWToUSDRate},
		MaxConcurrentRetailers: cfg.MaxConcurrentRetailers,
	}

	return &rig{
		cfg:          cfg,
		store:        primary,
		cache:        cacheDB,
		plainFetcher: plain,
		orchestrator: orch,
	}, nil
}

// bindFetcher wires each reference scraper to the fetcher appropriate
// for it. Today every reference adapter is a plain-HTTP goquery
// scrape; browser is wired in for parity with the teacher's dual
// fetcher setup and is ready for a future JS-rendered adapter.
func bindFetcher(s scrape.Scraper, plain *httpcache.PlainFetcher, _ *httpcache.BrowserFetcher) {
	switch v := s.(type) {
	case *scrape.TacticsScraper:
		v.WithFetcher(plain)
	case *scrape.BurtonScraper:
		v.WithFetcher(plain)
	}
}

func (r *rig) Close() {
	if r.cache != nil {
		r.cache.Close()
	}
	if r.store != nil {
		r.store.Close()
	}
}
