package reviewsite

import (
	"context"
	"encoding/xml"
	"regexp"
	"strings"
	"time"

	"github.com/ryanrhee/snowboard-db-sub000/internal/brand"
	"github.com/ryanrhee/snowboard-db-sub000/internal/logging"
)

// Fetcher is the minimal page-fetching capability review-site lookups
// need; httpcache.PlainFetcher satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Entry is one review page discovered in the site's sitemap.
type Entry struct {
	Brand string
	Model string
	URL   string
}

const sitemapTTL = 24 * time.Hour

var (
	subSitemapNamePattern = regexp.MustCompile(`(?i)snowboardreview`)
	reviewURLPattern      = regexp.MustCompile(`(?i)/snowboard-reviews/([a-z0-9-]+)-snowboard-review/?$`)
)

// multiWordBrandSlugs lists slug prefixes spanning more than one word,
// ordered longest first so "lib-tech" matches before a hypothetical
// "lib" would. Unknown slugs fall back to treating the first
// hyphen-delimited segment as the brand.
var multiWordBrandSlugs = []string{
	"dinosaurs-will-die",
	"gentem-stick",
	"never-summer",
	"lib-tech",
	"t-rice",
}

// SitemapCache persists parsed sitemap entries across runs (spec §6:
// review_sitemap_cache, 24h TTL).
type SitemapCache interface {
	GetSitemap(key string) ([]Entry, bool)
	SetSitemap(key string, entries []Entry, ttl time.Duration)
}

type sitemapIndexXML struct {
	XMLName  xml.Name `xml:"sitemapindex"`
	Sitemaps []struct {
		Loc string `xml:"loc"`
	} `xml:"sitemap"`
}

type urlsetXML struct {
	XMLName xml.Name `xml:"urlset"`
	URLs    []struct {
		Loc string `xml:"loc"`
	} `xml:"url"`
}

// getSitemapIndex fetches indexURL, follows every sub-sitemap whose
// location mentions "snowboardreview", and returns every review URL
// found in those sub-sitemaps parsed into brand/model entries. Results
// are cached for 24h under indexURL.
func getSitemapIndex(ctx context.Context, fetcher Fetcher, cache SitemapCache, indexURL string) ([]Entry, error) {
	if cache != nil {
		if entries, ok := cache.GetSitemap(indexURL); ok {
			return entries, nil
		}
	}

	body, err := fetcher.Fetch(ctx, indexURL)
	if err != nil {
		return nil, err
	}

	var index sitemapIndexXML
	if err := xml.Unmarshal(body, &index); err != nil {
		return nil, err
	}

	var entries []Entry
	for _, sm := range index.Sitemaps {
		if !subSitemapNamePattern.MatchString(sm.Loc) {
			continue
		}
		subBody, err := fetcher.Fetch(ctx, sm.Loc)
		if err != nil {
			logging.ReviewSite("failed to fetch sub-sitemap %s: %v", sm.Loc, err)
			continue
		}
		var urlset urlsetXML
		if err := xml.Unmarshal(subBody, &urlset); err != nil {
			logging.ReviewSite("failed to parse sub-sitemap %s: %v", sm.Loc, err)
			continue
		}
		for _, u := range urlset.URLs {
			m := reviewURLPattern.FindStringSubmatch(u.Loc)
			if m == nil {
				continue
			}
			b, model := brandFromSlug(m[1])
			entries = append(entries, Entry{Brand: b, Model: model, URL: u.Loc})
		}
	}

	if cache != nil {
		cache.SetSitemap(indexURL, entries, sitemapTTL)
	}
	logging.ReviewSiteDebug("parsed %d review entries from %s", len(entries), indexURL)
	return entries, nil
}

// brandFromSlug splits a review-page slug into a canonical brand name
// and the remaining model slug, matching multi-word brand prefixes
// first and falling back to the leading hyphen segment.
func brandFromSlug(slug string) (brandName, modelSlug string) {
	for _, prefix := range multiWordBrandSlugs {
		if slug == prefix {
			return canonicalFromSlug(prefix), ""
		}
		if strings.HasPrefix(slug, prefix+"-") {
			return canonicalFromSlug(prefix), slugToModelWords(strings.TrimPrefix(slug, prefix+"-"))
		}
	}

	parts := strings.SplitN(slug, "-", 2)
	if len(parts) == 2 {
		return canonicalFromSlug(parts[0]), slugToModelWords(parts[1])
	}
	return canonicalFromSlug(slug), ""
}

func canonicalFromSlug(slug string) string {
	return brand.New(strings.ReplaceAll(slug, "-", " ")).Canonical()
}

func slugToModelWords(slug string) string {
	return strings.ReplaceAll(slug, "-", " ")
}
