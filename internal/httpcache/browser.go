package httpcache

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"golang.org/x/sync/singleflight"

	"github.com/ryanrhee/snowboard-db-sub000/internal/logging"
)

const browserTimeout = 45 * time.Second

// BrowserFetcher renders pages in a headless browser for scrapers that
// need client-side execution. One headless browser is launched per
// (channel, domain) pair, lazily on first use, and reused across
// requests for that pair; there is no shared per-channel browser
// holding separate per-domain contexts
// (spec §5, §9: "the only cross-task shared mutable state is the
// per-domain browser context map, which needs a single-flight guard").
type BrowserFetcher struct {
	cache *Cache

	mu       sync.Mutex
	browsers map[string]*rod.Browser
	sf       singleflight.Group
}

// NewBrowserFetcher builds a fetcher sharing cache with the plain
// fetcher.
func NewBrowserFetcher(cache *Cache) *BrowserFetcher {
	return &BrowserFetcher{
		cache:    cache,
		browsers: make(map[string]*rod.Browser),
	}
}

// contextFor returns the pooled browser for a (channel, domain) pair,
// creating it on first use. Creation is single-flighted so concurrent
// requests for the same key never race on launching two browsers.
func (f *BrowserFetcher) contextFor(channel, domain string) (*rod.Browser, error) {
	key := channel + "|" + domain
	v, err, _ := f.sf.Do(key, func() (interface{}, error) {
		f.mu.Lock()
		if b, ok := f.browsers[key]; ok {
			f.mu.Unlock()
			return b, nil
		}
		f.mu.Unlock()

		launchURL, err := launcher.New().Headless(true).Launch()
		if err != nil {
			return nil, err
		}
		browser := rod.New().ControlURL(launchURL)
		if err := browser.Connect(); err != nil {
			return nil, err
		}

		f.mu.Lock()
		f.browsers[key] = browser
		f.mu.Unlock()
		logging.BrowserDebug("launched browser context for %q", key)
		return browser, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*rod.Browser), nil
}

// Fetch navigates to url in channel's browser and returns the
// rendered HTML, caching the result like PlainFetcher does.
func (f *BrowserFetcher) Fetch(ctx context.Context, channel, target string) ([]byte, error) {
	if body, ok := f.cache.Get(target, time.Now()); ok {
		return body, nil
	}

	browser, err := f.contextFor(channel, domainOf(target))
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, browserTimeout)
	defer cancel()

	page, err := browser.Context(ctx).Page(proto.TargetCreateTarget{URL: target})
	if err != nil {
		return nil, err
	}
	defer page.Close()

	if err := page.WaitLoad(); err != nil {
		return nil, err
	}
	html, err := page.HTML()
	if err != nil {
		return nil, err
	}

	body := []byte(html)
	if err := f.cache.Set(target, body, time.Now(), defaultTTL); err != nil {
		logging.Cache("failed to cache %s: %v", target, err)
	}
	return body, nil
}

// Close drains every open browser. Called on interrupt or shutdown
// (spec §5: "a signal interrupt must drain active browser contexts").
func (f *BrowserFetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	var firstErr error
	for channel, b := range f.browsers {
		if err := b.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(f.browsers, channel)
	}
	return firstErr
}

func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
