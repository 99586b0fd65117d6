package scrape

import "context"

// Fetcher is the minimal page-fetching capability scrapers need;
// httpcache.PlainFetcher satisfies it. httpcache.BrowserFetcher does
// not, since its Fetch also takes a channel key.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}
