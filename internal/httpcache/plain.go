package httpcache

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ryanrhee/snowboard-db-sub000/internal/logging"
)

// FetchError distinguishes transient (retryable) from permanent fetch
// failures (spec §7 error taxonomy).
type FetchError struct {
	URL        string
	StatusCode int
	Transient  bool
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error { return e.Err }

const (
	plainTimeout   = 15 * time.Second
	plainMaxRetry  = 3
	plainBaseDelay = 2 * time.Second
	defaultTTL     = 24 * time.Hour
)

// PlainFetcher fetches pages over plain HTTP(S), retrying transient
// failures with exponential backoff, and caches every successful body.
type PlainFetcher struct {
	client *http.Client
	cache  *Cache
}

// NewPlainFetcher builds a fetcher bounded by the 15s plain-fetch
// timeout, writing successful responses into cache.
func NewPlainFetcher(cache *Cache) *PlainFetcher {
	return &PlainFetcher{
		client: &http.Client{Timeout: plainTimeout},
		cache:  cache,
	}
}

// Fetch returns the cached body for url if present and fresh;
// otherwise it performs a GET, retrying 429/503 responses up to
// plainMaxRetry times with exponential backoff, and caches the body
// on success.
func (f *PlainFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if body, ok := f.cache.Get(url, time.Now()); ok {
		return body, nil
	}

	var lastErr error
	delay := plainBaseDelay
	for attempt := 0; attempt <= plainMaxRetry; attempt++ {
		body, status, err := f.doRequest(ctx, url)
		if err == nil && status == http.StatusOK {
			if setErr := f.cache.Set(url, body, time.Now(), defaultTTL); setErr != nil {
				logging.Cache("failed to cache %s: %v", url, setErr)
			}
			return body, nil
		}

		if err != nil {
			lastErr = &FetchError{URL: url, Transient: true, Err: err}
		} else if status == http.StatusTooManyRequests || status == http.StatusServiceUnavailable {
			lastErr = &FetchError{URL: url, StatusCode: status, Transient: true}
		} else {
			return nil, &FetchError{URL: url, StatusCode: status, Transient: false}
		}

		if attempt == plainMaxRetry {
			break
		}
		logging.ScrapeDebug("retrying %s after %v (attempt %d): %v", url, delay, attempt+1, lastErr)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		delay *= 2
	}
	return nil, lastErr
}

func (f *PlainFetcher) doRequest(ctx context.Context, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}
