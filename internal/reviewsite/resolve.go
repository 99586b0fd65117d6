package reviewsite

import (
	"strings"
	"time"

	"github.com/ryanrhee/snowboard-db-sub000/internal/logging"
)

const (
	similarityThreshold = 0.6
	urlMapTTL            = 7 * 24 * time.Hour
)

// URLMapCache persists resolved (or failed) brand/model lookups across
// runs (spec §6: review_url_map, 7-day TTL, caches misses too so a
// board that never matches isn't re-scored every run).
type URLMapCache interface {
	GetURL(key string) (url string, found bool)
	SetURL(key, url string, ttl time.Duration)
}

func urlMapKey(brandName, model string) string {
	return strings.ToLower(brandName) + "|" + strings.ToLower(model)
}

// resolveReviewUrl finds the entry whose brand matches brandName and
// whose model is the best Sørensen-Dice bigram match for model, among
// entries scoring at least similarityThreshold. A cache hit (including
// a cached miss, stored as an empty URL) short-circuits scoring.
func resolveReviewUrl(entries []Entry, cache URLMapCache, brandName, model string) (string, bool) {
	key := urlMapKey(brandName, model)
	if cache != nil {
		if url, found := cache.GetURL(key); found {
			return url, url != ""
		}
	}

	var bestURL string
	var bestScore float64
	for _, e := range entries {
		if !strings.EqualFold(e.Brand, brandName) {
			continue
		}
		score := DiceSimilarity(e.Model, model)
		if score > bestScore {
			bestScore = score
			bestURL = e.URL
		}
	}

	if bestScore < similarityThreshold {
		logging.ReviewSiteDebug("no review match for %s %s (best score %.2f)", brandName, model, bestScore)
		if cache != nil {
			cache.SetURL(key, "", urlMapTTL)
		}
		return "", false
	}

	logging.ReviewSiteDebug("matched %s %s -> %s (score %.2f)", brandName, model, bestURL, bestScore)
	if cache != nil {
		cache.SetURL(key, bestURL, urlMapTTL)
	}
	return bestURL, true
}
