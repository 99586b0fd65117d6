package reviewsite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeURLMapCache struct {
	values map[string]string
}

func (c *fakeURLMapCache) GetURL(key string) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

func (c *fakeURLMapCache) SetURL(key, url string, _ time.Duration) {
	if c.values == nil {
		c.values = map[string]string{}
	}
	c.values[key] = url
}

func TestResolveReviewUrlPicksBestMatch(t *testing.T) {
	entries := []Entry{
		{Brand: "Burton", Model: "custom camber", URL: "https://example.com/custom"},
		{Brand: "Burton", Model: "custom flying v", URL: "https://example.com/custom-flying-v"},
	}
	url, ok := resolveReviewUrl(entries, nil, "Burton", "Custom Camber")
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/custom", url)
}

func TestResolveReviewUrlFiltersByBrand(t *testing.T) {
	entries := []Entry{
		{Brand: "Nitro", Model: "custom camber", URL: "https://example.com/nitro-custom"},
	}
	_, ok := resolveReviewUrl(entries, nil, "Burton", "Custom Camber")
	assert.False(t, ok)
}

func TestResolveReviewUrlBelowThresholdReturnsFalse(t *testing.T) {
	entries := []Entry{
		{Brand: "Burton", Model: "process", URL: "https://example.com/process"},
	}
	_, ok := resolveReviewUrl(entries, nil, "Burton", "Custom Camber")
	assert.False(t, ok)
}

func TestResolveReviewUrlCachesHitAndMiss(t *testing.T) {
	entries := []Entry{
		{Brand: "Burton", Model: "custom camber", URL: "https://example.com/custom"},
	}
	cache := &fakeURLMapCache{}

	url, ok := resolveReviewUrl(entries, cache, "Burton", "Custom Camber")
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/custom", url)

	url, ok = resolveReviewUrl(nil, cache, "Burton", "Custom Camber")
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/custom", url)
}

func TestResolveReviewUrlCachesMiss(t *testing.T) {
	cache := &fakeURLMapCache{}
	_, ok := resolveReviewUrl(nil, cache, "Burton", "Custom Camber")
	assert.False(t, ok)

	url, found := cache.GetURL(urlMapKey("Burton", "Custom Camber"))
	assert.True(t, found)
	assert.Equal(t, "", url)
}
