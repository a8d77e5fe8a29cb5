package mapbox

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/couchcryptid/ocean-defender/internal/domain"
	"github.com/couchcryptid/ocean-defender/internal/observability"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CachedGeocoder wraps a Geocoder with an in-memory LRU cache. Report
// locations repeat often, and the map page geocodes the log on every render.
// Lookups that resolve to nothing or fail are remembered for missTTL so a
// render does not wait on the same dead query again.
type CachedGeocoder struct {
	inner   domain.Geocoder
	cache   *lru.Cache[string, domain.GeocodingResult]
	misses  *expirable.LRU[string, struct{}]
	metrics *observability.Metrics
}

// NewCachedGeocoder creates a cache decorator around a geocoder holding at
// most maxEntries results and maxEntries recent misses.
func NewCachedGeocoder(inner domain.Geocoder, maxEntries int, missTTL time.Duration, metrics *observability.Metrics) (*CachedGeocoder, error) {
	cache, err := lru.New[string, domain.GeocodingResult](maxEntries)
	if err != nil {
		return nil, fmt.Errorf("create geocode cache: %w", err)
	}
	if missTTL <= 0 {
		return nil, fmt.Errorf("create geocode cache: miss ttl must be positive, got %s", missTTL)
	}
	return &CachedGeocoder{
		inner:   inner,
		cache:   cache,
		misses:  expirable.NewLRU[string, struct{}](maxEntries, nil, missTTL),
		metrics: metrics,
	}, nil
}

func (c *CachedGeocoder) ForwardGeocode(ctx context.Context, query, country string) (domain.GeocodingResult, error) {
	key := cacheKey(query, country)
	if result, ok := c.cache.Get(key); ok {
		c.metrics.GeocodeCache.WithLabelValues("hit").Inc()
		return result, nil
	}
	if _, ok := c.misses.Get(key); ok {
		c.metrics.GeocodeCache.WithLabelValues("negative_hit").Inc()
		return domain.GeocodingResult{}, nil
	}
	c.metrics.GeocodeCache.WithLabelValues("miss").Inc()

	result, err := c.inner.ForwardGeocode(ctx, query, country)
	if err != nil {
		// A cancelled render says nothing about the query itself.
		if ctx.Err() == nil {
			c.misses.Add(key, struct{}{})
		}
		return result, err
	}
	if result.FormattedAddress == "" {
		c.misses.Add(key, struct{}{})
		return result, nil
	}
	c.cache.Add(key, result)
	return result, nil
}

// cacheKey folds case and surrounding space so "Pantai Kuta" and "pantai kuta " share an entry.
func cacheKey(query, country string) string {
	return strings.ToLower(country) + "|" + strings.ToLower(strings.TrimSpace(query))
}
