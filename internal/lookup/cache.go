// internal/lookup/cache.go
package lookup

import (
	"context"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedTemperature wraps a TemperatureResolver with an LRU of recent
// successful answers. Misses and failures are not cached, so a service
// outage heals as soon as the service does.
type CachedTemperature struct {
	inner TemperatureResolver
	cache *lru.Cache[string, float64]
}

func NewCachedTemperature(inner TemperatureResolver, size int) *CachedTemperature {
	cache, _ := lru.New[string, float64](size)
	return &CachedTemperature{inner: inner, cache: cache}
}

func (c *CachedTemperature) TemperatureC(ctx context.Context, city string) (float64, bool) {
	key := cacheKey(city)
	if temp, ok := c.cache.Get(key); ok {
		return temp, true
	}
	temp, ok := c.inner.TemperatureC(ctx, city)
	if ok {
		c.cache.Add(key, temp)
	}
	return temp, ok
}

// CachedFood is the same wrapper for food energy lookups.
type CachedFood struct {
	inner FoodResolver
	cache *lru.Cache[string, FoodInfo]
}

func NewCachedFood(inner FoodResolver, size int) *CachedFood {
	cache, _ := lru.New[string, FoodInfo](size)
	return &CachedFood{inner: inner, cache: cache}
}

func (c *CachedFood) FoodEnergy(ctx context.Context, query string) (FoodInfo, bool) {
	key := cacheKey(query)
	if info, ok := c.cache.Get(key); ok {
		return info, true
	}
	info, ok := c.inner.FoodEnergy(ctx, query)
	if ok {
		c.cache.Add(key, info)
	}
	return info, ok
}

func cacheKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
