package packs

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/feral-file/ff-economy/internal/adapter"
	"github.com/feral-file/ff-economy/internal/domain"
	"github.com/feral-file/ff-economy/internal/store"
	"github.com/feral-file/ff-economy/internal/store/schema"
)

const (
	defaultCacheSize = 64
	defaultCacheTTL  = 5 * time.Minute
)

type cachedPackTypes struct {
	types    []schema.PackType
	cachedAt time.Time
}

// typeCache caches pack type reads. Entries older than the TTL are reloaded.
type typeCache struct {
	store store.Store
	clock adapter.Clock
	ttl   time.Duration
	cache *lru.Cache[string, cachedPackTypes]
}

func newTypeCache(st store.Store, clock adapter.Clock, size int, ttl time.Duration) *typeCache {
	if size <= 0 {
		size = defaultCacheSize
	}
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	// New only fails on a non-positive size
	cache, _ := lru.New[string, cachedPackTypes](size)

	return &typeCache{
		store: st,
		clock: clock,
		ttl:   ttl,
		cache: cache,
	}
}

func (c *typeCache) get(key string) ([]schema.PackType, bool) {
	entry, ok := c.cache.Get(key)
	if !ok {
		return nil, false
	}
	if c.clock.Since(entry.cachedAt) > c.ttl {
		c.cache.Remove(key)
		return nil, false
	}
	return entry.types, true
}

func (c *typeCache) add(key string, types []schema.PackType) {
	c.cache.Add(key, cachedPackTypes{types: types, cachedAt: c.clock.Now()})
}

// list returns the pack types of an asset type, or all of them when assetType is empty
func (c *typeCache) list(ctx context.Context, assetType domain.AssetType) ([]schema.PackType, error) {
	key := "types:" + string(assetType)
	if types, ok := c.get(key); ok {
		return types, nil
	}

	types, err := c.store.GetPackTypes(ctx, assetType)
	if err != nil {
		return nil, fmt.Errorf("failed to get pack types: %w", err)
	}
	c.add(key, types)
	return types, nil
}

// byKey returns a pack type by key, or nil when it does not exist. Misses are not cached.
func (c *typeCache) byKey(ctx context.Context, packKey string) (*schema.PackType, error) {
	key := "key:" + packKey
	if types, ok := c.get(key); ok {
		pt := types[0]
		return &pt, nil
	}

	pt, err := c.store.GetPackTypeByKey(ctx, packKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get pack type: %w", err)
	}
	if pt == nil {
		return nil, nil
	}
	c.add(key, []schema.PackType{*pt})
	return pt, nil
}
