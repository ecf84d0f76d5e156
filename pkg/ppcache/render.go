package ppcache

import (
	"context"

	"golang.org/x/sync/singleflight"
)

// Renderer renders cache-missed content. The returned bytes are what gets
// stored and returned on a hit.
type Renderer func(ctx context.Context) ([]byte, error)

// CoalescingCache wraps a Cache with request coalescing: concurrent
// GetOrRender calls for the same key share a single in-flight render
// instead of each calling render independently, which matters when a large
// document is requested by several clients at once right after a restart.
type CoalescingCache struct {
	Cache
	group singleflight.Group
}

// NewCoalescingCache wraps backend with singleflight-based coalescing.
func NewCoalescingCache(backend Cache) *CoalescingCache {
	return &CoalescingCache{Cache: backend}
}

// GetOrRender returns the cached value for key, calling render and storing
// its result on a miss. Concurrent calls for the same key block on the same
// render rather than each invoking render separately.
func (c *CoalescingCache) GetOrRender(ctx context.Context, key string, render Renderer) ([]byte, error) {
	if data, hit, err := c.Cache.Get(ctx, key); err != nil {
		return nil, err
	} else if hit {
		return data, nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		data, hit, err := c.Cache.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if hit {
			return data, nil
		}

		data, err = render(ctx)
		if err != nil {
			return nil, err
		}
		if err := c.Cache.Set(ctx, key, data, 0); err != nil {
			return nil, err
		}
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}
