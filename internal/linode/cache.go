package linode

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// defaultMetadataTTL is how long cached metadata (regions, types, images)
// stays fresh. These catalogues change on the order of weeks.
const defaultMetadataTTL = 15 * time.Minute

// metadataCache is a TTL cache for read-mostly catalogue endpoints.
// Concurrent fetches for the same key are deduplicated with singleflight,
// so a burst of tool calls produces at most one upstream request per key.
type metadataCache struct {
	ttl   time.Duration
	group singleflight.Group

	mu      sync.RWMutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	value   any
	expires time.Time
}

func newMetadataCache(ttl time.Duration) *metadataCache {
	return &metadataCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

// get returns the cached value for key, fetching it with fetch on a miss
// or after expiry. Errors are not cached.
func (c *metadataCache) get(ctx context.Context, key string, fetch func() (any, error)) (any, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && time.Now().Before(entry.expires) {
		return entry.value, nil
	}

	ch := c.group.DoChan(key, func() (any, error) {
		value, err := fetch()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = cacheEntry{value: value, expires: time.Now().Add(c.ttl)}
		c.mu.Unlock()
		return value, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val, nil
	}
}

// invalidate drops a cached key. Used by tests and by callers that know
// the catalogue changed.
func (c *metadataCache) invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}
