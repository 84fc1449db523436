package catalog

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache holds the fetched catalog for the remainder of the process, so a
// multi-set run performs the network fetch exactly once. There is no
// time-based expiry; the cache lives as long as its owner does.
type Cache struct {
	fetcher Fetcher

	mu      sync.RWMutex
	catalog *Catalog
	sf      singleflight.Group
}

// NewCache wraps a fetcher with populate-once semantics.
func NewCache(fetcher Fetcher) *Cache {
	return &Cache{fetcher: fetcher}
}

// Get returns the cached catalog, fetching it on first use. Concurrent
// callers share a single fetch via singleflight.
func (c *Cache) Get(ctx context.Context) (*Catalog, error) {
	c.mu.RLock()
	cached := c.catalog
	c.mu.RUnlock()

	if cached != nil {
		return cached, nil
	}

	result, err, _ := c.sf.Do("catalog", func() (any, error) {
		// Double-check after acquiring the singleflight lock
		c.mu.RLock()
		cached := c.catalog
		c.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		cat, err := c.fetcher.Fetch(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.catalog = cat
		c.mu.Unlock()

		return cat, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*Catalog), nil
}
