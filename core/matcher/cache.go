package matcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// LoadFunc loads the corpus entries for one source.
type LoadFunc func(ctx context.Context) ([]Entry, error)

// cached is a built matcher and when it was built.
type cached struct {
	matcher *TitleMatcher
	built   time.Time
}

// Cache keeps built matchers per corpus source for a TTL.
// A zero TTL disables caching: every Get rebuilds.
type Cache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]cached
	sf      singleflight.Group
}

// NewCache creates an empty cache.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cached),
	}
}

func (c *Cache) fresh(key string) (*TitleMatcher, bool) {
	if c.ttl <= 0 {
		return nil, false
	}
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || c.now().Sub(entry.built) > c.ttl {
		return nil, false
	}
	return entry.matcher, true
}

// Get returns the matcher for key, building it with load when it is missing or
// expired. Concurrent callers for the same key share a single load.
func (c *Cache) Get(ctx context.Context, key string, load LoadFunc) (*TitleMatcher, error) {
	if m, ok := c.fresh(key); ok {
		return m, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		// Double-check after winning the flight
		if m, ok := c.fresh(key); ok {
			return m, nil
		}

		entries, err := load(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load corpus %q: %w", key, err)
		}

		m := New(NewCorpus(entries))
		if c.ttl > 0 {
			c.mu.Lock()
			c.entries[key] = cached{matcher: m, built: c.now()}
			c.mu.Unlock()
		}
		return m, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*TitleMatcher), nil
}
