package dispatch

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
	"tracker/internal/entities"
	"tracker/internal/pkg/metrics"
)

type cacheEntry struct {
	lines   []entities.Dispatch
	expires time.Time
}

// linesCache строки LTI по номеру. Одновременные промахи по одному номеру
// схлопываются в один запрос.
type linesCache struct {
	ttl time.Duration
	now func() time.Time

	group   singleflight.Group
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

func newLinesCache(ttl time.Duration) *linesCache {
	return &linesCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

func (c *linesCache) get(
	ctx context.Context,
	number string,
	load func(ctx context.Context) ([]entities.Dispatch, error),
) ([]entities.Dispatch, error) {
	c.mu.RLock()
	entry, ok := c.entries[number]
	c.mu.RUnlock()

	if ok && c.now().Before(entry.expires) {
		metrics.LookupCache.WithLabelValues("hit").Inc()
		return entry.lines, nil
	}
	metrics.LookupCache.WithLabelValues("miss").Inc()

	v, err, _ := c.group.Do(number, func() (interface{}, error) {
		lines, err := load(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[number] = cacheEntry{lines: lines, expires: c.now().Add(c.ttl)}
		c.mu.Unlock()

		return lines, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]entities.Dispatch), nil
}

func (c *linesCache) invalidate(numbers ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, n := range numbers {
		delete(c.entries, n)
	}
}
