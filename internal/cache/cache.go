package cache

import (
	"context"

	"github.com/lumipallolabs/codemap/internal/counter"
	"github.com/lumipallolabs/codemap/internal/logging"
	"github.com/lumipallolabs/codemap/internal/model"
)

// Cache memoizes line statistics per path for the life of the process.
// Keys are absolute lexical paths as produced by filepath.Abs; symlinks are
// not resolved, so a directory reached through a link has its own entries.
// It is not safe for concurrent use.
type Cache struct {
	counter counter.Counter
	entries map[string]model.Stats
}

// New creates an empty cache backed by the given counter
func New(c counter.Counter) *Cache {
	return &Cache{
		counter: c,
		entries: make(map[string]model.Stats),
	}
}

// Get returns the stats for path, counting it on first use.
// A failed or empty count is cached as zero stats.
func (c *Cache) Get(ctx context.Context, path string) model.Stats {
	if stats, ok := c.entries[path]; ok {
		return stats
	}

	records, err := c.counter.Count(ctx, path)
	if err != nil {
		logging.Counter.WithError(err).WithField("path", path).Debug("count failed, using zero stats")
		c.entries[path] = model.Stats{}
		return model.Stats{}
	}

	stats := counter.Sum(records)
	c.entries[path] = stats
	return stats
}

// InvalidateAll drops every cached value
func (c *Cache) InvalidateAll() {
	logging.Debug.WithField("dropped", len(c.entries)).Debug("stats cache invalidated")
	c.entries = make(map[string]model.Stats)
}

// Len returns the number of cached paths
func (c *Cache) Len() int {
	return len(c.entries)
}
