package ephemeris

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/echoflaresat/sunvec/earth"
)

// ErrInvalidCacheSize is returned by NewCache for a non-positive size.
var ErrInvalidCacheSize = errors.New("cache size must be positive")

// Cache memoises samples by instant (millisecond key). The pipeline is
// deterministic, so entries never go stale. Safe for concurrent use.
type Cache struct {
	model  earth.Model
	lru    *lru.Cache // unix ms -> Sample
	hits   atomic.Uint64
	misses atomic.Uint64
}

// CacheStats counts lookups since the cache was created.
type CacheStats struct {
	Hits   uint64 `json:"hits" yaml:"hits"`
	Misses uint64 `json:"misses" yaml:"misses"`
}

// NewCache returns a cache holding at most size samples computed by m.
func NewCache(size int, m earth.Model) (*Cache, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCacheSize, size)
	}
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Cache{model: m, lru: c}, nil
}

// Get returns the sample for t, computing it on a miss. Instants within the
// same millisecond share an entry.
func (c *Cache) Get(t time.Time) Sample {
	key := t.UnixMilli()
	if v, ok := c.lru.Get(key); ok {
		c.hits.Add(1)
		return v.(Sample)
	}

	c.misses.Add(1)
	s := Compute(c.model, t)
	c.lru.Add(key, s)
	return s
}

// Model returns the model used on cache misses.
func (c *Cache) Model() earth.Model {
	return c.model
}

// Len returns the number of cached samples.
func (c *Cache) Len() int {
	return c.lru.Len()
}

func (c *Cache) Stats() CacheStats {
	return CacheStats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}
