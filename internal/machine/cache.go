package machine

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/slotengine/internal/domain"
	"github.com/osse101/slotengine/internal/metrics"
	"github.com/osse101/slotengine/internal/slots"
)

// CacheConfig sizes the engine cache.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the default cache sizing.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{Size: DefaultCacheSize, TTL: DefaultCacheTTL}
}

// CacheStats reports cache effectiveness.
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// cachedEngine pairs a validated engine with the machine it was built from.
type cachedEngine struct {
	SchemaVersion string
	Machine       domain.Machine
	Engine        *slots.Engine
	CachedAt      time.Time
}

// engineCache keeps validated engines so a spin does not re-read and
// re-validate the machine configuration.
type engineCache struct {
	lru    *expirable.LRU[string, *cachedEngine]
	hits   atomic.Int64
	misses atomic.Int64
}

func newEngineCache(cfg CacheConfig) *engineCache {
	if cfg.Size <= 0 {
		cfg.Size = DefaultCacheSize
	}
	return &engineCache{
		lru: expirable.NewLRU[string, *cachedEngine](cfg.Size, nil, cfg.TTL),
	}
}

// Get returns the cached entry for id. Entries from an older cache schema are
// dropped and reported as a miss.
func (c *engineCache) Get(id string) (*cachedEngine, bool) {
	entry, found := c.lru.Get(id)
	if !found {
		c.misses.Add(1)
		metrics.EngineCacheLookups.WithLabelValues(metrics.CacheMiss).Inc()
		return nil, false
	}

	if entry.SchemaVersion != CacheSchemaVersion {
		c.lru.Remove(id)
		c.misses.Add(1)
		metrics.EngineCacheLookups.WithLabelValues(metrics.CacheStale).Inc()
		return nil, false
	}

	c.hits.Add(1)
	metrics.EngineCacheLookups.WithLabelValues(metrics.CacheHit).Inc()
	return entry, true
}

// Set stores an engine unless a newer version of the same machine is already cached.
func (c *engineCache) Set(m domain.Machine, e *slots.Engine) {
	if existing, ok := c.lru.Peek(m.ID); ok && existing.SchemaVersion == CacheSchemaVersion && existing.Machine.Version > m.Version {
		return
	}
	c.lru.Add(m.ID, &cachedEngine{
		SchemaVersion: CacheSchemaVersion,
		Machine:       m,
		Engine:        e,
		CachedAt:      time.Now(),
	})
}

// Invalidate drops the engine for id.
func (c *engineCache) Invalidate(id string) {
	c.lru.Remove(id)
}

// Stats returns hit/miss counters and current size.
func (c *engineCache) Stats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
