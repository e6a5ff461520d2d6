// Package cache provides caching for nearest-color lookups and rendered
// swatches.
package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/allegro/bigcache/v3"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Config contains cache configuration.
type Config struct {
	LookupCacheSize   int
	SwatchCacheSizeMB int
	SwatchTTL         time.Duration
}

// Manager manages lookup and swatch caches.
type Manager struct {
	lookupCache *lru.Cache[string, int]
	swatchCache *bigcache.BigCache
}

// NewManager creates a new cache manager.
func NewManager(cfg Config) (*Manager, error) {
	// Configure swatch cache
	swatchCacheConfig := bigcache.Config{
		Shards:             64,
		LifeWindow:         cfg.SwatchTTL,
		CleanWindow:        cfg.SwatchTTL / 2,
		MaxEntriesInWindow: 10000,
		MaxEntrySize:       16 * 1024, // 16KB per swatch
		HardMaxCacheSize:   cfg.SwatchCacheSizeMB,
		Verbose:            false,
	}

	swatchCache, err := bigcache.New(context.Background(), swatchCacheConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create swatch cache: %w", err)
	}

	// Create lookup cache
	lookupCache, err := lru.New[string, int](cfg.LookupCacheSize)
	if err != nil {
		swatchCache.Close()
		return nil, fmt.Errorf("failed to create lookup cache: %w", err)
	}

	return &Manager{
		lookupCache: lookupCache,
		swatchCache: swatchCache,
	}, nil
}

// GetClosest retrieves a cached nearest palette code.
func (m *Manager) GetClosest(key string) (int, bool) {
	return m.lookupCache.Get(key)
}

// SetClosest stores a nearest palette code.
func (m *Manager) SetClosest(key string, code int) {
	m.lookupCache.Add(key, code)
}

// GetSwatch retrieves a rendered swatch from cache.
func (m *Manager) GetSwatch(key string) ([]byte, bool) {
	data, err := m.swatchCache.Get(key)
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetSwatch stores a rendered swatch in cache.
func (m *Manager) SetSwatch(key string, data []byte) error {
	return m.swatchCache.Set(key, data)
}

// ClosestKey generates a cache key for a hex lookup. Keys are
// case-insensitive, so "#FFAA00" and "#ffaa00" share an entry.
func ClosestKey(hex string) string {
	return "closest:" + strings.ToLower(hex)
}

// SwatchKey generates a cache key for a swatch strip.
func SwatchKey(family string, n, width, height int) string {
	return fmt.Sprintf("swatch:%s:%d:%dx%d", family, n, width, height)
}

// Stats returns cache statistics.
func (m *Manager) Stats() map[string]interface{} {
	stats := m.swatchCache.Stats()
	return map[string]interface{}{
		"lookup_cache_len":    m.lookupCache.Len(),
		"swatch_cache_len":    m.swatchCache.Len(),
		"swatch_cache_cap":    m.swatchCache.Capacity(),
		"swatch_cache_hits":   stats.Hits,
		"swatch_cache_misses": stats.Misses,
	}
}

// Close closes the cache manager.
func (m *Manager) Close() error {
	return m.swatchCache.Close()
}
