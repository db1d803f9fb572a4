// Package cache implements the process-wide TTL cache used by read-heavy
// summary endpoints (inventario, productos finales). Any stock-affecting
// write must invalidate the affected keys.
package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultTTL matches the original deployment default.
const DefaultTTL = 600 * time.Second

type entry struct {
	value   interface{}
	expires time.Time
}

// Stats are cumulative usage counters, read via GET /v1/cache/stats.
type Stats struct {
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
	Sets    int64 `json:"sets"`
	Deletes int64 `json:"deletes"`
	Entries int   `json:"entries"`
}

// Cache is a mutex-guarded in-memory key/value store with per-entry TTL.
// It is owned by the composition root and injected explicitly — never a
// package-level global.
type Cache struct {
	mu    sync.RWMutex
	data  map[string]entry
	ttl   time.Duration
	stats Stats
}

func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{data: make(map[string]entry), ttl: ttl}
}

// Set stores value under key with the default TTL.
func (c *Cache) Set(key string, value interface{}) {
	c.SetTTL(key, value, c.ttl)
}

// SetTTL stores value under key with an explicit TTL override.
func (c *Cache) SetTTL(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = entry{value: value, expires: time.Now().Add(ttl)}
	c.stats.Sets++
}

// Get returns the cached value, or (nil, false) on miss or expiry.
// Expired entries are dropped on read.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.data[key]
	if !ok {
		c.stats.Misses++
		return nil, false
	}
	if time.Now().After(e.expires) {
		delete(c.data, key)
		c.stats.Misses++
		return nil, false
	}
	c.stats.Hits++
	return e.value, true
}

// Invalidate removes a single key.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.data[key]; ok {
		delete(c.data, key)
		c.stats.Deletes++
	}
}

// InvalidatePattern removes every key containing pattern as a substring.
func (c *Cache) InvalidatePattern(pattern string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for k := range c.data {
		if strings.Contains(k, pattern) {
			delete(c.data, k)
			n++
		}
	}
	c.stats.Deletes += int64(n)
	if n > 0 {
		log.Debug().Str("pattern", pattern).Int("entries", n).Msg("cache invalidate pattern")
	}
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.Deletes += int64(len(c.data))
	c.data = make(map[string]entry)
}

// GetStats returns a snapshot of the usage counters.
func (c *Cache) GetStats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s := c.stats
	s.Entries = len(c.data)
	return s
}

// Len returns the current number of entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
