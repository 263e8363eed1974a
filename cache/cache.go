// Package cache provides memoization for grammar derivations.
// Rewrite is a pure function of its parameters, so identical
// (axiom, rules, iterations) triples always derive the same string;
// caching pays off in editors and sweeps that re-derive the same
// grammar under many seeds.
package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"sync"

	"github.com/Sayama3/L-System/grammar"
)

// DerivationCache caches rewrite results keyed by a parameter hash.
type DerivationCache struct {
	mu        sync.RWMutex
	cache     map[string]string
	maxSize   int
	hits      int64
	misses    int64
	evictions int64
}

// NewDerivationCache creates a cache with the specified maximum size.
// When the cache is full, oldest entries are evicted (FIFO).
// Set maxSize to 0 for unlimited cache.
func NewDerivationCache(maxSize int) *DerivationCache {
	return &DerivationCache{
		cache:   make(map[string]string),
		maxSize: maxSize,
	}
}

// hashParams creates a deterministic hash of the derivation inputs.
// Angle and MaxLength are excluded: the angle only affects
// interpretation, and MaxLength only affects the failure bound.
func hashParams(p grammar.Params) string {
	h := sha256.New()
	h.Write([]byte(p.Axiom))
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(p.Iterations))
	h.Write(buf)
	// Sorted keys for determinism
	for _, sym := range p.Rules.Symbols() {
		binary.BigEndian.PutUint64(buf, uint64(sym))
		h.Write(buf)
		h.Write([]byte(p.Rules[sym]))
		h.Write([]byte{0})
	}
	return string(h.Sum(nil))
}

// Get retrieves a cached derivation for the given parameters.
// Returns ("", false) if not found.
func (c *DerivationCache) Get(p grammar.Params) (string, bool) {
	key := hashParams(p)

	c.mu.Lock()
	defer c.mu.Unlock()

	if symbols, ok := c.cache[key]; ok {
		c.hits++
		return symbols, true
	}
	c.misses++
	return "", false
}

// Put stores a derivation in the cache.
func (c *DerivationCache) Put(p grammar.Params, symbols string) {
	key := hashParams(p)

	c.mu.Lock()
	defer c.mu.Unlock()

	// Evict if necessary (simple FIFO - remove first key found)
	if c.maxSize > 0 && len(c.cache) >= c.maxSize {
		for k := range c.cache {
			delete(c.cache, k)
			c.evictions++
			break
		}
	}

	c.cache[key] = symbols
}

// Rewrite derives via grammar.Rewrite with caching. Errors are not
// cached; invalid parameters fail on every call.
func (c *DerivationCache) Rewrite(p grammar.Params) (string, error) {
	if symbols, ok := c.Get(p); ok {
		return symbols, nil
	}

	symbols, err := grammar.Rewrite(p)
	if err != nil {
		return "", err
	}
	c.Put(p, symbols)
	return symbols, nil
}

// Clear removes all entries from the cache.
func (c *DerivationCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]string)
}

// Size returns the current number of cached entries.
func (c *DerivationCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

// Stats returns cache statistics.
type Stats struct {
	Size      int
	MaxSize   int
	Hits      int64
	Misses    int64
	Evictions int64
	HitRate   float64
}

// Stats returns cache statistics.
func (c *DerivationCache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := c.hits + c.misses
	hitRate := 0.0
	if total > 0 {
		hitRate = float64(c.hits) / float64(total)
	}

	return Stats{
		Size:      len(c.cache),
		MaxSize:   c.maxSize,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		HitRate:   hitRate,
	}
}
