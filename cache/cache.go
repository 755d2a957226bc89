package cache

import (
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// Default configuration constants.
const (
	// ShardCount is the number of shards for reduced lock contention.
	// Must be a power of 2 for fast modulo via bitwise AND.
	ShardCount = 16

	// shardMask is used for fast shard selection (ShardCount - 1).
	shardMask = ShardCount - 1
)

// Hasher computes a hash for a key, used for shard selection.
type Hasher[K any] func(K) uint64

// StringHasher computes the xxhash-64 digest of a string key.
func StringHasher(s string) uint64 {
	return xxhash.Sum64String(s)
}

// Uint64Hasher returns the key itself as the hash (identity hash).
func Uint64Hasher(u uint64) uint64 {
	return u
}

// Sharded is a thread-safe, sharded cache for memoization workloads.
//
// Unlike a bounded LRU, a Sharded cache is unbounded by default: a
// memoized construction must stay cached for the lifetime of the cache
// so that re-invoking an operation with equal inputs is always a hit.
// A soft capacity can be set for callers that prefer bounded memory;
// when a shard exceeds it, its least recently touched entries are shed.
//
// Sharded must not be copied after creation.
type Sharded[K comparable, V any] struct {
	shards   [ShardCount]*shard[K, V]
	hasher   Hasher[K]
	capacity int // Per-shard soft capacity; 0 means unbounded.

	hits   atomic.Uint64
	misses atomic.Uint64
}

// shard is a single shard with its own lock.
type shard[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]*entry[V]
	tick    int64
}

// entry holds a cached value with its last-touched tick.
type entry[V any] struct {
	value V
	atime int64
}

// NewSharded creates an unbounded sharded cache. The hasher selects the
// shard for a key; use StringHasher or Uint64Hasher for common key types.
func NewSharded[K comparable, V any](hasher Hasher[K]) *Sharded[K, V] {
	return NewShardedWithCapacity[K, V](0, hasher)
}

// NewShardedWithCapacity creates a sharded cache with a per-shard soft
// capacity. A capacity of 0 means unbounded.
func NewShardedWithCapacity[K comparable, V any](capacity int, hasher Hasher[K]) *Sharded[K, V] {
	c := &Sharded[K, V]{
		hasher:   hasher,
		capacity: capacity,
	}
	for i := range c.shards {
		c.shards[i] = &shard[K, V]{entries: make(map[K]*entry[V])}
	}
	return c
}

// getShard returns the shard for a given key.
func (c *Sharded[K, V]) getShard(key K) *shard[K, V] {
	return c.shards[c.hasher(key)&shardMask]
}

// Get retrieves a cached value by key.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *Sharded[K, V]) Get(key K) (V, bool) {
	s := c.getShard(key)

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		c.misses.Add(1)
		var zero V
		return zero, false
	}

	s.mu.Lock()
	s.tick++
	e.atime = s.tick
	v := e.value
	s.mu.Unlock()

	c.hits.Add(1)
	return v, true
}

// Set stores a value in the cache.
func (c *Sharded[K, V]) Set(key K, value V) {
	s := c.getShard(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tick++
	if e, ok := s.entries[key]; ok {
		e.value = value
		e.atime = s.tick
		return
	}
	s.entries[key] = &entry[V]{value: value, atime: s.tick}
	if c.capacity > 0 && len(s.entries) > c.capacity {
		s.shedOldest(c.capacity)
	}
}

// GetOrCreate returns the cached value for key, calling create to
// produce it on a miss. create runs with the shard lock held, so at most
// one creation happens per key within a shard.
func (c *Sharded[K, V]) GetOrCreate(key K, create func() V) V {
	s := c.getShard(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tick++
	if e, ok := s.entries[key]; ok {
		e.atime = s.tick
		c.hits.Add(1)
		return e.value
	}
	c.misses.Add(1)

	value := create()
	s.entries[key] = &entry[V]{value: value, atime: s.tick}
	if c.capacity > 0 && len(s.entries) > c.capacity {
		s.shedOldest(c.capacity)
	}
	return value
}

// Delete removes an entry, reporting whether it was present.
func (c *Sharded[K, V]) Delete(key K) bool {
	s := c.getShard(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; ok {
		delete(s.entries, key)
		return true
	}
	return false
}

// Clear removes all entries from the cache.
func (c *Sharded[K, V]) Clear() {
	for _, s := range c.shards {
		s.mu.Lock()
		s.entries = make(map[K]*entry[V])
		s.tick = 0
		s.mu.Unlock()
	}
}

// Len returns the total number of entries across all shards.
func (c *Sharded[K, V]) Len() int {
	total := 0
	for _, s := range c.shards {
		s.mu.RLock()
		total += len(s.entries)
		s.mu.RUnlock()
	}
	return total
}

// Stats returns current cache statistics.
func (c *Sharded[K, V]) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}
	return Stats{
		Len:     c.Len(),
		Hits:    hits,
		Misses:  misses,
		HitRate: hitRate,
	}
}

// ResetStats resets the hit and miss counters to zero.
func (c *Sharded[K, V]) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
}

// shedOldest drops least recently touched entries until the shard is at
// 3/4 of the target. Caller must hold the shard lock.
func (s *shard[K, V]) shedOldest(capacity int) {
	target := capacity * 3 / 4
	if target < 1 {
		target = 1
	}
	for len(s.entries) > target {
		var oldestKey K
		oldest := int64(-1)
		for k, e := range s.entries {
			if oldest < 0 || e.atime < oldest {
				oldest = e.atime
				oldestKey = k
			}
		}
		delete(s.entries, oldestKey)
	}
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Hits is the number of cache hits.
	Hits uint64
	// Misses is the number of cache misses.
	Misses uint64
	// HitRate is the cache hit rate, 0.0 to 1.0.
	HitRate float64
}
