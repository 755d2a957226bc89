// Package cache provides the generic sharded cache backing construction
// memoization.
//
// The cache is unbounded by default: memoized constructions are pure
// functions of their inputs, and the invariant that an identical call is
// always a hit requires entries to survive for the life of the cache.
// Callers that prefer bounded memory can set a per-shard soft capacity,
// trading the always-hit guarantee for an upper bound.
//
//	c := cache.NewSharded[string, int](cache.StringHasher)
//	v := c.GetOrCreate("key", func() int { return compute() })
//
// Sharded is safe for concurrent use and must not be copied after
// creation (it contains mutexes).
package cache
