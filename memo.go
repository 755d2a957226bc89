package euclid

import (
	"golang.org/x/sync/singleflight"

	"github.com/gogeom/euclid/cache"
)

// Memo is the content-addressed memoization cache for constructions.
// Keys are canonical operation signatures (operation kind plus the exact
// identities of the inputs); every construction is a pure function of
// its inputs, so a key always maps to a single result.
//
// The memo is unbounded by default and grows monotonically — the cost of
// the always-hit guarantee is memory, a documented tradeoff. Clear
// resets it, which tests use to isolate cache effects. Failed
// constructions are never cached.
//
// Memo is safe for concurrent use: lookups go through the sharded cache
// and misses are collapsed per key by a singleflight group, so a given
// construction is computed at most once even under contention.
type Memo struct {
	entries *cache.Sharded[string, any]
	group   singleflight.Group
}

// NewMemo creates an unbounded memo.
func NewMemo() *Memo {
	return &Memo{
		entries: cache.NewSharded[string, any](cache.StringHasher),
	}
}

// NewMemoWithCapacity creates a memo with a per-shard soft capacity.
// Bounding the memo trades the re-invocation-is-always-a-hit invariant
// for bounded memory.
func NewMemoWithCapacity(capacity int) *Memo {
	return &Memo{
		entries: cache.NewShardedWithCapacity[string, any](capacity, cache.StringHasher),
	}
}

// getOrCompute returns the memoized value for key, invoking compute at
// most once per key on a miss. Errors are returned to every waiting
// caller and never cached.
func (m *Memo) getOrCompute(key string, compute func() (any, error)) (any, error) {
	if v, ok := m.entries.Get(key); ok {
		return v, nil
	}
	v, err, _ := m.group.Do(key, func() (any, error) {
		if v, ok := m.entries.Get(key); ok {
			return v, nil
		}
		v, err := compute()
		if err != nil {
			return nil, err
		}
		m.entries.Set(key, v)
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Clear removes every memoized result.
func (m *Memo) Clear() {
	m.entries.Clear()
}

// Len returns the number of memoized results.
func (m *Memo) Len() int {
	return m.entries.Len()
}

// Stats returns hit/miss statistics for the memo.
func (m *Memo) Stats() cache.Stats {
	return m.entries.Stats()
}

// ResetStats zeroes the hit/miss counters without touching the
// memoized results.
func (m *Memo) ResetStats() {
	m.entries.ResetStats()
}
