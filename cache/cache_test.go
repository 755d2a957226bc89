package cache

import (
	"fmt"
	"sync"
	"testing"
)

func TestGetSet(t *testing.T) {
	c := NewSharded[string, int](StringHasher)

	if _, ok := c.Get("missing"); ok {
		t.Errorf("Get on empty cache returned ok")
	}

	c.Set("a", 1)
	c.Set("b", 2)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v; want 1, true", v, ok)
	}
	if v, ok := c.Get("b"); !ok || v != 2 {
		t.Errorf("Get(b) = %d, %v; want 2, true", v, ok)
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}

	// Overwrite keeps a single entry.
	c.Set("a", 10)
	if v, _ := c.Get("a"); v != 10 {
		t.Errorf("Get(a) after overwrite = %d, want 10", v)
	}
	if c.Len() != 2 {
		t.Errorf("Len after overwrite = %d, want 2", c.Len())
	}
}

func TestGetOrCreate(t *testing.T) {
	c := NewSharded[string, int](StringHasher)

	calls := 0
	create := func() int {
		calls++
		return 42
	}

	if v := c.GetOrCreate("k", create); v != 42 {
		t.Errorf("GetOrCreate = %d, want 42", v)
	}
	if v := c.GetOrCreate("k", create); v != 42 {
		t.Errorf("GetOrCreate (cached) = %d, want 42", v)
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
}

func TestDelete(t *testing.T) {
	c := NewSharded[string, int](StringHasher)
	c.Set("a", 1)

	if !c.Delete("a") {
		t.Errorf("Delete(a) = false, want true")
	}
	if c.Delete("a") {
		t.Errorf("Delete(a) twice = true, want false")
	}
	if _, ok := c.Get("a"); ok {
		t.Errorf("Get after Delete returned ok")
	}
}

func TestClear(t *testing.T) {
	c := NewSharded[string, int](StringHasher)
	for i := 0; i < 100; i++ {
		c.Set(fmt.Sprintf("key-%d", i), i)
	}
	if c.Len() != 100 {
		t.Fatalf("Len = %d, want 100", c.Len())
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", c.Len())
	}
}

func TestUnboundedByDefault(t *testing.T) {
	c := NewSharded[string, int](StringHasher)
	const n = 10000
	for i := 0; i < n; i++ {
		c.Set(fmt.Sprintf("key-%d", i), i)
	}
	if c.Len() != n {
		t.Errorf("unbounded cache shed entries: Len = %d, want %d", c.Len(), n)
	}
}

func TestSoftCapacitySheds(t *testing.T) {
	// Per-shard capacity of 8; flooding one logical keyspace must keep
	// every shard at or below capacity after shedding.
	c := NewShardedWithCapacity[string, int](8, StringHasher)
	for i := 0; i < 1000; i++ {
		c.Set(fmt.Sprintf("key-%d", i), i)
	}
	if c.Len() > 8*ShardCount {
		t.Errorf("Len = %d, want at most %d", c.Len(), 8*ShardCount)
	}
	if c.Len() == 0 {
		t.Errorf("capacity shed everything")
	}
}

func TestStats(t *testing.T) {
	c := NewSharded[string, int](StringHasher)
	c.Set("a", 1)

	c.Get("a")       // hit
	c.Get("missing") // miss

	stats := c.Stats()
	if stats.Hits != 1 {
		t.Errorf("Hits = %d, want 1", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Misses = %d, want 1", stats.Misses)
	}
	if stats.HitRate != 0.5 {
		t.Errorf("HitRate = %f, want 0.5", stats.HitRate)
	}

	c.ResetStats()
	stats = c.Stats()
	if stats.Hits != 0 || stats.Misses != 0 {
		t.Errorf("stats not reset: %+v", stats)
	}
}

func TestUint64Hasher(t *testing.T) {
	c := NewSharded[uint64, string](Uint64Hasher)
	c.Set(7, "seven")
	if v, ok := c.Get(7); !ok || v != "seven" {
		t.Errorf("Get(7) = %q, %v; want seven, true", v, ok)
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := NewSharded[string, int](StringHasher)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("key-%d", i%50)
				c.Set(key, g*1000+i)
				c.Get(key)
				c.GetOrCreate(key, func() int { return -1 })
			}
		}(g)
	}
	wg.Wait()

	if c.Len() != 50 {
		t.Errorf("Len = %d, want 50", c.Len())
	}
}
