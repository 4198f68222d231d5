package cache

import (
	"fmt"
	"sync"
	"testing"

	"urlfeat/internal/testutil"
)

func TestNew(t *testing.T) {
	t.Run("uses requested capacity", func(t *testing.T) {
		c := New[string, int](10)
		testutil.AssertEqual(t, c.Stats().Capacity, 10, "capacity")
		testutil.AssertEqual(t, c.Len(), 0, "empty")
	})

	t.Run("falls back to default capacity", func(t *testing.T) {
		testutil.AssertEqual(t, New[string, int](0).Stats().Capacity, DefaultCapacity, "zero")
		testutil.AssertEqual(t, New[string, int](-3).Stats().Capacity, DefaultCapacity, "negative")
	})
}

func TestLRU_SetAndGet(t *testing.T) {
	c := New[string, string](4)
	c.Set("a", "1")

	v, ok := c.Get("a")
	testutil.AssertTrue(t, ok, "found")
	testutil.AssertEqual(t, v, "1", "value")

	_, ok = c.Get("missing")
	testutil.AssertFalse(t, ok, "missing key")

	c.Set("a", "2")
	v, _ = c.Get("a")
	testutil.AssertEqual(t, v, "2", "updated")
	testutil.AssertEqual(t, c.Len(), 1, "update does not grow")
}

func TestLRU_Eviction(t *testing.T) {
	c := New[string, int](2)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a") // b is now least recently used
	c.Set("c", 3)

	_, ok := c.Get("b")
	testutil.AssertFalse(t, ok, "b evicted")
	_, ok = c.Get("a")
	testutil.AssertTrue(t, ok, "a kept")
	_, ok = c.Get("c")
	testutil.AssertTrue(t, ok, "c kept")
	testutil.AssertEqual(t, c.Stats().Evictions, 1, "evictions")
}

func TestLRU_GetOrCompute(t *testing.T) {
	c := New[string, string](8)
	calls := 0
	upper := func(k string) string {
		calls++
		return k + "!"
	}

	testutil.AssertEqual(t, c.GetOrCompute("x", upper), "x!", "computed")
	testutil.AssertEqual(t, c.GetOrCompute("x", upper), "x!", "cached")
	testutil.AssertEqual(t, calls, 1, "compute called once")

	st := c.Stats()
	testutil.AssertEqual(t, st.Hits, 1, "hits")
	testutil.AssertEqual(t, st.Misses, 1, "misses")
}

func TestLRU_Concurrent(t *testing.T) {
	c := New[string, int](16)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("k%d", j%32)
				c.GetOrCompute(key, func(string) int { return j })
			}
		}()
	}
	wg.Wait()

	testutil.AssertTrue(t, c.Len() <= 16, "capacity respected")
}
