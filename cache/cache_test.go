package cache

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_GetSet(t *testing.T) {
	c := New[string, int](3)
	c.Set("a", 1)
	c.Set("b", 2)

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = c.Get("missing")
	assert.False(t, ok)

	c.Set("a", 10)
	v, _ = c.Get("a")
	assert.Equal(t, 10, v)
	assert.Equal(t, 2, c.Len())
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](2)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a")
	c.Set("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok, "b should have been evicted")
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, uint64(1), c.Stats().Evicts)
}

func TestCache_DeleteAndClear(t *testing.T) {
	c := New[string, int](3)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Delete("a")
	c.Delete("not-there")
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	_, ok := c.Get("b")
	assert.False(t, ok)
}

func TestCache_GetOrSet(t *testing.T) {
	c := New[string, int](2)
	calls := 0
	compute := func() int {
		calls++
		return 42
	}

	assert.Equal(t, 42, c.GetOrSet("a", compute))
	assert.Equal(t, 42, c.GetOrSet("a", func() int { return 99 }))
	assert.Equal(t, 1, calls)

	s := c.Stats()
	assert.Equal(t, uint64(1), s.Hits)
	assert.Equal(t, uint64(1), s.Misses)
	assert.Equal(t, uint64(1), s.Sets)
}

func TestCache_Stats(t *testing.T) {
	c := New[string, int](2)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a")
	c.Get("a")
	c.Get("c")

	s := c.Stats()
	assert.Equal(t, 2, s.Size)
	assert.Equal(t, 2, s.Capacity)
	assert.Equal(t, uint64(2), s.Hits)
	assert.Equal(t, uint64(1), s.Misses)
	assert.InDelta(t, 2.0/3.0, s.HitRate, 0.001)
}

func TestCache_DefaultCapacity(t *testing.T) {
	c := New[string, int](0)
	assert.Equal(t, DefaultCapacity, c.Stats().Capacity)
}

func TestCache_ConcurrentGetOrSet(t *testing.T) {
	c := New[string, int](16)
	var computed atomic.Int32

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%4)
			c.GetOrSet(key, func() int {
				computed.Add(1)
				return i % 4
			})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(4), computed.Load())
	for i := 0; i < 4; i++ {
		v, ok := c.Get(fmt.Sprintf("k%d", i))
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
}

func BenchmarkCache_GetOrSet(b *testing.B) {
	c := New[string, int](1000)
	keys := make([]string, 1000)
	for i := range keys {
		keys[i] = fmt.Sprintf("expr-%d", i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.GetOrSet(keys[i%len(keys)], func() int { return i })
	}
}
