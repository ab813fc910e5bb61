package cache_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18nkit/pkg/cache"
)

func TestFIFO(t *testing.T) {
	t.Parallel()

	t.Run("get returns stored value", func(t *testing.T) {
		t.Parallel()
		c := cache.NewFIFO[string](10)
		c.Set("a", "first")

		v, ok := c.Get("a")
		require.True(t, ok)
		require.Equal(t, "first", v)
	})

	t.Run("get misses on unknown key", func(t *testing.T) {
		t.Parallel()
		c := cache.NewFIFO[string](10)

		v, ok := c.Get("missing")
		require.False(t, ok)
		require.Empty(t, v)
	})

	t.Run("evicts oldest inserted entry at bound", func(t *testing.T) {
		t.Parallel()
		c := cache.NewFIFO[int](50)
		for i := range 51 {
			c.Set(fmt.Sprintf("key-%d", i), i)
		}

		require.Equal(t, 50, c.Len())

		_, ok := c.Get("key-0")
		require.False(t, ok, "first inserted key must be evicted")

		v, ok := c.Get("key-50")
		require.True(t, ok)
		require.Equal(t, 50, v)
	})

	t.Run("lookups do not promote entries", func(t *testing.T) {
		t.Parallel()
		c := cache.NewFIFO[int](2)
		c.Set("a", 1)
		c.Set("b", 2)

		// Access "a" and overflow; "a" must still be evicted first.
		_, _ = c.Get("a")
		c.Set("c", 3)

		require.False(t, c.Has("a"))
		require.True(t, c.Has("b"))
		require.True(t, c.Has("c"))
	})

	t.Run("updating existing key does not evict", func(t *testing.T) {
		t.Parallel()
		c := cache.NewFIFO[int](2)
		c.Set("a", 1)
		c.Set("b", 2)
		c.Set("a", 10)

		require.Equal(t, 2, c.Len())
		v, ok := c.Get("a")
		require.True(t, ok)
		require.Equal(t, 10, v)
	})

	t.Run("get or set computes once", func(t *testing.T) {
		t.Parallel()
		c := cache.NewFIFO[int](10)

		calls := 0
		fn := func() int {
			calls++
			return 42
		}

		require.Equal(t, 42, c.GetOrSet("k", fn))
		require.Equal(t, 42, c.GetOrSet("k", fn))
		require.Equal(t, 1, calls)
	})

	t.Run("clear empties the cache", func(t *testing.T) {
		t.Parallel()
		c := cache.NewFIFO[int](10)
		c.Set("a", 1)
		c.Set("b", 2)
		c.Clear()

		require.Equal(t, 0, c.Len())
		require.False(t, c.Has("a"))
	})

	t.Run("non-positive bound falls back to default", func(t *testing.T) {
		t.Parallel()
		c := cache.NewFIFO[int](0)
		for i := range cache.DefaultMaxEntries + 5 {
			c.Set(fmt.Sprintf("k-%d", i), i)
		}
		require.Equal(t, cache.DefaultMaxEntries, c.Len())
	})
}
