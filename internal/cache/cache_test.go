package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCache_Get_Miss(t *testing.T) {
	c := New[string](10, time.Minute)

	got, ok := c.Get("missing")
	require.False(t, ok)
	require.Empty(t, got)
	require.Equal(t, int64(1), c.Stats().Misses)
}

func TestCache_Set_Then_Get(t *testing.T) {
	c := New[string](10, time.Minute)

	c.Set("k1", "v1")
	got, ok := c.Get("k1")
	require.True(t, ok)
	require.Equal(t, "v1", got)
	require.Equal(t, 1, c.Stats().Size)
}

func TestCache_UpdateExisting_DoesNotGrow(t *testing.T) {
	c := New[string](10, time.Minute)

	c.Set("k1", "v1")
	c.Set("k1", "v2")

	require.Equal(t, 1, c.Stats().Size)
	got, ok := c.Get("k1")
	require.True(t, ok)
	require.Equal(t, "v2", got)
}

func TestCache_Eviction_BySize(t *testing.T) {
	c := New[string](2, time.Minute)

	c.Set("A", "a")
	c.Set("B", "b")
	c.Set("C", "c") // evicts the least-recently-used entry

	require.Equal(t, 2, c.Stats().Size)
	_, bOK := c.Get("B")
	_, cOK := c.Get("C")
	require.True(t, bOK)
	require.True(t, cOK)
}

func TestCache_TTLExpiry(t *testing.T) {
	c := New[string](10, 20*time.Millisecond)

	c.Set("k1", "v1")
	time.Sleep(40 * time.Millisecond)

	_, ok := c.Get("k1")
	require.False(t, ok)
}

func TestCache_SetIfAbsent(t *testing.T) {
	c := New[int64](10, time.Minute)

	first := c.SetIfAbsent("dedupkey", time.Now().Unix())
	second := c.SetIfAbsent("dedupkey", time.Now().Unix())

	require.True(t, first)
	require.False(t, second)
}

func TestCache_Concurrent_SetGet(t *testing.T) {
	c := New[string](100, time.Minute)

	keys := []string{"x1", "x2", "x3", "x4", "x5"}
	var wg sync.WaitGroup

	for _, k := range keys {
		wg.Add(1)
		k := k
		go func() {
			defer wg.Done()
			c.Set(k, k)
		}()
	}
	for range keys {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = c.Get("x3")
			_, _ = c.Get("x-nope")
		}()
	}
	wg.Wait()

	_, ok := c.Get("x3")
	require.True(t, ok)
}

func TestCache_Concurrent_SetIfAbsent_OnlyOneWins(t *testing.T) {
	c := New[int64](10, time.Minute)

	const attempts = 50
	var wg sync.WaitGroup
	wins := make(chan bool, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wins <- c.SetIfAbsent("scope", time.Now().Unix())
		}()
	}
	wg.Wait()
	close(wins)

	winCount := 0
	for w := range wins {
		if w {
			winCount++
		}
	}
	require.Equal(t, 1, winCount)
}
