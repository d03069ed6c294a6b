package dedup

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/merkulovlad/orderpipe/internal/cache"
	"github.com/merkulovlad/orderpipe/internal/model"
)

func TestTryAcquire_FirstTrueSecondFalse(t *testing.T) {
	s := New(cache.New[int64](100, time.Hour))
	e := model.Event{TradingPartnerName: "ACME", BusinessUnitName: "WEST"}

	require.True(t, s.TryAcquire(e))
	require.False(t, s.TryAcquire(e))
}

func TestTryAcquire_DifferentScopesIndependent(t *testing.T) {
	s := New(cache.New[int64](100, time.Hour))
	e1 := model.Event{TradingPartnerName: "ACME", BusinessUnitName: "WEST"}
	e2 := model.Event{TradingPartnerName: "ACME", BusinessUnitName: "EAST"}

	require.True(t, s.TryAcquire(e1))
	require.True(t, s.TryAcquire(e2))
}

func TestTryAcquire_ConcurrentDuplicatesOnlyOneWins(t *testing.T) {
	s := New(cache.New[int64](100, time.Hour))
	e := model.Event{TradingPartnerName: "ACME", BusinessUnitName: "WEST"}

	var wg sync.WaitGroup
	var wins int32
	var mu sync.Mutex
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.TryAcquire(e) {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	require.EqualValues(t, 1, wins)
}
