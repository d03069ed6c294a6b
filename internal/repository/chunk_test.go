package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/merkulovlad/orderpipe/internal/logger"
	"github.com/merkulovlad/orderpipe/internal/mocks"
)

type nopLogger struct{}

func (nopLogger) Info(args ...interface{})                  {}
func (nopLogger) Infof(format string, args ...interface{})  {}
func (nopLogger) Error(args ...interface{})                 {}
func (nopLogger) Errorf(format string, args ...interface{}) {}
func (nopLogger) Fatal(args ...interface{})                 {}
func (nopLogger) Fatalf(format string, args ...interface{}) {}
func (nopLogger) Sync() error                               { return nil }

var _ logger.InterfaceLogger = nopLogger{}

func TestChunkIDs_PartitionsDisjointly(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e"}
	chunks := chunkIDs(ids, 2)
	require.Equal(t, [][]string{{"a", "b"}, {"c", "d"}, {"e"}}, chunks)
}

func TestChunkedFetch_UnionOfChunks(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e"}
	opts := chunkedFetchOptions{ChunkSize: 2, MaxRetries: 0, RetryDelayMs: 1, Log: nopLogger{}, Op: "test"}

	got, err := chunkedFetch(context.Background(), ids, opts, func(ctx context.Context, chunk []string) (map[string]string, error) {
		out := make(map[string]string, len(chunk))
		for _, id := range chunk {
			out[id] = "v-" + id
		}
		return out, nil
	})
	require.NoError(t, err)
	require.Len(t, got, 5)
	for _, id := range ids {
		require.Equal(t, "v-"+id, got[id])
	}
}

func TestChunkedFetch_PartialChunkFailureTolerated(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e"}
	opts := chunkedFetchOptions{ChunkSize: 2, MaxRetries: 1, RetryDelayMs: 1, Log: nopLogger{}, Op: "test"}

	got, err := chunkedFetch(context.Background(), ids, opts, func(ctx context.Context, chunk []string) (map[string]string, error) {
		if chunk[0] == "c" {
			return nil, errors.New("boom")
		}
		out := make(map[string]string, len(chunk))
		for _, id := range chunk {
			out[id] = "v-" + id
		}
		return out, nil
	})
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Contains(t, got, "a")
	require.Contains(t, got, "b")
	require.Contains(t, got, "e")
	require.NotContains(t, got, "c")
	require.NotContains(t, got, "d")
}

func TestChunkedFetch_TransientThenSuccess(t *testing.T) {
	ids := []string{"a"}
	opts := chunkedFetchOptions{ChunkSize: 10, MaxRetries: 2, RetryDelayMs: 100, Log: nopLogger{}, Op: "test"}

	calls := 0
	start := time.Now()
	got, err := chunkedFetch(context.Background(), ids, opts, func(ctx context.Context, chunk []string) (map[string]string, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("transient")
		}
		return map[string]string{"a": "ok"}, nil
	})
	elapsed := time.Since(start)

	require.NoError(t, err)
	require.Equal(t, "ok", got["a"])
	require.Equal(t, 2, calls)
	require.GreaterOrEqual(t, elapsed, 100*time.Millisecond)
	require.Less(t, elapsed, 300*time.Millisecond)
}

func TestChunkedFetch_InterruptAbortsRetry(t *testing.T) {
	ids := []string{"a"}
	opts := chunkedFetchOptions{ChunkSize: 10, MaxRetries: 5, RetryDelayMs: 1000, Log: nopLogger{}, Op: "test"}

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	done := make(chan struct{})
	go func() {
		_, _ = chunkedFetch(ctx, ids, opts, func(ctx context.Context, chunk []string) (map[string]string, error) {
			calls++
			return nil, errors.New("always fails")
		})
		close(done)
	}()
	time.Sleep(10 * time.Millisecond)
	cancel()
	<-done

	require.Equal(t, 1, calls)
}

func TestBackoffDelay_WithinJitterBounds(t *testing.T) {
	base := 100
	for attempt := 1; attempt <= 4; attempt++ {
		d := backoffDelay(base, attempt)
		lower := float64(base) * float64(int64(1)<<uint(attempt-1))
		jitterCap := lower
		if jitterCap > 1000 {
			jitterCap = 1000
		}
		upper := lower + jitterCap
		if upper > maxBackoffMs {
			upper = maxBackoffMs
		}
		ms := float64(d.Milliseconds())
		require.GreaterOrEqual(t, ms, lower)
		require.LessOrEqual(t, ms, upper)
	}
}

func TestChunkedFetch_ExhaustedChunkLogsViaInterfaceLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockInterfaceLogger(ctrl)
	log.EXPECT().Errorf(gomock.Any(), gomock.Any()).MinTimes(1)

	ids := []string{"a", "b", "c"}
	opts := chunkedFetchOptions{ChunkSize: 1, MaxRetries: 0, RetryDelayMs: 1, Log: log, Op: "test"}

	got, err := chunkedFetch(context.Background(), ids, opts, func(ctx context.Context, chunk []string) (map[string]string, error) {
		if chunk[0] == "b" {
			return nil, errors.New("boom")
		}
		return map[string]string{chunk[0]: "v-" + chunk[0]}, nil
	})

	require.NoError(t, err)
	require.Len(t, got, 2)
	require.NotContains(t, got, "b")
}

func TestChunkedFetch_DBConcurrency_StillUnionsCorrectly(t *testing.T) {
	ids := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		ids = append(ids, string(rune('a'+i)))
	}
	opts := chunkedFetchOptions{ChunkSize: 3, MaxRetries: 0, RetryDelayMs: 1, Log: nopLogger{}, Op: "test", DBConcurrency: 4}

	got, err := chunkedFetch(context.Background(), ids, opts, func(ctx context.Context, chunk []string) (map[string]string, error) {
		out := make(map[string]string, len(chunk))
		for _, id := range chunk {
			out[id] = "v-" + id
		}
		return out, nil
	})
	require.NoError(t, err)
	require.Len(t, got, 20)
}
