package repository

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/merkulovlad/orderpipe/internal/logger"
	"github.com/merkulovlad/orderpipe/internal/pipelineerr"
)

// chunkIDs splits ids into fixed-size chunks; the last chunk may be
// shorter. Chunk boundaries are disjoint, so merging per-chunk results
// by key is always unambiguous.
func chunkIDs(ids []string, size int) [][]string {
	if size <= 0 {
		size = len(ids)
		if size == 0 {
			return nil
		}
	}
	var chunks [][]string
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}

// chunkedFetchOptions carries the knobs every batch reader shares.
type chunkedFetchOptions struct {
	ChunkSize     int
	MaxRetries    int
	RetryDelayMs  int
	DBConcurrency int // 0 = sequential; >0 bounds chunk parallelism
	Op            string
	Log           logger.InterfaceLogger
}

// chunkedFetch runs fetchChunk over each chunk of ids, retrying
// transient failures with jittered backoff and tolerating a chunk that
// exhausts its retries: the failure is logged and the reader continues
// with the remaining chunks, returning the union of the ones that
// succeeded.
//
// When opts.DBConcurrency is 0, chunks run sequentially within this
// call. When positive, up to DBConcurrency chunks run concurrently.
func chunkedFetch[V any](ctx context.Context, ids []string, opts chunkedFetchOptions, fetchChunk func(ctx context.Context, chunk []string) (map[string]V, error)) (map[string]V, error) {
	result := make(map[string]V, len(ids))
	chunks := chunkIDs(ids, opts.ChunkSize)
	if len(chunks) == 0 {
		return result, nil
	}

	var mu sync.Mutex
	merge := func(partial map[string]V) {
		mu.Lock()
		defer mu.Unlock()
		for k, v := range partial {
			result[k] = v
		}
	}

	runChunk := func(ctx context.Context, chunk []string) error {
		var partial map[string]V
		err := withRetry(ctx, opts.MaxRetries, opts.RetryDelayMs, opts.Log, opts.Op, func(ctx context.Context) error {
			p, err := fetchChunk(ctx, chunk)
			if err != nil {
				return err
			}
			partial = p
			return nil
		})
		if err != nil {
			if ctx.Err() != nil {
				return err // interrupt: propagate, abort the whole fetch
			}
			exhausted := &pipelineerr.ExhaustedDataError{Op: opts.Op, ChunkIDs: chunk, Err: err}
			opts.Log.Errorf("repository: %s, continuing with remaining chunks", exhausted)
			return nil // ExhaustedDataError is tolerated; caller proceeds with absent keys
		}
		merge(partial)
		return nil
	}

	if opts.DBConcurrency <= 0 {
		for _, chunk := range chunks {
			if err := runChunk(ctx, chunk); err != nil {
				return result, err
			}
		}
		return result, nil
	}

	sem := semaphore.NewWeighted(int64(opts.DBConcurrency))
	g, gctx := errgroup.WithContext(ctx)
	for _, chunk := range chunks {
		chunk := chunk
		if err := sem.Acquire(gctx, 1); err != nil {
			break
		}
		g.Go(func() error {
			defer sem.Release(1)
			return runChunk(gctx, chunk)
		})
	}
	if err := g.Wait(); err != nil {
		return result, err
	}
	return result, nil
}
