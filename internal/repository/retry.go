package repository

import (
	"context"
	"math/rand"
	"time"

	"github.com/merkulovlad/orderpipe/internal/logger"
	"github.com/merkulovlad/orderpipe/internal/pipelineerr"
)

const maxBackoffMs = 60_000

// withRetry wraps a single chunk call with exponential backoff plus
// uniform jitter: retryDelayMs*2^(attempt-1) plus jitter in
// [0, min(1000, base)), capped at 60s. Context cancellation aborts
// retry immediately and propagates.
func withRetry(ctx context.Context, maxRetries int, baseDelayMs int, log logger.InterfaceLogger, op string, fn func(ctx context.Context) error) error {
	var lastErr error
	for attempt := 1; attempt <= maxRetries+1; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		transientErr := &pipelineerr.TransientDataError{Op: op, Err: lastErr}
		if attempt == maxRetries+1 {
			lastErr = transientErr
			break
		}
		delay := backoffDelay(baseDelayMs, attempt)
		log.Errorf("repository: attempt %d/%d failed, retrying in %s: %v", attempt, maxRetries+1, delay, transientErr)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return lastErr
}

func backoffDelay(baseDelayMs, attempt int) time.Duration {
	base := float64(baseDelayMs) * float64(int64(1)<<uint(attempt-1))
	jitterCap := base
	if jitterCap > 1000 {
		jitterCap = 1000
	}
	jitter := rand.Float64() * jitterCap
	totalMs := base + jitter
	if totalMs > maxBackoffMs {
		totalMs = maxBackoffMs
	}
	return time.Duration(totalMs) * time.Millisecond
}
