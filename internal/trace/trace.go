// Package trace carries a trace-id/span-id pair through every task spawned
// while processing one event, so logs across goroutines correlate back to
// the originating Kafka message.
package trace

import (
	"context"
	"crypto/rand"
	"encoding/hex"
)

// Info is the trace/span pair attached to a context.
type Info struct {
	TraceID string
	SpanID  string
}

type ctxKey struct{}

// New generates a fresh 32-char hex trace id and 16-char hex span id.
func New() Info {
	return Info{
		TraceID: randomHex(16),
		SpanID:  randomHex(8),
	}
}

// NewSpan derives a child span under the same trace id.
func (i Info) NewSpan() Info {
	return Info{TraceID: i.TraceID, SpanID: randomHex(8)}
}

func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing is effectively unrecoverable; fall back to a
		// fixed pattern rather than panicking mid-pipeline.
		for i := range b {
			b[i] = byte(i)
		}
	}
	return hex.EncodeToString(b)
}

// WithContext attaches trace info to ctx.
func WithContext(ctx context.Context, info Info) context.Context {
	return context.WithValue(ctx, ctxKey{}, info)
}

// FromContext returns the trace info carried on ctx, generating a fresh
// one if absent (e.g. headers missing on the inbound event).
func FromContext(ctx context.Context) Info {
	if v, ok := ctx.Value(ctxKey{}).(Info); ok {
		return v
	}
	return New()
}
