// Package deadletter provides the pluggable dead-letter sink: per-order
// transform failures are handed here rather than failing the whole
// event.
package deadletter

import (
	"context"

	"github.com/merkulovlad/orderpipe/internal/logger"
	"github.com/merkulovlad/orderpipe/internal/model"
)

// Sink accepts failed orders for out-of-band handling. Implementations
// must not block the Event Handler on slow I/O; a production sink would
// publish to a DLQ topic.
type Sink interface {
	Send(ctx context.Context, failures []model.FailedOrder) error
}

// LogSink is the default sink: it logs each failure and always
// succeeds, so it never itself blocks a commit.
type LogSink struct {
	log logger.InterfaceLogger
}

var _ Sink = (*LogSink)(nil)

func NewLogSink(log logger.InterfaceLogger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Send(ctx context.Context, failures []model.FailedOrder) error {
	for _, f := range failures {
		s.log.Errorf("dead-letter order=%s type=%s message=%s", f.Order.ID, f.ExceptionType, f.ErrorMessage)
	}
	return nil
}
