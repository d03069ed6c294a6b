// Package kafkaadapter reads events from the input topic with manual,
// per-record offset commit driven by the event handler's outcome rather
// than the reader's own auto-commit.
package kafkaadapter

import (
	"context"
	"encoding/json"
	"errors"

	kafka "github.com/segmentio/kafka-go"

	"github.com/merkulovlad/orderpipe/internal/handler"
	"github.com/merkulovlad/orderpipe/internal/logger"
	"github.com/merkulovlad/orderpipe/internal/model"
)

// Consumer wraps a kafka-go Reader configured for manual commit
// (FetchMessage/CommitMessages rather than ReadMessage's implicit
// commit) and delegates each decoded Event to the handler.
type Consumer struct {
	reader *kafka.Reader
	h      *handler.Handler
	log    logger.InterfaceLogger
}

func NewConsumer(brokers []string, topic, groupID string, h *handler.Handler, log logger.InterfaceLogger) *Consumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		Topic:   topic,
		GroupID: groupID,
	})
	return &Consumer{reader: r, h: h, log: log}
}

// Run blocks until ctx is canceled or a fatal read error occurs.
// Malformed payloads are logged and skipped (committed, since they can
// never succeed on redelivery); handler errors skip the commit so the
// broker redelivers the message.
func (c *Consumer) Run(ctx context.Context) error {
	defer func() {
		if err := c.reader.Close(); err != nil {
			c.log.Errorf("kafkaadapter: reader close: %v", err)
		}
	}()

	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		var e model.Event
		if err := json.Unmarshal(m.Value, &e); err != nil {
			c.log.Errorf("kafkaadapter: invalid JSON payload at offset %d: %v", m.Offset, err)
			if commitErr := c.reader.CommitMessages(ctx, m); commitErr != nil {
				c.log.Errorf("kafkaadapter: commit after decode failure: %v", commitErr)
			}
			continue
		}

		outcome, err := c.h.Handle(ctx, e)
		if err != nil {
			c.log.Errorf("kafkaadapter: event %s not committed: %v", e.EventID, err)
			continue
		}
		if !outcome.Commit {
			continue
		}
		if commitErr := c.reader.CommitMessages(ctx, m); commitErr != nil {
			c.log.Errorf("kafkaadapter: commit offset for event %s: %v", e.EventID, commitErr)
		}
	}
}
