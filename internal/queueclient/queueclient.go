// Package queueclient implements the downstream queue client on top of
// RabbitMQ's AMQP 0-9-1 protocol.
package queueclient

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/merkulovlad/orderpipe/internal/logger"
)

// QueueClient is the minimal contract the Publisher depends on: send a
// pre-serialized payload to a named destination, with transport headers
// (e.g. X-Trace-Id) carried alongside the body.
type QueueClient interface {
	Send(ctx context.Context, destination string, headers map[string]string, body []byte) error
	Close() error
}

// AMQPQueueClient publishes to a topic exchange, routing by destination
// name as the routing key; each ProcessedOrder/GroupedMessage target
// topic maps to one routing key on a shared exchange.
type AMQPQueueClient struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	log      logger.InterfaceLogger
}

// Dial connects to the broker and declares the topic exchange
// published destinations route through.
func Dial(url, exchange string, log logger.InterfaceLogger) (*AMQPQueueClient, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open amqp channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", exchange, err)
	}
	return &AMQPQueueClient{conn: conn, ch: ch, exchange: exchange, log: log}, nil
}

func (q *AMQPQueueClient) Send(ctx context.Context, destination string, headers map[string]string, body []byte) error {
	table := make(amqp.Table, len(headers))
	for k, v := range headers {
		table[k] = v
	}
	return q.ch.PublishWithContext(ctx, q.exchange, destination, false, false, amqp.Publishing{
		ContentType:  "application/json",
		Headers:      table,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	})
}

func (q *AMQPQueueClient) Close() error {
	if err := q.ch.Close(); err != nil {
		q.log.Errorf("close amqp channel: %v", err)
	}
	return q.conn.Close()
}
