// Package kafka implements the outbound integration event publisher.
// Order lifecycle changes are emitted to a Kafka topic for consumers outside
// the fulfillment core (checkout, analytics, customer messaging).
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// messageWriter is the slice of kafka.Writer the publisher needs, kept as an
// interface so tests can capture messages without a broker.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// orderChangedEvent is the wire format of the order.changed integration event.
type orderChangedEvent struct {
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// OrderChangedPublisher implements ports.OrderEventPublisher over Kafka.
// Messages are keyed by order id so all events of one order stay in order
// within a partition.
type OrderChangedPublisher struct {
	writer messageWriter
}

// NewOrderChangedPublisher creates a publisher writing to the given brokers
// and topic.
func NewOrderChangedPublisher(brokers []string, topic string) *OrderChangedPublisher {
	return &OrderChangedPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.Hash{},
		},
	}
}

// NewOrderChangedPublisherWithWriter creates a publisher over an existing writer.
func NewOrderChangedPublisherWithWriter(writer messageWriter) *OrderChangedPublisher {
	return &OrderChangedPublisher{writer: writer}
}

// PublishOrderChanged emits an order.changed event with the lifecycle wire name.
func (p *OrderChangedPublisher) PublishOrderChanged(ctx context.Context, orderID kernel.UUID, status order.Status) error {
	payload, err := json.Marshal(orderChangedEvent{
		OrderID:    orderID.String(),
		Status:     status.String(),
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(orderID.String()),
		Value: payload,
	})
}

// Close releases the underlying writer when it owns broker connections.
func (p *OrderChangedPublisher) Close() error {
	if closer, ok := p.writer.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
