// Package kafka implements the inbound integration event consumers.
// Order creation enters the fulfillment core here: the checkout collaborator
// confirms a basket, and the consumer turns that event into a pending order.
package kafka

import (
	"context"
	"encoding/json"
	"errors"

	"quickbasket/internal/core/application/usecases/commands"
	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/ports"

	"github.com/labstack/gommon/log"
	"github.com/segmentio/kafka-go"
)

// messageReader is the slice of kafka.Reader the consumer needs, kept as an
// interface so tests can feed messages without a broker.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// createOrderHandler handles the decoded create-order command.
type createOrderHandler interface {
	Handle(ctx context.Context, command commands.CreateOrderCommand) error
}

// basketConfirmedEvent is the wire format of the checkout collaborator's
// basket.confirmed event.
type basketConfirmedEvent struct {
	OrderID        string            `json:"order_id"`
	CustomerID     string            `json:"customer_id"`
	VendorID       string            `json:"vendor_id"`
	AddressID      string            `json:"address_id"`
	Items          []basketItemEvent `json:"items"`
	PaymentStatus  string            `json:"payment_status"`
	Subtotal       float64           `json:"subtotal"`
	DiscountAmount float64           `json:"discount_amount"`
	FinalAmount    float64           `json:"final_amount"`
	CouponCode     string            `json:"coupon_code"`
}

// basketItemEvent is one checkout line in the basket.confirmed payload.
type basketItemEvent struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// BasketConfirmedConsumer consumes basket.confirmed events and registers the
// corresponding orders.
//
// Delivery is at-least-once: offsets are committed only after the command
// succeeds, so a crash between handle and commit replays the event. Replays
// are harmless because the order id travels in the event: a replayed insert
// surfaces as ports.ErrOrderAlreadyExists and is committed as handled.
type BasketConfirmedConsumer struct {
	reader  messageReader
	handler createOrderHandler
}

// NewBasketConfirmedConsumer creates a consumer reading from the given
// brokers, topic, and consumer group.
func NewBasketConfirmedConsumer(brokers []string, topic, groupID string, handler createOrderHandler) *BasketConfirmedConsumer {
	return &BasketConfirmedConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			Topic:   topic,
			GroupID: groupID,
		}),
		handler: handler,
	}
}

// NewBasketConfirmedConsumerWithReader creates a consumer over an existing reader.
func NewBasketConfirmedConsumerWithReader(reader messageReader, handler createOrderHandler) *BasketConfirmedConsumer {
	return &BasketConfirmedConsumer{
		reader:  reader,
		handler: handler,
	}
}

// Run consumes until the context ends. Malformed events and replays of
// already-registered orders are logged and skipped; other command failures
// leave the offset uncommitted for redelivery.
func (c *BasketConfirmedConsumer) Run(ctx context.Context) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		cmd, err := decodeBasketConfirmed(msg.Value)
		if err != nil {
			// a payload that cannot decode today cannot decode tomorrow
			log.Warnf("basket.confirmed: skipping malformed event at offset %d: %v", msg.Offset, err)
			if err = c.reader.CommitMessages(ctx, msg); err != nil {
				return err
			}
			continue
		}

		if err = c.handler.Handle(ctx, cmd); err != nil {
			if errors.Is(err, ports.ErrOrderAlreadyExists) {
				// a replay, the order was registered on an earlier delivery
				log.Infof("basket.confirmed: order %s already registered, skipping offset %d", cmd.OrderID(), msg.Offset)
				if err = c.reader.CommitMessages(ctx, msg); err != nil {
					return err
				}
				continue
			}

			log.Errorf("basket.confirmed: create order %s failed: %v", cmd.OrderID(), err)
			continue
		}

		if err = c.reader.CommitMessages(ctx, msg); err != nil {
			return err
		}
	}
}

// Close releases the underlying reader.
func (c *BasketConfirmedConsumer) Close() error {
	return c.reader.Close()
}

// decodeBasketConfirmed parses and validates a basket.confirmed payload into
// a create-order command.
func decodeBasketConfirmed(payload []byte) (commands.CreateOrderCommand, error) {
	var event basketConfirmedEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return commands.CreateOrderCommand{}, err
	}

	orderID, err := kernel.UUIDFromString(event.OrderID)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	customerID, err := kernel.UUIDFromString(event.CustomerID)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	vendorID, err := kernel.UUIDFromString(event.VendorID)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	addressID, err := kernel.UUIDFromString(event.AddressID)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	items := make([]commands.ItemInput, 0, len(event.Items))
	for _, item := range event.Items {
		input := commands.ItemInput{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		}

		if item.ProductID != "" {
			productID, prodErr := kernel.UUIDFromString(item.ProductID)
			if prodErr != nil {
				return commands.CreateOrderCommand{}, prodErr
			}
			input.ProductID = &productID
		}

		items = append(items, input)
	}

	return commands.NewCreateOrderCommand(
		orderID,
		customerID,
		vendorID,
		addressID,
		items,
		event.PaymentStatus,
		event.Subtotal,
		event.DiscountAmount,
		event.FinalAmount,
		event.CouponCode,
	)
}
