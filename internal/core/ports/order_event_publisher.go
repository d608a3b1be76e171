package ports

import (
	"context"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/domain/model/order"
)

// OrderEventPublisher publishes order lifecycle events to external consumers
// outside the fulfillment core, e.g. analytics or the checkout collaborator.
type OrderEventPublisher interface {
	// PublishOrderChanged emits an order.changed integration event.
	PublishOrderChanged(ctx context.Context, orderID kernel.UUID, status order.Status) error
}
