package notify

import (
	"context"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/domain/model/order"
	"quickbasket/internal/core/ports"

	"github.com/labstack/gommon/log"
)

// EventBridgeNotifier decorates a ChangeNotifier so every order change also
// leaves the fulfillment core as an integration event. The live change feed
// and the Kafka stream see the same commits without every command handler
// knowing about both.
type EventBridgeNotifier struct {
	inner     ports.ChangeNotifier
	publisher ports.OrderEventPublisher
}

// NewEventBridgeNotifier wraps inner so order changes are mirrored to publisher.
func NewEventBridgeNotifier(inner ports.ChangeNotifier, publisher ports.OrderEventPublisher) *EventBridgeNotifier {
	return &EventBridgeNotifier{
		inner:     inner,
		publisher: publisher,
	}
}

// Publish forwards the signal to the live feed and, for order changes,
// emits the order.changed integration event. A failed emit is logged and
// does not fail the publish: the event stream is as advisory as the feed.
func (n *EventBridgeNotifier) Publish(ctx context.Context, change ports.Change) error {
	if n.publisher != nil && change.Kind == ports.ChangeKindOrder {
		if status, err := order.StatusFromString(change.OrderStatus); err == nil {
			if err := n.publisher.PublishOrderChanged(ctx, change.ID, status); err != nil {
				log.Warnf("order event bridge: publish failed for %s: %v", change.ID, err)
			}
		}
	}

	return n.inner.Publish(ctx, change)
}

// Subscribe delegates to the wrapped notifier.
func (n *EventBridgeNotifier) Subscribe(ctx context.Context, scope ports.Scope, id kernel.UUID) (ports.Subscription, error) {
	return n.inner.Subscribe(ctx, scope, id)
}
