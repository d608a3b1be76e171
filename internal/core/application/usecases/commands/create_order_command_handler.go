package commands

import (
	"context"

	"quickbasket/internal/core/domain/model/order"
	"quickbasket/internal/core/ports"
	"quickbasket/internal/metrics"
)

// CreateOrderCommandHandler persists new orders arriving from the checkout
// collaborator, over REST or the basket-confirmed topic.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.ChangeNotifier
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.ChangeNotifier) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle creates the order aggregate in Pending status and persists it.
// The vendor and customer scopes are signaled after commit so their dashboards
// pick up the new order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	items, err := command.BuildItems()
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		command.OrderID(),
		command.CustomerID(),
		command.VendorID(),
		command.AddressID(),
		items,
		command.PaymentStatus(),
		command.Subtotal(),
		command.DiscountAmount(),
		command.FinalAmount(),
		command.CouponCode(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.OrdersCreated.Inc()
	notify(ctx, h.notifier, orderChange(newOrder))
	return nil
}
