package commands

import (
	"context"

	"quickbasket/internal/core/ports"
)

// PurgeOrderCommandHandler removes a terminal order and its dependent records
// in one transaction: tracking samples first, then requests with their
// responses, then the order row itself.
type PurgeOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.ChangeNotifier
}

// NewPurgeOrderCommandHandler creates a handler for order purging.
func NewPurgeOrderCommandHandler(uowFactory UoWFactory, notifier ports.ChangeNotifier) PurgeOrderCommandHandler {
	return PurgeOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle purges the order. Only the owning customer or an administrator may
// purge, and only once the lifecycle is terminal.
func (h PurgeOrderCommandHandler) Handle(ctx context.Context, command PurgeOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = authorizeCustomerForOrder(command.Actor(), o); err != nil {
		return err
	}

	if !o.Status().IsTerminal() {
		return ErrOrderNotTerminal
	}

	if err = uow.TrackingRepository().DeleteByOrder(ctx, o.ID()); err != nil {
		return err
	}

	if err = uow.RequestRepository().DeleteByOrder(ctx, o.ID()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Delete(ctx, o.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notify(ctx, h.notifier, orderChange(o))
	return nil
}
