package commands

import (
	"context"

	"quickbasket/internal/core/ports"
)

// RejectOrderCommandHandler moves a pending order to the terminal
// RejectedByVendor status on behalf of the owning vendor.
type RejectOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.ChangeNotifier
}

// NewRejectOrderCommandHandler creates a handler for vendor order rejection.
func NewRejectOrderCommandHandler(uowFactory UoWFactory, notifier ports.ChangeNotifier) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle validates ownership, applies Pending -> RejectedByVendor, and signals
// the order's audiences after commit.
func (h RejectOrderCommandHandler) Handle(ctx context.Context, command RejectOrderCommand) error {
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

	if err = authorizeVendorForOrder(ctx, uow.VendorRepository(), command.Actor(), o); err != nil {
		return err
	}

	previous := o.Status()
	if err = o.RejectByVendor(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Transition(ctx, o, previous); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notify(ctx, h.notifier, orderChange(o))
	return nil
}
