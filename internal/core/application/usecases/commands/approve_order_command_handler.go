package commands

import (
	"context"

	"quickbasket/internal/core/ports"
)

// ApproveOrderCommandHandler moves a pending order to Approved on behalf of
// the owning vendor. The transition is applied as a compare-and-set: if the
// order left Pending since it was read, the handler surfaces a stale-state
// error instead of overwriting.
type ApproveOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.ChangeNotifier
}

// NewApproveOrderCommandHandler creates a handler for vendor order approval.
func NewApproveOrderCommandHandler(uowFactory UoWFactory, notifier ports.ChangeNotifier) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle validates ownership, applies Pending -> Approved, and signals the
// order's audiences after commit.
func (h ApproveOrderCommandHandler) Handle(ctx context.Context, command ApproveOrderCommand) error {
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
	if err = o.Approve(); err != nil {
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
