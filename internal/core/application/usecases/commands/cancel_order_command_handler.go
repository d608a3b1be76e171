package commands

import (
	"context"
	"errors"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/ports"
	"quickbasket/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels an order and terminates its active
// delivery request, if one exists, in the same transaction.
//
// The cancellation window belongs to the domain: a customer cancelling after
// dispatch bound a partner gets order.ErrCancellationWindowClosed, while an
// admin's cancel carries an override that reaches any non-terminal order.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.ChangeNotifier
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory UoWFactory, notifier ports.ChangeNotifier) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle cancels the order on behalf of its customer or an administrator.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) error {
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

	boundPartner := o.Partner()

	previousOrderStatus := o.Status()
	if err = o.Cancel(command.Actor().Is(kernel.RoleAdmin)); err != nil {
		return err
	}

	if err = uow.OrderRepository().Transition(ctx, o, previousOrderStatus); err != nil {
		return err
	}

	req, err := uow.RequestRepository().GetActiveByOrder(ctx, o.ID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		// nothing in flight
	case err != nil:
		return err
	default:
		previousRequestStatus := req.Status()
		if err = req.Cancel(); err != nil {
			return err
		}
		if err = uow.RequestRepository().Transition(ctx, req, previousRequestStatus); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	change := orderChange(o)
	if boundPartner != nil {
		change.Scopes[ports.ScopePartner] = *boundPartner
	}
	notify(ctx, h.notifier, change)
	return nil
}
