package commands

import (
	"context"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/domain/model/request"
	"quickbasket/internal/core/domain/services"
	"quickbasket/internal/core/ports"
)

// AssignPartnerCommandHandler orchestrates dispatch for one order: selecting
// the nearest eligible partner, creating the delivery request, and binding the
// partner to the order atomically.
//
// The request insert and the guarded order transition run in one transaction.
// If a concurrent dispatch won the race, either the partial unique index on
// active requests or the compare-and-set on the order status rejects this
// attempt, and nothing is persisted.
//
// Example:
//
//	handler := NewAssignPartnerCommandHandler(uowFactory, dispatcher, notifier)
//	cmd, _ := NewSystemAssignPartnerCommand(orderID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrNoAvailablePartner):
//	    // pool empty, order stays approved for the next sweep
//	case errors.Is(err, services.ErrVendorLocationUnset):
//	    // vendor must set a shop location first
//	case err != nil:
//	    // dispatch failed
//	}
type AssignPartnerCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.PartnerDispatcher
	notifier   ports.ChangeNotifier
}

// NewAssignPartnerCommandHandler creates a handler for partner dispatch.
func NewAssignPartnerCommandHandler(
	uowFactory UoWFactory,
	dispatcher services.PartnerDispatcher,
	notifier ports.ChangeNotifier,
) AssignPartnerCommandHandler {
	return AssignPartnerCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		notifier:   notifier,
	}
}

// Handle dispatches the order. The eligible pool excludes partners who already
// rejected this order, so automatic re-dispatch never re-offers a declined
// assignment.
func (h AssignPartnerCommandHandler) Handle(ctx context.Context, command AssignPartnerCommand) error {
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

	v, err := uow.VendorRepository().Get(ctx, o.VendorID())
	if err != nil {
		return err
	}

	if !command.SystemInitiated() {
		if err = authorizeVendorForOrder(ctx, uow.VendorRepository(), command.Actor(), o); err != nil {
			return err
		}
	}

	rejectedIDs, err := uow.RequestRepository().GetRejectedPartnerIDs(ctx, o.ID())
	if err != nil {
		return err
	}

	pool, err := uow.PartnerRepository().GetAllDispatchable(ctx)
	if err != nil {
		return err
	}

	previous := o.Status()
	winner, err := h.dispatcher.Dispatch(o, v, pool, rejectedIDs)
	if err != nil {
		return err
	}

	newRequest, err := request.NewDeliveryRequest(kernel.NewUUID(), o.ID(), v.ID(), winner.ID())
	if err != nil {
		return err
	}

	if err = uow.RequestRepository().Add(ctx, newRequest); err != nil {
		return err
	}

	if err = uow.OrderRepository().Transition(ctx, o, previous); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notify(ctx, h.notifier, orderChange(o))
	notify(ctx, h.notifier, requestChange(newRequest.ID(), v.ID(), winner.ID()))
	return nil
}
