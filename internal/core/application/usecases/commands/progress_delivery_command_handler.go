package commands

import (
	"context"

	"quickbasket/internal/core/ports"
	"quickbasket/internal/pkg/errs"
)

// ProgressDeliveryCommandHandler applies a physical milestone to the request
// and its order in one transaction. Milestone timestamps (pickedUpAt,
// deliveredAt) are stamped by the request aggregate as it transitions.
type ProgressDeliveryCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.ChangeNotifier
}

// NewProgressDeliveryCommandHandler creates a handler for delivery progress reports.
func NewProgressDeliveryCommandHandler(uowFactory UoWFactory, notifier ports.ChangeNotifier) ProgressDeliveryCommandHandler {
	return ProgressDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle applies the milestone. Only the bound partner may progress a request;
// stage ordering is enforced by the state machines, so a skipped or repeated
// stage fails before anything is written.
func (h ProgressDeliveryCommandHandler) Handle(ctx context.Context, command ProgressDeliveryCommand) error {
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

	req, err := uow.RequestRepository().Get(ctx, command.RequestID())
	if err != nil {
		return err
	}

	p, err := resolveActingPartner(ctx, uow.PartnerRepository(), command.Actor(), "request", req.ID())
	if err != nil {
		return err
	}

	if !req.IsBoundTo(p.ID()) {
		return errs.NewNotAuthorizedError(command.Actor().ID(), "request", req.ID())
	}

	o, err := uow.OrderRepository().Get(ctx, req.OrderID())
	if err != nil {
		return err
	}

	previousRequestStatus := req.Status()
	previousOrderStatus := o.Status()

	switch command.Stage() {
	case StagePickedUp:
		if err = req.MarkPickedUp(); err != nil {
			return err
		}
		if err = o.MarkPickedUp(); err != nil {
			return err
		}
	case StageOutForDelivery:
		if err = req.MarkOutForDelivery(); err != nil {
			return err
		}
		if err = o.MarkOutForDelivery(); err != nil {
			return err
		}
	case StageDelivered:
		if err = req.MarkDelivered(); err != nil {
			return err
		}
		if err = o.MarkDelivered(); err != nil {
			return err
		}
	default:
		return errs.NewValueIsInvalidError("stage")
	}

	if err = uow.RequestRepository().Transition(ctx, req, previousRequestStatus); err != nil {
		return err
	}

	if err = uow.OrderRepository().Transition(ctx, o, previousOrderStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notify(ctx, h.notifier, orderChange(o))
	notify(ctx, h.notifier, requestChange(req.ID(), req.VendorID(), p.ID()))
	return nil
}
