package commands

import (
	"context"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/domain/model/request"
	"quickbasket/internal/core/ports"
	"quickbasket/internal/pkg/errs"
)

// RespondToRequestCommandHandler records a partner's answer to a delivery
// request and moves the request and the order together.
//
// The response row, the request transition, and the order transition share one
// transaction. The response table's unique constraint makes double-responses
// impossible: a duplicate surfaces request.ErrAlreadyResponded and the stored
// decision stands.
//
// Accepting moves request and order to Accepted. Rejecting terminates the
// request and returns the order to Approved with the partner unbound, so the
// next dispatch sweep can offer it to someone else.
type RespondToRequestCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.ChangeNotifier
}

// NewRespondToRequestCommandHandler creates a handler for partner responses.
func NewRespondToRequestCommandHandler(uowFactory UoWFactory, notifier ports.ChangeNotifier) RespondToRequestCommandHandler {
	return RespondToRequestCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle records the decision. Only the bound partner may respond; anyone else
// gets errs.NotAuthorizedError regardless of role.
func (h RespondToRequestCommandHandler) Handle(ctx context.Context, command RespondToRequestCommand) error {
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

	response, err := request.NewResponse(kernel.NewUUID(), req.ID(), p.ID(), command.Decision())
	if err != nil {
		return err
	}

	if err = uow.RequestRepository().AddResponse(ctx, response); err != nil {
		return err
	}

	o, err := uow.OrderRepository().Get(ctx, req.OrderID())
	if err != nil {
		return err
	}

	previousRequestStatus := req.Status()
	previousOrderStatus := o.Status()

	switch command.Decision() {
	case request.DecisionAccepted:
		if err = req.Accept(); err != nil {
			return err
		}
		if err = o.Accept(); err != nil {
			return err
		}
	case request.DecisionRejected:
		if err = req.Reject(); err != nil {
			return err
		}
		if err = o.ReturnForDispatch(); err != nil {
			return err
		}
	default:
		return errs.NewValueIsInvalidError("decision")
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
