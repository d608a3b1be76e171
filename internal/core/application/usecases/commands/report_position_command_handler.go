package commands

import (
	"context"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/domain/model/order"
	"quickbasket/internal/core/domain/model/tracking"
	"quickbasket/internal/core/ports"
	"quickbasket/internal/metrics"
	"quickbasket/internal/pkg/errs"
)

// ReportPositionCommandHandler appends a tracking sample for an order in
// transit and refreshes the partner's last known location.
//
// Reports for orders not currently OutForDelivery are dropped without error:
// partner clients stream on a timer and a report racing a status change is
// routine, not a fault. Dropped reports are counted, not logged.
type ReportPositionCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.ChangeNotifier
}

// NewReportPositionCommandHandler creates a handler for position reports.
func NewReportPositionCommandHandler(uowFactory UoWFactory, notifier ports.ChangeNotifier) ReportPositionCommandHandler {
	return ReportPositionCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle appends the sample. Only the bound partner may report; a report
// outside OutForDelivery is a silent no-op.
func (h ReportPositionCommandHandler) Handle(ctx context.Context, command ReportPositionCommand) error {
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

	if o.Status() != order.OutForDelivery {
		metrics.TrackingSamplesDropped.Inc()
		return nil
	}

	p, err := resolveActingPartner(ctx, uow.PartnerRepository(), command.Actor(), "order", o.ID())
	if err != nil {
		return err
	}

	if o.Partner() == nil || !o.Partner().IsEqual(p.ID()) {
		return errs.NewNotAuthorizedError(command.Actor().ID(), "order", o.ID())
	}

	sample, err := tracking.NewSample(
		kernel.NewUUID(), o.ID(), p.ID(), command.Point(), command.RecordedAt())
	if err != nil {
		return err
	}

	if err = uow.TrackingRepository().Add(ctx, sample); err != nil {
		return err
	}

	if err = p.SetLocation(command.Point()); err != nil {
		return err
	}

	if err = uow.PartnerRepository().Update(ctx, p); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.TrackingSamplesAccepted.Inc()
	notify(ctx, h.notifier, orderChange(o))
	return nil
}
