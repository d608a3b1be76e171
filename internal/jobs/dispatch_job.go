package jobs

import (
	"context"
	"errors"
	"log/slog"

	"quickbasket/internal/core/application/usecases/commands"
	"quickbasket/internal/core/domain/model/order"
	"quickbasket/internal/core/domain/services"
	"quickbasket/internal/core/ports"
	"quickbasket/internal/metrics"

	"github.com/robfig/cron/v3"
)

// DispatchJob sweeps approved orders and runs partner dispatch for each.
// Orders that found no partner stay approved and are retried on the next
// sweep; partners who rejected an order are never re-offered it, so the
// sweep converges instead of spinning on the same refusals.
type DispatchJob struct {
	handler    commands.AssignPartnerCommandHandler
	uowFactory commands.UoWFactory
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewDispatchJob creates the dispatch sweep running on the given cron
// schedule (with seconds field, e.g. "*/5 * * * * *").
func NewDispatchJob(
	handler commands.AssignPartnerCommandHandler,
	uowFactory commands.UoWFactory,
	schedule string,
	logger *slog.Logger,
) *DispatchJob {
	return &DispatchJob{
		handler:    handler,
		uowFactory: uowFactory,
		schedule:   schedule,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "dispatch_job"),
	}
}

// Start begins the dispatch sweep.
func (j *DispatchJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.sweep); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch job started", "schedule", j.schedule)
	return nil
}

// Stop stops the dispatch sweep.
func (j *DispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dispatch job stopped")
}

// sweep lists approved orders and attempts dispatch for each one. Each order
// gets its own transaction inside the handler, so one contended order never
// blocks the rest of the sweep.
func (j *DispatchJob) sweep() {
	ctx := context.Background()

	approved, err := j.uowFactory.Create().OrderRepository().GetAllInStatus(ctx, order.Approved)
	if err != nil {
		j.logger.ErrorContext(ctx, "Dispatch sweep failed to list approved orders", "error", err)
		return
	}

	for _, o := range approved {
		cmd, err := commands.NewSystemAssignPartnerCommand(o.ID())
		if err != nil {
			j.logger.ErrorContext(ctx, "Dispatch sweep built invalid command", "order_id", o.ID(), "error", err)
			continue
		}

		switch err := j.handler.Handle(ctx, cmd); {
		case err == nil:
			metrics.DispatchAttempts.WithLabelValues("assigned").Inc()

		case errors.Is(err, services.ErrNoAvailablePartner):
			// pool empty right now, the order stays approved for the next sweep
			metrics.DispatchAttempts.WithLabelValues("no_partner").Inc()

		case errors.Is(err, services.ErrVendorLocationUnset):
			metrics.DispatchAttempts.WithLabelValues("vendor_unlocated").Inc()

		case errors.Is(err, ports.ErrActiveRequestExists):
			// a concurrent dispatch won the race, nothing to do

		default:
			metrics.DispatchAttempts.WithLabelValues("error").Inc()
			j.logger.ErrorContext(ctx, "Dispatch failed", "order_id", o.ID(), "error", err)
		}
	}
}
