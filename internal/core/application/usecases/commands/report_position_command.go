package commands

import (
	"errors"
	"time"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/pkg/errs"
	"quickbasket/internal/pkg/guard"
)

var ErrReportPositionCommandIsNotConstructed = errors.New(
	"ReportPositionCommand must be created via NewReportPositionCommand constructor",
)

// ReportPositionCommand is the bound partner streaming a position fix while an
// order is out for delivery. The recording time comes from the client so the
// live view can resolve out-of-order arrivals.
type ReportPositionCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	actor      kernel.Actor
	point      kernel.GeoPoint
	recordedAt time.Time

	guard guard.ConstructorGuard
}

// NewReportPositionCommand creates a position report.
func NewReportPositionCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	point kernel.GeoPoint,
	recordedAt time.Time,
) (ReportPositionCommand, error) {
	cmd := ReportPositionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		actor.Validate(),
		point.Validate(),
	); err != nil {
		return ReportPositionCommand{}, err
	}

	if recordedAt.IsZero() {
		return ReportPositionCommand{}, errs.NewValueIsRequiredError("recordedAt")
	}

	cmd.orderID = orderID
	cmd.actor = actor
	cmd.point = point
	cmd.recordedAt = recordedAt
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportPositionCommand) Validate() error {
	return c.guard.Validate(ErrReportPositionCommandIsNotConstructed)
}

// OrderID returns the tracked order.
func (c ReportPositionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the reporting party.
func (c ReportPositionCommand) Actor() kernel.Actor {
	return c.actor
}

// Point returns the reported position.
func (c ReportPositionCommand) Point() kernel.GeoPoint {
	return c.point
}

// RecordedAt returns the client-side recording time.
func (c ReportPositionCommand) RecordedAt() time.Time {
	return c.recordedAt
}
