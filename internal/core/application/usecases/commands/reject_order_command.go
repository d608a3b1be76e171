package commands

import (
	"errors"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/pkg/guard"
)

var ErrRejectOrderCommandIsNotConstructed = errors.New(
	"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
)

// RejectOrderCommand is the vendor declining a pending order. The rejection is
// terminal: the order never enters dispatch.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates a command for a vendor to reject an order.
func NewRejectOrderCommand(orderID kernel.UUID, actor kernel.Actor) (RejectOrderCommand, error) {
	cmd := RejectOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return RejectOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.actor = actor
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

// OrderID returns the order under review.
func (c RejectOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the authenticated party performing the review.
func (c RejectOrderCommand) Actor() kernel.Actor {
	return c.actor
}
