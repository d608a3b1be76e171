package commands

import (
	"errors"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/pkg/guard"
)

var ErrApproveOrderCommandIsNotConstructed = errors.New(
	"ApproveOrderCommand must be created via NewApproveOrderCommand constructor",
)

// ApproveOrderCommand is the vendor accepting a pending order, which makes it
// visible to the dispatch engine.
type ApproveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewApproveOrderCommand creates a command for a vendor to approve an order.
// The actor is the authenticated party; the handler verifies they own the
// order's vendor profile.
func NewApproveOrderCommand(orderID kernel.UUID, actor kernel.Actor) (ApproveOrderCommand, error) {
	cmd := ApproveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return ApproveOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.actor = actor
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveOrderCommandIsNotConstructed)
}

// OrderID returns the order under review.
func (c ApproveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the authenticated party performing the review.
func (c ApproveOrderCommand) Actor() kernel.Actor {
	return c.actor
}
