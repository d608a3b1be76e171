package commands

import (
	"errors"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/pkg/guard"
)

var (
	ErrPurgeOrderCommandIsNotConstructed = errors.New(
		"PurgeOrderCommand must be created via NewPurgeOrderCommand constructor",
	)

	// ErrOrderNotTerminal is returned when purge is attempted on an order whose
	// lifecycle has not finished. Live orders are never purged.
	ErrOrderNotTerminal = errors.New("only terminal orders can be purged")
)

// PurgeOrderCommand hard-deletes a finished order and everything hanging off
// it: requests, responses, and tracking samples. Customers may purge their own
// terminal orders to clear their history; administrators may purge any.
type PurgeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewPurgeOrderCommand creates a purge command.
func NewPurgeOrderCommand(orderID kernel.UUID, actor kernel.Actor) (PurgeOrderCommand, error) {
	cmd := PurgeOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return PurgeOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.actor = actor
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeOrderCommand) Validate() error {
	return c.guard.Validate(ErrPurgeOrderCommandIsNotConstructed)
}

// OrderID returns the order to purge.
func (c PurgeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the purging party.
func (c PurgeOrderCommand) Actor() kernel.Actor {
	return c.actor
}
