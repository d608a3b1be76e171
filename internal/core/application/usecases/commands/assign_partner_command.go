package commands

import (
	"errors"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/pkg/guard"
)

var ErrAssignPartnerCommandIsNotConstructed = errors.New(
	"AssignPartnerCommand must be created via NewAssignPartnerCommand constructor",
)

// AssignPartnerCommand triggers dispatch for one approved order: the nearest
// eligible delivery partner is selected and tentatively bound.
//
// Dispatch runs either on a vendor's explicit action or from the periodic
// dispatch job; the system form carries no actor and skips ownership checks.
type AssignPartnerCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	actor           kernel.Actor
	systemInitiated bool

	guard guard.ConstructorGuard
}

// NewAssignPartnerCommand creates a vendor-initiated dispatch command.
// The handler verifies the actor owns the order's vendor profile.
func NewAssignPartnerCommand(orderID kernel.UUID, actor kernel.Actor) (AssignPartnerCommand, error) {
	cmd := AssignPartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return AssignPartnerCommand{}, err
	}

	cmd.orderID = orderID
	cmd.actor = actor
	return cmd, nil
}

// NewSystemAssignPartnerCommand creates a dispatch command on behalf of the
// periodic dispatch job. No actor is involved; ownership checks are skipped.
func NewSystemAssignPartnerCommand(orderID kernel.UUID) (AssignPartnerCommand, error) {
	cmd := AssignPartnerCommand{
		systemInitiated: true,

		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return AssignPartnerCommand{}, err
	}

	cmd.orderID = orderID
	return cmd, nil
}

// Validate ensures the command was created through a constructor.
func (c AssignPartnerCommand) Validate() error {
	return c.guard.Validate(ErrAssignPartnerCommandIsNotConstructed)
}

// OrderID returns the order to dispatch.
func (c AssignPartnerCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the initiating party; meaningless when SystemInitiated.
func (c AssignPartnerCommand) Actor() kernel.Actor {
	return c.actor
}

// SystemInitiated reports whether dispatch was triggered by the periodic job.
func (c AssignPartnerCommand) SystemInitiated() bool {
	return c.systemInitiated
}
