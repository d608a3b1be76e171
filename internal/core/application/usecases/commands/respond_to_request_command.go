package commands

import (
	"errors"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/domain/model/request"
	"quickbasket/internal/pkg/guard"
)

var ErrRespondToRequestCommandIsNotConstructed = errors.New(
	"RespondToRequestCommand must be created via NewRespondToRequestCommand constructor",
)

// RespondToRequestCommand is the bound partner answering a delivery request:
// accept to take the delivery, reject to send the order back to dispatch.
type RespondToRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	actor     kernel.Actor
	decision  request.Decision

	guard guard.ConstructorGuard
}

// NewRespondToRequestCommand creates a command recording a partner's decision.
func NewRespondToRequestCommand(
	requestID kernel.UUID,
	actor kernel.Actor,
	decision request.Decision,
) (RespondToRequestCommand, error) {
	cmd := RespondToRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requestID.Validate(),
		actor.Validate(),
		decision.Validate(),
	); err != nil {
		return RespondToRequestCommand{}, err
	}

	cmd.requestID = requestID
	cmd.actor = actor
	cmd.decision = decision
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RespondToRequestCommand) Validate() error {
	return c.guard.Validate(ErrRespondToRequestCommandIsNotConstructed)
}

// RequestID returns the request being answered.
func (c RespondToRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// Actor returns the responding party.
func (c RespondToRequestCommand) Actor() kernel.Actor {
	return c.actor
}

// Decision returns the partner's answer.
func (c RespondToRequestCommand) Decision() request.Decision {
	return c.decision
}
