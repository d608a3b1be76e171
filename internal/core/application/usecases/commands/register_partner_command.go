package commands

import (
	"errors"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/pkg/guard"
)

var ErrRegisterPartnerCommandIsNotConstructed = errors.New(
	"RegisterPartnerCommand must be created via NewRegisterPartnerCommand constructor",
)

// RegisterPartnerCommand creates a delivery partner profile for the acting
// user. The profile starts unverified and outside the dispatch pool.
type RegisterPartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID     kernel.UUID
	actor         kernel.Actor
	vehicleType   string
	vehicleNumber string

	guard guard.ConstructorGuard
}

// NewRegisterPartnerCommand creates a partner registration command.
func NewRegisterPartnerCommand(
	partnerID kernel.UUID,
	actor kernel.Actor,
	vehicleType string,
	vehicleNumber string,
) (RegisterPartnerCommand, error) {
	cmd := RegisterPartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(partnerID.Validate(), actor.Validate()); err != nil {
		return RegisterPartnerCommand{}, err
	}

	cmd.partnerID = partnerID
	cmd.actor = actor
	cmd.vehicleType = vehicleType
	cmd.vehicleNumber = vehicleNumber
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterPartnerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterPartnerCommandIsNotConstructed)
}

// PartnerID returns the identifier for the new profile.
func (c RegisterPartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Actor returns the registering user.
func (c RegisterPartnerCommand) Actor() kernel.Actor {
	return c.actor
}

// VehicleType returns the delivery vehicle type.
func (c RegisterPartnerCommand) VehicleType() string {
	return c.vehicleType
}

// VehicleNumber returns the vehicle registration plate.
func (c RegisterPartnerCommand) VehicleNumber() string {
	return c.vehicleNumber
}
