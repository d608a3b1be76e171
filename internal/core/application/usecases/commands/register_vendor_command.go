package commands

import (
	"errors"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/pkg/guard"
)

var ErrRegisterVendorCommandIsNotConstructed = errors.New(
	"RegisterVendorCommand must be created via NewRegisterVendorCommand constructor",
)

// RegisterVendorCommand creates a vendor profile for the acting user.
type RegisterVendorCommand struct { //nolint:recvcheck //using for validation
	vendorID     kernel.UUID
	actor        kernel.Actor
	businessName string

	guard guard.ConstructorGuard
}

// NewRegisterVendorCommand creates a vendor registration command.
func NewRegisterVendorCommand(
	vendorID kernel.UUID,
	actor kernel.Actor,
	businessName string,
) (RegisterVendorCommand, error) {
	cmd := RegisterVendorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(vendorID.Validate(), actor.Validate()); err != nil {
		return RegisterVendorCommand{}, err
	}

	cmd.vendorID = vendorID
	cmd.actor = actor
	cmd.businessName = businessName
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterVendorCommand) Validate() error {
	return c.guard.Validate(ErrRegisterVendorCommandIsNotConstructed)
}

// VendorID returns the identifier for the new profile.
func (c RegisterVendorCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Actor returns the registering user.
func (c RegisterVendorCommand) Actor() kernel.Actor {
	return c.actor
}

// BusinessName returns the shop's display name.
func (c RegisterVendorCommand) BusinessName() string {
	return c.businessName
}
