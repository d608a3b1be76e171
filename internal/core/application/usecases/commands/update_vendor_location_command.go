package commands

import (
	"errors"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/pkg/guard"
)

var ErrUpdateVendorLocationCommandIsNotConstructed = errors.New(
	"UpdateVendorLocationCommand must be created via NewUpdateVendorLocationCommand constructor",
)

// UpdateVendorLocationCommand sets the acting vendor's shop location. Without
// it, dispatch for the vendor's orders fails with a vendor-location error.
type UpdateVendorLocationCommand struct { //nolint:recvcheck //using for validation
	actor kernel.Actor
	point kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewUpdateVendorLocationCommand creates a shop location update command.
func NewUpdateVendorLocationCommand(actor kernel.Actor, point kernel.GeoPoint) (UpdateVendorLocationCommand, error) {
	cmd := UpdateVendorLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(actor.Validate(), point.Validate()); err != nil {
		return UpdateVendorLocationCommand{}, err
	}

	cmd.actor = actor
	cmd.point = point
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateVendorLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateVendorLocationCommandIsNotConstructed)
}

// Actor returns the acting vendor user.
func (c UpdateVendorLocationCommand) Actor() kernel.Actor {
	return c.actor
}

// Point returns the new shop position.
func (c UpdateVendorLocationCommand) Point() kernel.GeoPoint {
	return c.point
}
