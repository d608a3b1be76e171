package commands

import (
	"errors"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/pkg/guard"
)

var ErrUpdatePartnerLocationCommandIsNotConstructed = errors.New(
	"UpdatePartnerLocationCommand must be created via NewUpdatePartnerLocationCommand constructor",
)

// UpdatePartnerLocationCommand refreshes the acting partner's last known
// position. Dispatch distance calculations read this position.
type UpdatePartnerLocationCommand struct { //nolint:recvcheck //using for validation
	actor kernel.Actor
	point kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewUpdatePartnerLocationCommand creates a location update command.
func NewUpdatePartnerLocationCommand(actor kernel.Actor, point kernel.GeoPoint) (UpdatePartnerLocationCommand, error) {
	cmd := UpdatePartnerLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(actor.Validate(), point.Validate()); err != nil {
		return UpdatePartnerLocationCommand{}, err
	}

	cmd.actor = actor
	cmd.point = point
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePartnerLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePartnerLocationCommandIsNotConstructed)
}

// Actor returns the acting partner user.
func (c UpdatePartnerLocationCommand) Actor() kernel.Actor {
	return c.actor
}

// Point returns the new position.
func (c UpdatePartnerLocationCommand) Point() kernel.GeoPoint {
	return c.point
}
