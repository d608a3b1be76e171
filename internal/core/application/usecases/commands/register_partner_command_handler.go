package commands

import (
	"context"

	"quickbasket/internal/core/domain/model/partner"
)

// RegisterPartnerCommandHandler persists a new delivery partner profile owned
// by the acting user.
type RegisterPartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewRegisterPartnerCommandHandler creates a handler for partner registration.
func NewRegisterPartnerCommandHandler(uowFactory PartnerUoWFactory) RegisterPartnerCommandHandler {
	return RegisterPartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the profile. The one-profile-per-user rule is enforced by the
// storage layer's unique constraint on the owning user.
func (h RegisterPartnerCommandHandler) Handle(ctx context.Context, command RegisterPartnerCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	p, err := partner.NewDeliveryPartner(
		command.PartnerID(),
		command.Actor().ID(),
		command.VehicleType(),
		command.VehicleNumber(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PartnerRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
