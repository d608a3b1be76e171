package commands

import (
	"context"
)

// UpdatePartnerLocationCommandHandler refreshes the acting partner's position.
type UpdatePartnerLocationCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewUpdatePartnerLocationCommandHandler creates a handler for partner location updates.
func NewUpdatePartnerLocationCommandHandler(uowFactory PartnerUoWFactory) UpdatePartnerLocationCommandHandler {
	return UpdatePartnerLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the actor's partner profile and stores the new position.
func (h UpdatePartnerLocationCommandHandler) Handle(ctx context.Context, command UpdatePartnerLocationCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	p, err := uow.PartnerRepository().GetByUser(ctx, command.Actor().ID())
	if err != nil {
		return err
	}

	if err = p.SetLocation(command.Point()); err != nil {
		return err
	}

	if err = uow.PartnerRepository().Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
