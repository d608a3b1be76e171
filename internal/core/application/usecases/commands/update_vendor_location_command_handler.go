package commands

import (
	"context"
)

// UpdateVendorLocationCommandHandler stores the acting vendor's shop position.
type UpdateVendorLocationCommandHandler struct {
	uowFactory VendorUoWFactory
}

// NewUpdateVendorLocationCommandHandler creates a handler for shop location updates.
func NewUpdateVendorLocationCommandHandler(uowFactory VendorUoWFactory) UpdateVendorLocationCommandHandler {
	return UpdateVendorLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the actor's vendor profile and stores the new position.
func (h UpdateVendorLocationCommandHandler) Handle(ctx context.Context, command UpdateVendorLocationCommand) error {
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

	v, err := uow.VendorRepository().GetByUser(ctx, command.Actor().ID())
	if err != nil {
		return err
	}

	if err = v.SetLocation(command.Point()); err != nil {
		return err
	}

	if err = uow.VendorRepository().Update(ctx, v); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
