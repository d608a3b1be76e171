package commands

import (
	"context"

	"quickbasket/internal/core/domain/model/vendor"
)

// RegisterVendorCommandHandler persists a new vendor profile owned by the
// acting user.
type RegisterVendorCommandHandler struct {
	uowFactory VendorUoWFactory
}

// NewRegisterVendorCommandHandler creates a handler for vendor registration.
func NewRegisterVendorCommandHandler(uowFactory VendorUoWFactory) RegisterVendorCommandHandler {
	return RegisterVendorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the profile.
func (h RegisterVendorCommandHandler) Handle(ctx context.Context, command RegisterVendorCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	v, err := vendor.NewVendor(command.VendorID(), command.Actor().ID(), command.BusinessName())
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

	if err = uow.VendorRepository().Add(ctx, v); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
