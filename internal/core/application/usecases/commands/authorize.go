package commands

import (
	"context"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/domain/model/order"
	"quickbasket/internal/core/domain/model/partner"
	"quickbasket/internal/core/ports"
	"quickbasket/internal/pkg/errs"
)

// authorizeVendorForOrder verifies the actor may perform vendor operations on
// the order: an admin always may, a vendor only when their profile owns the
// order. Identity comes from the actor, never from request payloads.
func authorizeVendorForOrder(
	ctx context.Context,
	vendors ports.VendorRepository,
	actor kernel.Actor,
	o *order.Order,
) error {
	if actor.Is(kernel.RoleAdmin) {
		return nil
	}

	if !actor.Is(kernel.RoleVendor) {
		return errs.NewNotAuthorizedError(actor.ID(), "order", o.ID())
	}

	v, err := vendors.GetByUser(ctx, actor.ID())
	if err != nil {
		return errs.NewNotAuthorizedError(actor.ID(), "order", o.ID())
	}

	if !v.ID().IsEqual(o.VendorID()) {
		return errs.NewNotAuthorizedError(actor.ID(), "order", o.ID())
	}

	return nil
}

// authorizeCustomerForOrder verifies the actor is the order's customer or an admin.
func authorizeCustomerForOrder(actor kernel.Actor, o *order.Order) error {
	if actor.Is(kernel.RoleAdmin) {
		return nil
	}

	if !actor.Is(kernel.RoleCustomer) || !actor.ID().IsEqual(o.CustomerID()) {
		return errs.NewNotAuthorizedError(actor.ID(), "order", o.ID())
	}

	return nil
}

// resolveActingPartner resolves the actor's delivery partner profile.
// Non-partner actors are refused outright.
func resolveActingPartner(
	ctx context.Context,
	partners ports.PartnerRepository,
	actor kernel.Actor,
	entity string,
	entityID kernel.UUID,
) (*partner.DeliveryPartner, error) {
	if !actor.Is(kernel.RoleDeliveryPartner) {
		return nil, errs.NewNotAuthorizedError(actor.ID(), entity, entityID)
	}

	p, err := partners.GetByUser(ctx, actor.ID())
	if err != nil {
		return nil, errs.NewNotAuthorizedError(actor.ID(), entity, entityID)
	}

	return p, nil
}
