package ports

import (
	"context"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/domain/model/partner"
)

// PartnerRepository defines the persistence contract for delivery partner profiles.
type PartnerRepository interface {
	// Add persists a new partner profile.
	Add(ctx context.Context, aggregate *partner.DeliveryPartner) error

	// Update persists changes to an existing partner profile.
	Update(ctx context.Context, aggregate *partner.DeliveryPartner) error

	// Get retrieves a partner profile by its unique identifier.
	// Returns errs.ObjectNotFoundError if no such partner exists.
	Get(ctx context.Context, id kernel.UUID) (*partner.DeliveryPartner, error)

	// GetByUser retrieves the partner profile owned by the given platform user.
	// Returns errs.ObjectNotFoundError if the user has no partner profile.
	GetByUser(ctx context.Context, userID kernel.UUID) (*partner.DeliveryPartner, error)

	// GetAllDispatchable retrieves the dispatch pool: active, verified partners
	// with a known location.
	GetAllDispatchable(ctx context.Context) ([]*partner.DeliveryPartner, error)
}
