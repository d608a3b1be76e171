package ports

import (
	"context"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/domain/model/vendor"
)

// VendorRepository defines the persistence contract for vendor profiles.
type VendorRepository interface {
	// Add persists a new vendor profile.
	Add(ctx context.Context, aggregate *vendor.Vendor) error

	// Update persists changes to an existing vendor profile.
	Update(ctx context.Context, aggregate *vendor.Vendor) error

	// Get retrieves a vendor profile by its unique identifier.
	// Returns errs.ObjectNotFoundError if no such vendor exists.
	Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error)

	// GetByUser retrieves the vendor profile owned by the given platform user.
	// Returns errs.ObjectNotFoundError if the user has no vendor profile.
	GetByUser(ctx context.Context, userID kernel.UUID) (*vendor.Vendor, error)
}
