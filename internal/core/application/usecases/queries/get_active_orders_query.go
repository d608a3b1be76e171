package queries

import (
	"errors"
	"time"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves a vendor's non-terminal orders for the
// fulfillment dashboard. The vendor is resolved from the acting user, never
// from a client-supplied vendor id.
type GetActiveOrdersQuery struct { //nolint:recvcheck //using for validation
	vendorUserID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for the orders a vendor is working.
func NewGetActiveOrdersQuery(vendorUserID kernel.UUID) (GetActiveOrdersQuery, error) {
	if err := vendorUserID.Validate(); err != nil {
		return GetActiveOrdersQuery{}, err
	}

	return GetActiveOrdersQuery{
		vendorUserID: vendorUserID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// VendorUserID returns the acting vendor user.
func (q GetActiveOrdersQuery) VendorUserID() kernel.UUID {
	return q.vendorUserID
}

// GetActiveOrdersQueryResponse is one row of the vendor dashboard.
// Status carries the lifecycle wire name ("pending", "out_for_delivery", ...).
type GetActiveOrdersQueryResponse struct {
	ID          kernel.UUID
	CustomerID  kernel.UUID
	PartnerID   *kernel.UUID
	Status      string
	FinalAmount float64
	CreatedAt   time.Time
}
