// Package queries contains read-side operations in the CQRS architecture.
// Query handlers bypass the domain aggregates and read projection-shaped rows
// straight from the database with raw SQL.
package queries

import (
	"errors"
	"time"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/pkg/guard"
)

var ErrGetLatestPositionQueryIsNotConstructed = errors.New(
	"GetLatestPositionQuery must be created via NewGetLatestPositionQuery constructor",
)

// GetLatestPositionQuery retrieves the newest tracking sample for an order.
// The newest sample by recorded-at wins, regardless of arrival order, so a
// delayed report can never roll the marker backwards.
type GetLatestPositionQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLatestPositionQuery creates a query for an order's latest reported position.
func NewGetLatestPositionQuery(orderID kernel.UUID) (GetLatestPositionQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetLatestPositionQuery{}, err
	}

	return GetLatestPositionQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLatestPositionQuery) Validate() error {
	return q.guard.Validate(ErrGetLatestPositionQueryIsNotConstructed)
}

// OrderID returns the order whose position is requested.
func (q GetLatestPositionQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetLatestPositionQueryResponse is the latest known position of an order in
// transit. CustomerID and VendorID identify the order's audiences so the
// transport layer can authorize the read without a second round trip.
type GetLatestPositionQueryResponse struct {
	OrderID    kernel.UUID
	PartnerID  kernel.UUID
	CustomerID kernel.UUID
	VendorID   kernel.UUID
	Point      kernel.GeoPoint
	RecordedAt time.Time
}
