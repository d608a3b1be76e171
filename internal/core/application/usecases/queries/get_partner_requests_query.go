package queries

import (
	"errors"
	"time"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/pkg/guard"
)

var ErrGetPartnerRequestsQueryIsNotConstructed = errors.New(
	"GetPartnerRequestsQuery must be created via NewGetPartnerRequestsQuery constructor",
)

// GetPartnerRequestsQuery retrieves the delivery requests offered to a
// partner, newest first. The partner is resolved from the acting user.
type GetPartnerRequestsQuery struct { //nolint:recvcheck //using for validation
	partnerUserID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPartnerRequestsQuery creates a query for a partner's request feed.
func NewGetPartnerRequestsQuery(partnerUserID kernel.UUID) (GetPartnerRequestsQuery, error) {
	if err := partnerUserID.Validate(); err != nil {
		return GetPartnerRequestsQuery{}, err
	}

	return GetPartnerRequestsQuery{
		partnerUserID: partnerUserID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPartnerRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnerRequestsQueryIsNotConstructed)
}

// PartnerUserID returns the acting partner user.
func (q GetPartnerRequestsQuery) PartnerUserID() kernel.UUID {
	return q.partnerUserID
}

// GetPartnerRequestsQueryResponse is one row of the partner's request feed.
// RequestStatus and OrderStatus both carry wire names; they can disagree for
// a moment while a coordination command is in flight, and the feed shows both
// so the client renders the request state without a second lookup.
type GetPartnerRequestsQueryResponse struct {
	ID            kernel.UUID
	OrderID       kernel.UUID
	VendorID      kernel.UUID
	RequestStatus string
	OrderStatus   string
	FinalAmount   float64
	CreatedAt     time.Time
}
