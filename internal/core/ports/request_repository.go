package ports

import (
	"context"
	"errors"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/domain/model/request"
)

// ErrActiveRequestExists is returned by RequestRepository.Add when the order
// already has a non-terminal request. The storage layer detects this through a
// partial unique index, so concurrent assignment attempts cannot both succeed.
var ErrActiveRequestExists = errors.New("order already has an active delivery request")

// RequestRepository defines the persistence contract for delivery requests and
// their append-only partner responses.
type RequestRepository interface {
	// Add persists a new delivery request. Returns ErrActiveRequestExists when
	// the order already has a non-terminal request.
	Add(ctx context.Context, aggregate *request.DeliveryRequest) error

	// Get retrieves a request by its unique identifier.
	// Returns errs.ObjectNotFoundError if no such request exists.
	Get(ctx context.Context, id kernel.UUID) (*request.DeliveryRequest, error)

	// GetActiveByOrder retrieves the order's single non-terminal request.
	// Returns errs.ObjectNotFoundError if the order has none.
	GetActiveByOrder(ctx context.Context, orderID kernel.UUID) (*request.DeliveryRequest, error)

	// Transition persists the request's status and milestone stamps with a
	// compare-and-set guard on expectedStatus. Returns errs.StaleStateError
	// when the guard fails.
	Transition(ctx context.Context, aggregate *request.DeliveryRequest, expectedStatus request.Status) error

	// AddResponse appends a partner's response. Returns request.ErrAlreadyResponded
	// when the partner already responded to this request; the stored response
	// is left untouched.
	AddResponse(ctx context.Context, response *request.Response) error

	// GetRejectedPartnerIDs lists the partners who rejected any request for the
	// given order. The dispatch engine excludes them from re-dispatch.
	GetRejectedPartnerIDs(ctx context.Context, orderID kernel.UUID) ([]kernel.UUID, error)

	// DeleteByOrder hard-deletes all requests and responses for an order.
	// Used by purge.
	DeleteByOrder(ctx context.Context, orderID kernel.UUID) error
}
