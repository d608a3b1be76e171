package ports

import (
	"context"
	"errors"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/domain/model/order"
)

// ErrOrderAlreadyExists is returned by OrderRepository.Add when an order with
// the same id is already stored. The order id travels in the intake event, so
// a replayed event hits this instead of registering a second order.
var ErrOrderAlreadyExists = errors.New("order already exists")

// OrderRepository defines the persistence contract for order aggregates.
//
// Lifecycle changes go through Transition, which applies the aggregate's state
// as a conditional update guarded by the expected predecessor status. There is
// no unconditional status write: a lost race surfaces as errs.StaleStateError
// instead of silently overwriting a concurrent transition.
type OrderRepository interface {
	// Add persists a new order aggregate to storage. Returns
	// ErrOrderAlreadyExists when an order with the same id is already stored.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Transition persists the aggregate's status and partner binding with a
	// compare-and-set guard: the row is updated only while its stored status
	// still equals expectedStatus. Returns errs.StaleStateError when the guard
	// fails.
	Transition(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// GetAllInStatus retrieves all orders currently in the given status.
	// The dispatch job uses this to find approved, dispatchable orders.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// Delete hard-deletes an order row. Used by purge for terminal orders only;
	// the caller is responsible for removing dependent records first.
	Delete(ctx context.Context, id kernel.UUID) error
}
