package ports

import (
	"context"

	"quickbasket/internal/core/domain/model/kernel"
)

// ChangeKind names the entity class a change refers to.
type ChangeKind string

const (
	// ChangeKindOrder signals an order record changed.
	ChangeKindOrder ChangeKind = "order"

	// ChangeKindRequest signals a delivery request record changed.
	ChangeKindRequest ChangeKind = "request"
)

// Scope names an audience for change notifications. Subscribers register for
// one scope/id pair, e.g. all changes relevant to a given vendor.
type Scope string

const (
	ScopeCustomer Scope = "customer"
	ScopeVendor   Scope = "vendor"
	ScopePartner  Scope = "partner"
)

// Change is a lightweight invalidation signal: it says that an entity changed,
// not what changed. Consumers re-read through the query layer. Delivery is
// at-least-once and rapid successive changes may be coalesced, which is safe
// precisely because the signal carries no payload to lose.
type Change struct {
	Kind ChangeKind
	ID   kernel.UUID

	// OrderStatus carries the order's lifecycle wire name for order changes,
	// empty otherwise. Subscribers still re-read; the field exists for the
	// integration event bridge, which needs the status without a lookup.
	OrderStatus string

	// Scopes lists the audiences interested in this change, e.g. the order's
	// customer, vendor, and bound partner.
	Scopes map[Scope]kernel.UUID
}

// Subscription is a live change feed for one scope/id pair.
type Subscription interface {
	// Events returns the change channel. Rapid successive changes may collapse
	// into one event; the channel closes after Close or when the subscription's
	// context ends.
	Events() <-chan Change

	// Close unsubscribes and releases the feed's resources.
	Close() error
}

// ChangeNotifier fans out change signals to interested subscribers.
// Publishing never blocks on slow consumers and nothing is buffered for
// audiences with no live subscription.
type ChangeNotifier interface {
	// Publish fans the change out to every scope it names. Called after the
	// owning transaction commits, never before.
	Publish(ctx context.Context, change Change) error

	// Subscribe opens a feed for one scope/id pair.
	Subscribe(ctx context.Context, scope Scope, id kernel.UUID) (Subscription, error)
}
