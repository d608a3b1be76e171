package order

import (
	"fmt"
	"strings"

	"quickbasket/internal/pkg/errs"
)

// Status represents the delivery lifecycle state of an order.
// It implements a state machine with an explicit transition table so that an
// invalid status can never reach storage and every mutation is checked against
// its declared predecessor.
//
// State transitions:
//
//	Pending ──> Approved ──> Assigned ──> Accepted ──> PickedUp ──> OutForDelivery ──> Delivered
//	   │            │            │
//	   │            │            └──> (partner rejected: back to Approved)
//	   │            └──> Cancelled
//	   ├──> Cancelled
//	   └──> RejectedByVendor
//
// Delivered, Cancelled, and RejectedByVendor are terminal: once reached, the
// delivery status is immutable.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at checkout.
	// The order is waiting for the vendor's review.
	Pending

	// Approved means the vendor accepted the order and it is dispatchable.
	Approved

	// Assigned means the dispatch engine bound a delivery partner to the order.
	// The partner has not yet responded.
	Assigned

	// Accepted means the bound partner accepted the assignment.
	Accepted

	// PickedUp means the partner collected the goods from the vendor.
	PickedUp

	// OutForDelivery means the partner is en route to the customer.
	// Position samples are only ingested while in this status.
	OutForDelivery

	// Delivered means the order reached the customer. Terminal.
	Delivered

	// Cancelled means the customer or an administrator cancelled the order. Terminal.
	Cancelled

	// RejectedByVendor means the vendor declined the order. Terminal.
	RejectedByVendor
)

// getStatusStrings returns a map of Status values to their wire representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "unknown",
		Pending:          "pending",
		Approved:         "approved",
		Assigned:         "assigned",
		Accepted:         "accepted",
		PickedUp:         "picked_up",
		OutForDelivery:   "out_for_delivery",
		Delivered:        "delivered",
		Cancelled:        "cancelled",
		RejectedByVendor: "rejected_by_vendor",
	}
}

// transitions is the closed transition table. A status may only move to one of
// the statuses listed for it; terminal statuses have no entries.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:        {Approved, RejectedByVendor, Cancelled},
		Approved:       {Assigned, Cancelled},
		Assigned:       {Accepted, Approved, Cancelled},
		Accepted:       {PickedUp, Cancelled},
		PickedUp:       {OutForDelivery, Cancelled},
		OutForDelivery: {Delivered, Cancelled},
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other unmapped values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, e.g. "out_for_delivery".
// This method implements the fmt.Stringer interface and is safe to call on any
// Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a wire status name. Returns an error for
// unrecognized names, preventing a stringly-typed status from entering the domain.
func StatusFromString(str string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == str {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", str))
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == RejectedByVendor
}

// CanTransitionTo reports whether the transition table permits moving from the
// current status to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// transitionTo returns next if the transition table permits it. Any other
// current status means the caller acted on an outdated view of the order, so
// the failure classifies as stale state, the same way a lost compare-and-set
// does at the storage layer.
func (s Status) transitionTo(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return 0, errs.NewStaleStateErrorWithCause(
			"order", s, reachableFrom(next),
			fmt.Errorf("%s -> %s is not a permitted transition", s, next),
		)
	}
	return next, nil
}

// reachableFrom names the statuses from which next is reachable.
func reachableFrom(next Status) string {
	names := make([]string, 0, 2)
	for _, from := range []Status{Pending, Approved, Assigned, Accepted, PickedUp, OutForDelivery} {
		if from.CanTransitionTo(next) {
			names = append(names, from.String())
		}
	}
	return strings.Join(names, " or ")
}

// Approve transitions Pending -> Approved. Driven by the vendor.
func (s Status) Approve() (Status, error) {
	return s.transitionTo(Approved)
}

// RejectByVendor transitions Pending -> RejectedByVendor. Driven by the vendor. Terminal.
func (s Status) RejectByVendor() (Status, error) {
	return s.transitionTo(RejectedByVendor)
}

// Assign transitions Approved -> Assigned. Driven by the dispatch engine.
func (s Status) Assign() (Status, error) {
	return s.transitionTo(Assigned)
}

// Accept transitions Assigned -> Accepted. Driven by the bound partner.
func (s Status) Accept() (Status, error) {
	return s.transitionTo(Accepted)
}

// ReturnForDispatch transitions Assigned -> Approved after the bound partner
// rejected the assignment, making the order dispatchable again.
func (s Status) ReturnForDispatch() (Status, error) {
	return s.transitionTo(Approved)
}

// MarkPickedUp transitions Accepted -> PickedUp. Driven by the bound partner.
func (s Status) MarkPickedUp() (Status, error) {
	return s.transitionTo(PickedUp)
}

// MarkOutForDelivery transitions PickedUp -> OutForDelivery. Driven by the bound partner.
func (s Status) MarkOutForDelivery() (Status, error) {
	return s.transitionTo(OutForDelivery)
}

// MarkDelivered transitions OutForDelivery -> Delivered. Driven by the bound partner. Terminal.
func (s Status) MarkDelivered() (Status, error) {
	return s.transitionTo(Delivered)
}

// InCancellationWindow reports whether a customer-initiated cancel is still
// permitted. The window closes once dispatch has bound a partner.
func (s Status) InCancellationWindow() bool {
	return s == Pending || s == Approved
}

// Cancel transitions any non-terminal status -> Cancelled. Customer-initiated
// cancels are only permitted while InCancellationWindow; adminOverride lifts the
// window restriction but never the terminal one.
func (s Status) Cancel(adminOverride bool) (Status, error) {
	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is terminal and cannot be cancelled", s),
		)
	}
	if !adminOverride && !s.InCancellationWindow() {
		return 0, ErrCancellationWindowClosed
	}
	return Cancelled, nil
}
