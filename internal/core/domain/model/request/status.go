package request

import (
	"fmt"
	"strings"

	"quickbasket/internal/pkg/errs"
)

// Status is the delivery request's own lifecycle state. It mirrors the order
// status from Assigned onward but belongs to a single partner binding: a
// rejected request terminates while the order itself returns to the dispatch
// pool and gets a fresh request.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusAssigned means the request was created and awaits the partner's response.
	StatusAssigned

	// StatusAccepted means the partner accepted the assignment.
	StatusAccepted

	// StatusRejectedByPartner means the partner declined. Terminal for this request.
	StatusRejectedByPartner

	// StatusPickedUp means the partner collected the goods.
	StatusPickedUp

	// StatusOutForDelivery means the partner is en route to the customer.
	StatusOutForDelivery

	// StatusDelivered means the order reached the customer. Terminal.
	StatusDelivered

	// StatusCancelled means the order was cancelled while this request was live. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:           "unknown",
		StatusAssigned:          "assigned",
		StatusAccepted:          "accepted",
		StatusRejectedByPartner: "rejected_by_partner",
		StatusPickedUp:          "picked_up",
		StatusOutForDelivery:    "out_for_delivery",
		StatusDelivered:         "delivered",
		StatusCancelled:         "cancelled",
	}
}

func transitions() map[Status][]Status {
	return map[Status][]Status{
		StatusAssigned:       {StatusAccepted, StatusRejectedByPartner, StatusCancelled},
		StatusAccepted:       {StatusPickedUp, StatusCancelled},
		StatusPickedUp:       {StatusOutForDelivery, StatusCancelled},
		StatusOutForDelivery: {StatusDelivered, StatusCancelled},
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a wire status name.
func StatusFromString(str string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != StatusUnknown && name == str {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", str))
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusRejectedByPartner || s == StatusDelivered || s == StatusCancelled
}

// transitionTo returns next if the transition table permits it. Any other
// current status means the caller acted on an outdated view of the request,
// reported as stale state.
func (s Status) transitionTo(next Status) (Status, error) {
	if canTransitionTo(s, next) {
		return next, nil
	}
	return 0, errs.NewStaleStateErrorWithCause(
		"request", s, reachableFrom(next),
		fmt.Errorf("%s -> %s is not a permitted transition", s, next),
	)
}

// reachableFrom names the statuses from which next is reachable.
func reachableFrom(next Status) string {
	names := make([]string, 0, 2)
	for _, from := range []Status{StatusAssigned, StatusAccepted, StatusPickedUp, StatusOutForDelivery} {
		if canTransitionTo(from, next) {
			names = append(names, from.String())
		}
	}
	return strings.Join(names, " or ")
}

func canTransitionTo(from, next Status) bool {
	for _, allowed := range transitions()[from] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Accept transitions Assigned -> Accepted.
func (s Status) Accept() (Status, error) {
	return s.transitionTo(StatusAccepted)
}

// Reject transitions Assigned -> RejectedByPartner.
func (s Status) Reject() (Status, error) {
	return s.transitionTo(StatusRejectedByPartner)
}

// MarkPickedUp transitions Accepted -> PickedUp.
func (s Status) MarkPickedUp() (Status, error) {
	return s.transitionTo(StatusPickedUp)
}

// MarkOutForDelivery transitions PickedUp -> OutForDelivery.
func (s Status) MarkOutForDelivery() (Status, error) {
	return s.transitionTo(StatusOutForDelivery)
}

// MarkDelivered transitions OutForDelivery -> Delivered.
func (s Status) MarkDelivered() (Status, error) {
	return s.transitionTo(StatusDelivered)
}

// Cancel transitions any non-terminal status -> Cancelled.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is terminal and cannot be cancelled", s),
		)
	}
	return StatusCancelled, nil
}
