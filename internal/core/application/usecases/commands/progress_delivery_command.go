package commands

import (
	"errors"
	"fmt"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/pkg/errs"
	"quickbasket/internal/pkg/guard"
)

var ErrProgressDeliveryCommandIsNotConstructed = errors.New(
	"ProgressDeliveryCommand must be created via NewProgressDeliveryCommand constructor",
)

// Stage names a physical delivery milestone the bound partner reports.
type Stage int

const (
	// StageUnknown represents an invalid or undefined stage.
	StageUnknown Stage = iota

	// StagePickedUp means the goods were collected from the vendor.
	StagePickedUp

	// StageOutForDelivery means the partner left for the customer.
	StageOutForDelivery

	// StageDelivered means the goods were handed to the customer.
	StageDelivered
)

func getStageStrings() map[Stage]string {
	return map[Stage]string{
		StageUnknown:        "unknown",
		StagePickedUp:       "picked_up",
		StageOutForDelivery: "out_for_delivery",
		StageDelivered:      "delivered",
	}
}

// Validate checks if the Stage value is valid.
func (s Stage) Validate() error {
	if _, ok := getStageStrings()[s]; !ok || s == StageUnknown {
		return errs.NewValueIsInvalidErrorWithCause("stage", fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// String returns the wire name of the stage.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StageFromString parses a wire stage name.
func StageFromString(str string) (Stage, error) {
	for stage, name := range getStageStrings() {
		if stage != StageUnknown && name == str {
			return stage, nil
		}
	}
	return StageUnknown, errs.NewValueIsInvalidErrorWithCause("stage", fmt.Errorf("%q is not a valid stage", str))
}

// ProgressDeliveryCommand is the bound partner reporting a physical milestone.
// The request and order statuses move together; stages must be reported in
// order and cannot be skipped.
type ProgressDeliveryCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	actor     kernel.Actor
	stage     Stage

	guard guard.ConstructorGuard
}

// NewProgressDeliveryCommand creates a command reporting a delivery milestone.
func NewProgressDeliveryCommand(
	requestID kernel.UUID,
	actor kernel.Actor,
	stage Stage,
) (ProgressDeliveryCommand, error) {
	cmd := ProgressDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requestID.Validate(),
		actor.Validate(),
		stage.Validate(),
	); err != nil {
		return ProgressDeliveryCommand{}, err
	}

	cmd.requestID = requestID
	cmd.actor = actor
	cmd.stage = stage
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProgressDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrProgressDeliveryCommandIsNotConstructed)
}

// RequestID returns the request being progressed.
func (c ProgressDeliveryCommand) RequestID() kernel.UUID {
	return c.requestID
}

// Actor returns the reporting party.
func (c ProgressDeliveryCommand) Actor() kernel.Actor {
	return c.actor
}

// Stage returns the reported milestone.
func (c ProgressDeliveryCommand) Stage() Stage {
	return c.stage
}
