package request

import (
	"errors"
	"fmt"
	"time"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/pkg/errs"
)

// Decision is a partner's answer to a delivery request.
type Decision int

const (
	// DecisionUnknown represents an invalid or undefined decision.
	DecisionUnknown Decision = iota

	// DecisionAccepted means the partner took the assignment.
	DecisionAccepted

	// DecisionRejected means the partner declined the assignment.
	DecisionRejected
)

func getDecisionStrings() map[Decision]string {
	return map[Decision]string{
		DecisionUnknown:  "unknown",
		DecisionAccepted: "accepted",
		DecisionRejected: "rejected",
	}
}

// Validate checks if the Decision value is valid.
func (d Decision) Validate() error {
	if _, ok := getDecisionStrings()[d]; !ok || d == DecisionUnknown {
		return errs.NewValueIsInvalidErrorWithCause("decision", fmt.Errorf("%d is not a valid decision", d))
	}
	return nil
}

// String returns the wire name of the decision.
func (d Decision) String() string {
	if str, ok := getDecisionStrings()[d]; ok {
		return str
	}
	return "unknown"
}

// DecisionFromString parses a wire decision name.
func DecisionFromString(str string) (Decision, error) {
	for decision, name := range getDecisionStrings() {
		if decision != DecisionUnknown && name == str {
			return decision, nil
		}
	}
	return DecisionUnknown, errs.NewValueIsInvalidErrorWithCause("decision",
		fmt.Errorf("%q is not a valid decision", str))
}

// Response is the append-only record of a partner's answer to a request.
// At most one response exists per (request, partner) pair; the storage layer
// enforces that with a unique constraint and the first answer always stands.
type Response struct {
	id          kernel.UUID
	requestID   kernel.UUID
	partnerID   kernel.UUID
	decision    Decision
	respondedAt time.Time

	isConstructed bool
}

// NewResponse records a partner's decision on a request.
func NewResponse(
	id kernel.UUID,
	requestID kernel.UUID,
	partnerID kernel.UUID,
	decision Decision,
) (*Response, error) {
	if err := errors.Join(
		id.Validate(),
		requestID.Validate(),
		partnerID.Validate(),
		decision.Validate(),
	); err != nil {
		return nil, err
	}

	return &Response{
		id:            id,
		requestID:     requestID,
		partnerID:     partnerID,
		decision:      decision,
		respondedAt:   time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreResponse reconstructs a response from persistence.
func RestoreResponse(
	id kernel.UUID,
	requestID kernel.UUID,
	partnerID kernel.UUID,
	decision Decision,
	respondedAt time.Time,
) (*Response, error) {
	if err := errors.Join(
		id.Validate(),
		requestID.Validate(),
		partnerID.Validate(),
		decision.Validate(),
	); err != nil {
		return nil, err
	}

	return &Response{
		id:            id,
		requestID:     requestID,
		partnerID:     partnerID,
		decision:      decision,
		respondedAt:   respondedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Response was created through a constructor.
func (r *Response) Validate() error {
	if r == nil || !r.isConstructed {
		return errs.NewValueIsRequiredError("response must be created via NewResponse constructor")
	}
	return nil
}

// ID returns the response id.
func (r *Response) ID() kernel.UUID {
	return r.id
}

// RequestID returns the answered request.
func (r *Response) RequestID() kernel.UUID {
	return r.requestID
}

// PartnerID returns the responding partner.
func (r *Response) PartnerID() kernel.UUID {
	return r.partnerID
}

// Decision returns the partner's answer.
func (r *Response) Decision() Decision {
	return r.decision
}

// RespondedAt returns when the answer was recorded.
func (r *Response) RespondedAt() time.Time {
	return r.respondedAt
}
