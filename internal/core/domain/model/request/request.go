package request

import (
	"errors"
	"time"

	"quickbasket/internal/core/domain/model/kernel"
)

var (
	// ErrDeliveryRequestIsNotConstructed is returned when a DeliveryRequest was
	// not created through a constructor.
	ErrDeliveryRequestIsNotConstructed = errors.New(
		"DeliveryRequest must be created via NewDeliveryRequest constructor")

	// ErrAlreadyResponded is returned when a partner responds to a request they
	// have already responded to. The first response stands; no second record
	// is written.
	ErrAlreadyResponded = errors.New("partner has already responded to this request")
)

// DeliveryRequest binds one delivery partner to one order for the duration of
// an assignment attempt. An order has at most one non-terminal request at a
// time; a rejection terminates the request and the order returns to the
// dispatch pool.
type DeliveryRequest struct {
	id        kernel.UUID
	orderID   kernel.UUID
	vendorID  kernel.UUID
	partnerID kernel.UUID
	status    Status

	// pickedUpAt and deliveredAt stamp the physical milestones (nil until reached)
	pickedUpAt  *time.Time
	deliveredAt *time.Time

	createdAt time.Time

	isConstructed bool
}

// NewDeliveryRequest creates an Assigned request binding the partner to the order.
func NewDeliveryRequest(
	id kernel.UUID,
	orderID kernel.UUID,
	vendorID kernel.UUID,
	partnerID kernel.UUID,
) (*DeliveryRequest, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		vendorID.Validate(),
		partnerID.Validate(),
	); err != nil {
		return nil, err
	}

	return &DeliveryRequest{
		id:            id,
		orderID:       orderID,
		vendorID:      vendorID,
		partnerID:     partnerID,
		status:        StatusAssigned,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreDeliveryRequest reconstructs a request from persistence.
func RestoreDeliveryRequest(
	id kernel.UUID,
	orderID kernel.UUID,
	vendorID kernel.UUID,
	partnerID kernel.UUID,
	status Status,
	pickedUpAt *time.Time,
	deliveredAt *time.Time,
	createdAt time.Time,
) (*DeliveryRequest, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		vendorID.Validate(),
		partnerID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &DeliveryRequest{
		id:            id,
		orderID:       orderID,
		vendorID:      vendorID,
		partnerID:     partnerID,
		status:        status,
		pickedUpAt:    pickedUpAt,
		deliveredAt:   deliveredAt,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the DeliveryRequest was created through a constructor.
func (r *DeliveryRequest) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrDeliveryRequestIsNotConstructed
	}
	return nil
}

// ID returns the request id.
func (r *DeliveryRequest) ID() kernel.UUID {
	return r.id
}

// OrderID returns the bound order.
func (r *DeliveryRequest) OrderID() kernel.UUID {
	return r.orderID
}

// VendorID returns the fulfilling vendor.
func (r *DeliveryRequest) VendorID() kernel.UUID {
	return r.vendorID
}

// PartnerID returns the bound delivery partner.
func (r *DeliveryRequest) PartnerID() kernel.UUID {
	return r.partnerID
}

// Status returns the request's lifecycle state.
func (r *DeliveryRequest) Status() Status {
	return r.status
}

// PickedUpAt returns when the goods were collected, or nil.
func (r *DeliveryRequest) PickedUpAt() *time.Time {
	return r.pickedUpAt
}

// DeliveredAt returns when the handover happened, or nil.
func (r *DeliveryRequest) DeliveredAt() *time.Time {
	return r.deliveredAt
}

// CreatedAt returns the request creation time.
func (r *DeliveryRequest) CreatedAt() time.Time {
	return r.createdAt
}

// IsBoundTo reports whether the given partner is the one this request binds.
// Only the bound partner may respond to or progress the request.
func (r *DeliveryRequest) IsBoundTo(partnerID kernel.UUID) bool {
	return r.partnerID.IsEqual(partnerID)
}

// Accept records the partner taking the assignment.
func (r *DeliveryRequest) Accept() error {
	return r.transition(r.status.Accept)
}

// Reject records the partner declining the assignment. Terminal for this request.
func (r *DeliveryRequest) Reject() error {
	return r.transition(r.status.Reject)
}

// MarkPickedUp records collection of the goods and stamps pickedUpAt.
func (r *DeliveryRequest) MarkPickedUp() error {
	if err := r.transition(r.status.MarkPickedUp); err != nil {
		return err
	}

	now := time.Now().UTC()
	r.pickedUpAt = &now
	return nil
}

// MarkOutForDelivery records the partner leaving for the customer.
func (r *DeliveryRequest) MarkOutForDelivery() error {
	return r.transition(r.status.MarkOutForDelivery)
}

// MarkDelivered records the handover and stamps deliveredAt. Terminal.
func (r *DeliveryRequest) MarkDelivered() error {
	if err := r.transition(r.status.MarkDelivered); err != nil {
		return err
	}

	now := time.Now().UTC()
	r.deliveredAt = &now
	return nil
}

// Cancel terminates the request because the order was cancelled.
func (r *DeliveryRequest) Cancel() error {
	return r.transition(r.status.Cancel)
}

func (r *DeliveryRequest) transition(fn func() (Status, error)) error {
	newStatus, err := fn()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}
