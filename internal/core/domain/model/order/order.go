package order

import (
	"errors"
	"fmt"
	"time"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrItemIsNotConstructed is returned when an Item was not created via NewItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

	// ErrCancellationWindowClosed is returned when a customer attempts to cancel an
	// order after dispatch has bound a delivery partner. Only an administrator may
	// cancel past that point.
	ErrCancellationWindowClosed = errors.New("cancellation window closed")
)

// Order is the aggregate root for fulfillment. It owns the delivery lifecycle:
// every status change goes through a transition method backed by the Status
// state machine, so an order can never reach an inconsistent state in memory.
//
// Payment fields (paymentStatus and the amounts) are co-resident but owned by
// the checkout collaborator: lifecycle transitions never touch them, they are
// only carried so the record store holds one row per order.
//
// Order follows these invariants:
//   - Must have valid customer, vendor, and address identifiers
//   - Must have at least one item; items are immutable snapshots
//   - A delivery partner is bound while Assigned and onward, never before
//   - Status transitions follow the closed transition table in Status
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID is the ordering customer
	customerID kernel.UUID

	// vendorID is the vendor fulfilling the order
	vendorID kernel.UUID

	// addressID references the customer's delivery address
	addressID kernel.UUID

	// partnerID is the bound delivery partner (nil until dispatch assigns one)
	partnerID *kernel.UUID

	// items are the checkout line snapshots (never modified after creation)
	items []Item

	// status is the current delivery lifecycle state
	status Status

	// paymentStatus is owned by the checkout collaborator, carried verbatim
	paymentStatus string

	// subtotal, discountAmount, finalAmount are checkout-computed totals
	subtotal       float64
	discountAmount float64
	finalAmount    float64

	// couponCode is the applied coupon, empty if none
	couponCode string

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status. This is the checkout boundary:
// the caller supplies the already-computed totals and item snapshots, and the
// order enters the lifecycle waiting for the vendor's review.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	vendorID kernel.UUID,
	addressID kernel.UUID,
	items []Item,
	paymentStatus string,
	subtotal float64,
	discountAmount float64,
	finalAmount float64,
	couponCode string,
) (*Order, error) {
	now := time.Now().UTC()

	order := &Order{
		status:        Pending,
		paymentStatus: paymentStatus,
		couponCode:    couponCode,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setVendorID(vendorID),
		order.setAddressID(addressID),
		order.setItems(items),
		order.setAmounts(subtotal, discountAmount, finalAmount),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence without re-running the
// creation rules. The storage layer is trusted to hand back what it was given;
// only structural validity is checked.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	vendorID kernel.UUID,
	addressID kernel.UUID,
	partnerID *kernel.UUID,
	items []Item,
	status Status,
	paymentStatus string,
	subtotal float64,
	discountAmount float64,
	finalAmount float64,
	couponCode string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		vendorID.Validate(),
		addressID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if partnerID != nil {
		if err := partnerID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:             id,
		customerID:     customerID,
		vendorID:       vendorID,
		addressID:      addressID,
		partnerID:      partnerID,
		items:          items,
		status:         status,
		paymentStatus:  paymentStatus,
		subtotal:       subtotal,
		discountAmount: discountAmount,
		finalAmount:    finalAmount,
		couponCode:     couponCode,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's id.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// VendorID returns the fulfilling vendor's id.
func (o *Order) VendorID() kernel.UUID {
	return o.vendorID
}

// AddressID returns the delivery address reference.
func (o *Order) AddressID() kernel.UUID {
	return o.addressID
}

// Partner returns the bound delivery partner's id, or nil if none is bound.
func (o *Order) Partner() *kernel.UUID {
	return o.partnerID
}

// Items returns the checkout line snapshots.
func (o *Order) Items() []Item {
	return o.items
}

// Status returns the current delivery lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the checkout-owned payment status.
func (o *Order) PaymentStatus() string {
	return o.paymentStatus
}

// Subtotal returns the pre-discount total.
func (o *Order) Subtotal() float64 {
	return o.subtotal
}

// DiscountAmount returns the applied discount.
func (o *Order) DiscountAmount() float64 {
	return o.discountAmount
}

// FinalAmount returns the amount the customer pays.
func (o *Order) FinalAmount() float64 {
	return o.finalAmount
}

// CouponCode returns the applied coupon code, empty if none.
func (o *Order) CouponCode() string {
	return o.couponCode
}

// CreatedAt returns the order creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last modification time.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Approve moves the order from Pending to Approved. Driven by the vendor;
// after approval the order is visible to the dispatch engine.
func (o *Order) Approve() error {
	return o.transition(o.status.Approve)
}

// RejectByVendor moves the order from Pending to the terminal RejectedByVendor.
func (o *Order) RejectByVendor() error {
	return o.transition(o.status.RejectByVendor)
}

// Assign binds a delivery partner and moves the order from Approved to Assigned.
// The partner has not accepted yet; the binding is tentative until they respond.
func (o *Order) Assign(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	if err := o.transition(o.status.Assign); err != nil {
		return err
	}

	o.partnerID = &partnerID
	return nil
}

// Accept confirms the bound partner took the assignment (Assigned -> Accepted).
func (o *Order) Accept() error {
	return o.transition(o.status.Accept)
}

// ReturnForDispatch unbinds the partner after they rejected the assignment,
// moving the order back from Assigned to Approved so dispatch can try again.
func (o *Order) ReturnForDispatch() error {
	if err := o.transition(o.status.ReturnForDispatch); err != nil {
		return err
	}

	o.partnerID = nil
	return nil
}

// MarkPickedUp records the partner collecting the goods (Accepted -> PickedUp).
func (o *Order) MarkPickedUp() error {
	return o.transition(o.status.MarkPickedUp)
}

// MarkOutForDelivery records the partner leaving for the customer
// (PickedUp -> OutForDelivery). Position samples are only accepted in this status.
func (o *Order) MarkOutForDelivery() error {
	return o.transition(o.status.MarkOutForDelivery)
}

// MarkDelivered records the handover to the customer (OutForDelivery -> Delivered).
// Terminal.
func (o *Order) MarkDelivered() error {
	return o.transition(o.status.MarkDelivered)
}

// Cancel moves the order to the terminal Cancelled status. Customers may cancel
// only while the cancellation window is open (Pending or Approved); an admin
// override extends that to any non-terminal status. Returns
// ErrCancellationWindowClosed when a customer cancels too late.
func (o *Order) Cancel(adminOverride bool) error {
	return o.transition(func() (Status, error) {
		return o.status.Cancel(adminOverride)
	})
}

// transition applies a status transition function and stamps updatedAt.
func (o *Order) transition(fn func() (Status, error)) error {
	newStatus, err := fn()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the ordering customer.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerID", err)
	}
	o.customerID = customerID
	return nil
}

// setVendorID validates and sets the fulfilling vendor.
func (o *Order) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("vendorID", err)
	}
	o.vendorID = vendorID
	return nil
}

// setAddressID validates and sets the delivery address reference.
func (o *Order) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("addressID", err)
	}
	o.addressID = addressID
	return nil
}

// setItems validates and sets the checkout line snapshots.
// An order must carry at least one item.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = items
	return nil
}

// setAmounts validates and sets the checkout-computed totals.
func (o *Order) setAmounts(subtotal, discountAmount, finalAmount float64) error {
	if subtotal < 0 || discountAmount < 0 || finalAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amounts",
			fmt.Errorf("subtotal %f, discount %f, final %f must all be non-negative",
				subtotal, discountAmount, finalAmount))
	}

	o.subtotal = subtotal
	o.discountAmount = discountAmount
	o.finalAmount = finalAmount
	return nil
}
