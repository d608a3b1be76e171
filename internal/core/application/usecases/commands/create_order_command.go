package commands

import (
	"errors"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/domain/model/order"
	"quickbasket/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one order item is required")
)

// ItemInput carries one checkout line into order creation. Name and price are
// the snapshot values shown to the customer at checkout.
type ItemInput struct {
	ProductID *kernel.UUID
	Name      string
	Price     float64
	Quantity  int
}

// CreateOrderCommand registers a new order from the checkout collaborator.
// The order enters the lifecycle in Pending status, waiting for vendor review.
// Totals and payment status arrive precomputed; the fulfillment core never
// recalculates them.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(orderID, customerID, vendorID, addressID,
//	    items, "paid", 676, 50, 626, "FRESH50")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	customerID     kernel.UUID
	vendorID       kernel.UUID
	addressID      kernel.UUID
	items          []ItemInput
	paymentStatus  string
	subtotal       float64
	discountAmount float64
	finalAmount    float64
	couponCode     string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Identifier validity and item presence are checked here; the deeper item
// rules run in the domain constructors when the handler builds the aggregate.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	vendorID kernel.UUID,
	addressID kernel.UUID,
	items []ItemInput,
	paymentStatus string,
	subtotal float64,
	discountAmount float64,
	finalAmount float64,
	couponCode string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		items:          items,
		paymentStatus:  paymentStatus,
		subtotal:       subtotal,
		discountAmount: discountAmount,
		finalAmount:    finalAmount,
		couponCode:     couponCode,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setVendorID(vendorID),
		cmd.setAddressID(addressID),
		cmd.checkItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// VendorID returns the fulfilling vendor.
func (c CreateOrderCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// AddressID returns the delivery address reference.
func (c CreateOrderCommand) AddressID() kernel.UUID {
	return c.addressID
}

// Items returns the checkout line inputs.
func (c CreateOrderCommand) Items() []ItemInput {
	return c.items
}

// PaymentStatus returns the checkout-owned payment status.
func (c CreateOrderCommand) PaymentStatus() string {
	return c.paymentStatus
}

// Subtotal returns the pre-discount total.
func (c CreateOrderCommand) Subtotal() float64 {
	return c.subtotal
}

// DiscountAmount returns the applied discount.
func (c CreateOrderCommand) DiscountAmount() float64 {
	return c.discountAmount
}

// FinalAmount returns the amount the customer pays.
func (c CreateOrderCommand) FinalAmount() float64 {
	return c.finalAmount
}

// CouponCode returns the applied coupon code, empty if none.
func (c CreateOrderCommand) CouponCode() string {
	return c.couponCode
}

// BuildItems constructs the domain item snapshots from the raw inputs.
func (c CreateOrderCommand) BuildItems() ([]order.Item, error) {
	items := make([]order.Item, 0, len(c.items))
	for _, input := range c.items {
		item, err := order.NewItem(input.ProductID, input.Name, input.Price, input.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	c.vendorID = vendorID
	return nil
}

func (c *CreateOrderCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}
	c.addressID = addressID
	return nil
}

func (c *CreateOrderCommand) checkItems(items []ItemInput) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	return nil
}
