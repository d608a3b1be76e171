package order

import (
	"fmt"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/pkg/errs"
)

// Item is an immutable order line captured at checkout. The name and price are
// snapshots: later catalog edits or product deletion never change what the
// customer agreed to pay, which is why productID may be nil while the snapshot
// fields are always present.
type Item struct {
	// productID references the catalog product; nil if the product was deleted
	productID *kernel.UUID

	// snapshotName is the product name as shown at checkout
	snapshotName string

	// snapshotPrice is the unit price agreed at checkout
	snapshotPrice float64

	// quantity is the number of units ordered (must be positive)
	quantity int

	// isConstructed ensures the item was created via NewItem
	isConstructed bool
}

// NewItem creates an order line with validation. The product reference is
// optional; the snapshot name must be non-empty, the snapshot price must be
// non-negative, and the quantity must be positive.
func NewItem(productID *kernel.UUID, snapshotName string, snapshotPrice float64, quantity int) (Item, error) {
	if productID != nil {
		if err := productID.Validate(); err != nil {
			return Item{}, err
		}
	}

	if snapshotName == "" {
		return Item{}, errs.NewValueIsRequiredError("snapshotName")
	}

	if snapshotPrice < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("snapshotPrice",
			fmt.Errorf("%f is negative", snapshotPrice))
	}

	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Item{
		productID:     productID,
		snapshotName:  snapshotName,
		snapshotPrice: snapshotPrice,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ProductID returns the catalog product reference, or nil if the product
// no longer exists.
func (i Item) ProductID() *kernel.UUID {
	return i.productID
}

// Name returns the product name captured at checkout.
func (i Item) Name() string {
	return i.snapshotName
}

// Price returns the unit price captured at checkout.
func (i Item) Price() float64 {
	return i.snapshotPrice
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// LineTotal returns price multiplied by quantity.
func (i Item) LineTotal() float64 {
	return i.snapshotPrice * float64(i.quantity)
}
