package order_test

import (
	"testing"
	"time"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/domain/model/order"
	"quickbasket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItems(t *testing.T) []order.Item {
	t.Helper()

	productID := kernel.NewUUID()
	first, err := order.NewItem(&productID, "Basmati Rice 5kg", 540, 1)
	require.NoError(t, err)
	second, err := order.NewItem(nil, "Organic Milk 1L", 68, 2)
	require.NoError(t, err)

	return []order.Item{first, second}
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		validItems(t), "paid", 676, 50, 626, "FRESH50",
	)
	require.NoError(t, err)

	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create valid pending order", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()
		vendorID := kernel.NewUUID()
		addressID := kernel.NewUUID()
		items := validItems(t)

		o, err := order.NewOrder(id, customerID, vendorID, addressID,
			items, "paid", 676, 50, 626, "FRESH50")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.True(t, o.VendorID().IsEqual(vendorID))
		assert.True(t, o.AddressID().IsEqual(addressID))
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Partner())
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, "paid", o.PaymentStatus())
		assert.InDelta(t, 676, o.Subtotal(), 0.001)
		assert.InDelta(t, 50, o.DiscountAmount(), 0.001)
		assert.InDelta(t, 626, o.FinalAmount(), 0.001)
		assert.Equal(t, "FRESH50", o.CouponCode())
		assert.False(t, o.CreatedAt().IsZero())
	})

	t.Run("should fail with invalid UUIDs", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, invalidID, invalidID, invalidID,
			validItems(t), "paid", 100, 0, 100, "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "customerID")
		assert.Contains(t, err.Error(), "vendorID")
		assert.Contains(t, err.Error(), "addressID")
	})

	t.Run("should fail without items", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, "paid", 100, 0, 100, "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with negative amounts", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			validItems(t), "paid", -1, 0, 100, "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with unconstructed item", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{{}}, "paid", 100, 0, 100, "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrItemIsNotConstructed)
	})
}

func TestNewItem(t *testing.T) {
	t.Run("should create item with product reference", func(t *testing.T) {
		productID := kernel.NewUUID()

		item, err := order.NewItem(&productID, "Basmati Rice 5kg", 540, 2)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.ProductID().IsEqual(productID))
		assert.Equal(t, "Basmati Rice 5kg", item.Name())
		assert.InDelta(t, 540, item.Price(), 0.001)
		assert.Equal(t, 2, item.Quantity())
		assert.InDelta(t, 1080, item.LineTotal(), 0.001)
	})

	t.Run("should create item for deleted product", func(t *testing.T) {
		item, err := order.NewItem(nil, "Organic Milk 1L", 68, 1)

		require.NoError(t, err)
		assert.Nil(t, item.ProductID())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := order.NewItem(nil, "", 68, 1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with negative price", func(t *testing.T) {
		_, err := order.NewItem(nil, "Organic Milk 1L", -1, 1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := order.NewItem(nil, "Organic Milk 1L", 68, 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore persisted order as-is", func(t *testing.T) {
		id := kernel.NewUUID()
		partnerID := kernel.NewUUID()
		createdAt := time.Now().UTC().Add(-time.Hour)
		updatedAt := time.Now().UTC()

		o, err := order.RestoreOrder(
			id, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), &partnerID,
			validItems(t), order.OutForDelivery, "paid", 676, 50, 626, "FRESH50",
			createdAt, updatedAt,
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.OutForDelivery, o.Status())
		assert.True(t, o.Partner().IsEqual(partnerID))
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, updatedAt, o.UpdatedAt())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
			validItems(t), order.Unknown, "paid", 676, 50, 626, "",
			time.Now(), time.Now(),
		)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should reject unconstructed partner id", func(t *testing.T) {
		var invalidPartner kernel.UUID

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), &invalidPartner,
			validItems(t), order.Assigned, "paid", 676, 50, 626, "",
			time.Now(), time.Now(),
		)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should pass for constructed order", func(t *testing.T) {
		require.NoError(t, newPendingOrder(t).Validate())
	})

	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("should fail for zero value order", func(t *testing.T) {
		var o order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_VendorReview(t *testing.T) {
	t.Run("should approve pending order", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Approve())
		assert.Equal(t, order.Approved, o.Status())
	})

	t.Run("should reject pending order", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.RejectByVendor())
		assert.Equal(t, order.RejectedByVendor, o.Status())
		assert.True(t, o.Status().IsTerminal())
	})

	t.Run("should not approve twice", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Approve())

		err := o.Approve()

		require.Error(t, err)
		assert.Equal(t, order.Approved, o.Status())
	})

	t.Run("should not reject approved order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Approve())

		require.Error(t, o.RejectByVendor())
		assert.Equal(t, order.Approved, o.Status())
	})
}

func TestOrder_Assign(t *testing.T) {
	t.Run("should bind partner to approved order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Approve())
		partnerID := kernel.NewUUID()

		err := o.Assign(partnerID)

		require.NoError(t, err)
		assert.Equal(t, order.Assigned, o.Status())
		require.NotNil(t, o.Partner())
		assert.True(t, o.Partner().IsEqual(partnerID))
	})

	t.Run("should not bind partner to pending order", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.Assign(kernel.NewUUID())

		require.Error(t, err)
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Partner())
	})

	t.Run("should fail with invalid partner id", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Approve())
		var invalidID kernel.UUID

		err := o.Assign(invalidID)

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
		assert.Equal(t, order.Approved, o.Status())
		assert.Nil(t, o.Partner())
	})
}

func TestOrder_ReturnForDispatch(t *testing.T) {
	t.Run("should unbind partner and return to approved", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Approve())
		require.NoError(t, o.Assign(kernel.NewUUID()))

		err := o.ReturnForDispatch()

		require.NoError(t, err)
		assert.Equal(t, order.Approved, o.Status())
		assert.Nil(t, o.Partner())
	})

	t.Run("should only apply to assigned orders", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Approve())

		require.Error(t, o.ReturnForDispatch())
		assert.Equal(t, order.Approved, o.Status())
	})
}

func TestOrder_DeliveryProgress(t *testing.T) {
	t.Run("should walk the happy path to delivered", func(t *testing.T) {
		o := newPendingOrder(t)
		partnerID := kernel.NewUUID()

		require.NoError(t, o.Approve())
		require.NoError(t, o.Assign(partnerID))
		require.NoError(t, o.Accept())
		assert.Equal(t, order.Accepted, o.Status())

		require.NoError(t, o.MarkPickedUp())
		assert.Equal(t, order.PickedUp, o.Status())

		require.NoError(t, o.MarkOutForDelivery())
		assert.Equal(t, order.OutForDelivery, o.Status())

		require.NoError(t, o.MarkDelivered())
		assert.Equal(t, order.Delivered, o.Status())
		assert.True(t, o.Status().IsTerminal())
		assert.True(t, o.Partner().IsEqual(partnerID))
	})

	t.Run("should not skip stages", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Approve())
		require.NoError(t, o.Assign(kernel.NewUUID()))
		require.NoError(t, o.Accept())

		require.Error(t, o.MarkOutForDelivery())
		require.Error(t, o.MarkDelivered())
		assert.Equal(t, order.Accepted, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("customer cancels while pending", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Cancel(false))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("customer cancel fails once assigned", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Approve())
		require.NoError(t, o.Assign(kernel.NewUUID()))

		err := o.Cancel(false)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrCancellationWindowClosed)
		assert.Equal(t, order.Assigned, o.Status())
	})

	t.Run("admin override cancels assigned order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Approve())
		require.NoError(t, o.Assign(kernel.NewUUID()))

		require.NoError(t, o.Cancel(true))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("no one cancels a delivered order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Approve())
		require.NoError(t, o.Assign(kernel.NewUUID()))
		require.NoError(t, o.Accept())
		require.NoError(t, o.MarkPickedUp())
		require.NoError(t, o.MarkOutForDelivery())
		require.NoError(t, o.MarkDelivered())

		err := o.Cancel(true)

		require.Error(t, err)
		assert.Equal(t, order.Delivered, o.Status())
	})
}

func TestOrder_PaymentFieldsUntouched(t *testing.T) {
	t.Run("lifecycle transitions never change payment fields", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Approve())
		require.NoError(t, o.Assign(kernel.NewUUID()))
		require.NoError(t, o.Accept())
		require.NoError(t, o.MarkPickedUp())

		assert.Equal(t, "paid", o.PaymentStatus())
		assert.InDelta(t, 676, o.Subtotal(), 0.001)
		assert.InDelta(t, 50, o.DiscountAmount(), 0.001)
		assert.InDelta(t, 626, o.FinalAmount(), 0.001)
		assert.Equal(t, "FRESH50", o.CouponCode())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	t.Run("should compare by identifier only", func(t *testing.T) {
		o1 := newPendingOrder(t)
		o2 := newPendingOrder(t)

		assert.True(t, o1.IsEqual(o1))
		assert.False(t, o1.IsEqual(o2))
		assert.False(t, o1.IsEqual(nil))
	})
}
