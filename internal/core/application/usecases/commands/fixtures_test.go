package commands_test

import (
	"testing"
	"time"

	"quickbasket/internal/core/application/usecases/commands"
	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/domain/model/order"
	"quickbasket/internal/core/domain/model/partner"
	"quickbasket/internal/core/domain/model/request"
	"quickbasket/internal/core/domain/model/vendor"

	"github.com/stretchr/testify/require"
)

func testItemInputs() []commands.ItemInput {
	return []commands.ItemInput{
		{Name: "Basmati Rice 5kg", Price: 540, Quantity: 1},
		{Name: "Organic Milk 1L", Price: 68, Quantity: 2},
	}
}

func actorOf(t *testing.T, id kernel.UUID, role kernel.Role) kernel.Actor {
	t.Helper()

	actor, err := kernel.NewActor(id, role)
	require.NoError(t, err)
	return actor
}

func pendingOrderOf(t *testing.T, customerID, vendorID kernel.UUID) *order.Order {
	t.Helper()

	item, err := order.NewItem(nil, "Basmati Rice 5kg", 540, 1)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), customerID, vendorID, kernel.NewUUID(),
		[]order.Item{item}, "paid", 540, 0, 540, "",
	)
	require.NoError(t, err)
	return o
}

func approvedOrderOf(t *testing.T, customerID, vendorID kernel.UUID) *order.Order {
	t.Helper()

	o := pendingOrderOf(t, customerID, vendorID)
	require.NoError(t, o.Approve())
	return o
}

func vendorOwnedBy(t *testing.T, vendorID, userID kernel.UUID) *vendor.Vendor {
	t.Helper()

	shop, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)

	v, err := vendor.RestoreVendor(
		vendorID, userID, "Green Basket Grocers", &shop, true, true, time.Now().UTC())
	require.NoError(t, err)
	return v
}

func dispatchablePartnerOwnedBy(t *testing.T, partnerID, userID kernel.UUID) *partner.DeliveryPartner {
	t.Helper()

	point, err := kernel.NewGeoPoint(12.9352, 77.6245)
	require.NoError(t, err)

	p, err := partner.RestoreDeliveryPartner(
		partnerID, userID, true, true, "bike", "KA-01-HH-1234", &point, time.Now().UTC())
	require.NoError(t, err)
	return p
}

func assignedRequestFor(t *testing.T, orderID, vendorID, partnerID kernel.UUID) *request.DeliveryRequest {
	t.Helper()

	r, err := request.NewDeliveryRequest(kernel.NewUUID(), orderID, vendorID, partnerID)
	require.NoError(t, err)
	return r
}
