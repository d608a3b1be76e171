package request_test

import (
	"testing"
	"time"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/domain/model/request"
	"quickbasket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAssignedRequest(t *testing.T) *request.DeliveryRequest {
	t.Helper()

	r, err := request.NewDeliveryRequest(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	return r
}

func TestNewDeliveryRequest(t *testing.T) {
	t.Run("should create assigned request", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()
		vendorID := kernel.NewUUID()
		partnerID := kernel.NewUUID()

		r, err := request.NewDeliveryRequest(id, orderID, vendorID, partnerID)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.True(t, r.ID().IsEqual(id))
		assert.True(t, r.OrderID().IsEqual(orderID))
		assert.True(t, r.VendorID().IsEqual(vendorID))
		assert.True(t, r.PartnerID().IsEqual(partnerID))
		assert.Equal(t, request.StatusAssigned, r.Status())
		assert.Nil(t, r.PickedUpAt())
		assert.Nil(t, r.DeliveredAt())
	})

	t.Run("should fail with invalid ids", func(t *testing.T) {
		var invalidID kernel.UUID

		r, err := request.NewDeliveryRequest(invalidID, invalidID, invalidID, invalidID)

		require.Error(t, err)
		assert.Nil(t, r)
	})
}

func TestDeliveryRequest_IsBoundTo(t *testing.T) {
	partnerID := kernel.NewUUID()
	r, err := request.NewDeliveryRequest(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), partnerID)
	require.NoError(t, err)

	assert.True(t, r.IsBoundTo(partnerID))
	assert.False(t, r.IsBoundTo(kernel.NewUUID()))
}

func TestDeliveryRequest_Respond(t *testing.T) {
	t.Run("should accept assigned request", func(t *testing.T) {
		r := newAssignedRequest(t)

		require.NoError(t, r.Accept())
		assert.Equal(t, request.StatusAccepted, r.Status())
	})

	t.Run("should reject assigned request terminally", func(t *testing.T) {
		r := newAssignedRequest(t)

		require.NoError(t, r.Reject())
		assert.Equal(t, request.StatusRejectedByPartner, r.Status())
		assert.True(t, r.Status().IsTerminal())
	})

	t.Run("should not accept twice", func(t *testing.T) {
		r := newAssignedRequest(t)
		require.NoError(t, r.Accept())

		err := r.Accept()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrStaleState)
		assert.Equal(t, request.StatusAccepted, r.Status())
	})

	t.Run("should not reject after accepting", func(t *testing.T) {
		r := newAssignedRequest(t)
		require.NoError(t, r.Accept())

		err := r.Reject()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrStaleState)
	})
}

func TestDeliveryRequest_Progress(t *testing.T) {
	t.Run("should stamp milestones on the happy path", func(t *testing.T) {
		r := newAssignedRequest(t)
		require.NoError(t, r.Accept())

		require.NoError(t, r.MarkPickedUp())
		assert.Equal(t, request.StatusPickedUp, r.Status())
		require.NotNil(t, r.PickedUpAt())
		assert.Nil(t, r.DeliveredAt())

		require.NoError(t, r.MarkOutForDelivery())
		assert.Equal(t, request.StatusOutForDelivery, r.Status())

		require.NoError(t, r.MarkDelivered())
		assert.Equal(t, request.StatusDelivered, r.Status())
		require.NotNil(t, r.DeliveredAt())
		assert.False(t, r.DeliveredAt().Before(*r.PickedUpAt()))
	})

	t.Run("should not pick up before accepting", func(t *testing.T) {
		r := newAssignedRequest(t)

		require.Error(t, r.MarkPickedUp())
		assert.Nil(t, r.PickedUpAt())
	})

	t.Run("should not skip stages", func(t *testing.T) {
		r := newAssignedRequest(t)
		require.NoError(t, r.Accept())

		require.Error(t, r.MarkOutForDelivery())
		require.Error(t, r.MarkDelivered())
	})
}

func TestDeliveryRequest_Cancel(t *testing.T) {
	t.Run("should cancel non-terminal request", func(t *testing.T) {
		r := newAssignedRequest(t)

		require.NoError(t, r.Cancel())
		assert.Equal(t, request.StatusCancelled, r.Status())
	})

	t.Run("should not cancel terminal request", func(t *testing.T) {
		r := newAssignedRequest(t)
		require.NoError(t, r.Reject())

		require.Error(t, r.Cancel())
		assert.Equal(t, request.StatusRejectedByPartner, r.Status())
	})
}

func TestRestoreDeliveryRequest(t *testing.T) {
	t.Run("should restore persisted request as-is", func(t *testing.T) {
		pickedUpAt := time.Now().UTC().Add(-30 * time.Minute)
		createdAt := time.Now().UTC().Add(-time.Hour)

		r, err := request.RestoreDeliveryRequest(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			request.StatusPickedUp, &pickedUpAt, nil, createdAt,
		)

		require.NoError(t, err)
		assert.Equal(t, request.StatusPickedUp, r.Status())
		assert.Equal(t, pickedUpAt, *r.PickedUpAt())
		assert.Equal(t, createdAt, r.CreatedAt())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		r, err := request.RestoreDeliveryRequest(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			request.StatusUnknown, nil, nil, time.Now(),
		)

		require.Error(t, err)
		assert.Nil(t, r)
	})
}

func TestNewResponse(t *testing.T) {
	t.Run("should record accepted decision", func(t *testing.T) {
		id := kernel.NewUUID()
		requestID := kernel.NewUUID()
		partnerID := kernel.NewUUID()

		resp, err := request.NewResponse(id, requestID, partnerID, request.DecisionAccepted)

		require.NoError(t, err)
		require.NoError(t, resp.Validate())
		assert.True(t, resp.RequestID().IsEqual(requestID))
		assert.True(t, resp.PartnerID().IsEqual(partnerID))
		assert.Equal(t, request.DecisionAccepted, resp.Decision())
		assert.False(t, resp.RespondedAt().IsZero())
	})

	t.Run("should fail with unknown decision", func(t *testing.T) {
		resp, err := request.NewResponse(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), request.DecisionUnknown)

		require.Error(t, err)
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDecisionFromString(t *testing.T) {
	t.Run("should parse wire names", func(t *testing.T) {
		accepted, err := request.DecisionFromString("accepted")
		require.NoError(t, err)
		assert.Equal(t, request.DecisionAccepted, accepted)

		rejected, err := request.DecisionFromString("rejected")
		require.NoError(t, err)
		assert.Equal(t, request.DecisionRejected, rejected)
	})

	t.Run("should reject unrecognized names", func(t *testing.T) {
		_, err := request.DecisionFromString("maybe")
		require.Error(t, err)
	})
}

func TestStatus_WireNames(t *testing.T) {
	names := map[request.Status]string{
		request.StatusAssigned:          "assigned",
		request.StatusAccepted:          "accepted",
		request.StatusRejectedByPartner: "rejected_by_partner",
		request.StatusPickedUp:          "picked_up",
		request.StatusOutForDelivery:    "out_for_delivery",
		request.StatusDelivered:         "delivered",
		request.StatusCancelled:         "cancelled",
	}

	for status, name := range names {
		assert.Equal(t, name, status.String())

		parsed, err := request.StatusFromString(name)
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}
}
