package commands_test

import (
	"testing"

	"quickbasket/internal/core/application/usecases/commands"
	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/domain/model/order"
	"quickbasket/internal/core/domain/model/request"
	"quickbasket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type respondFixture struct {
	order   *order.Order
	request *request.DeliveryRequest
	partner *MockPartnerRepository
	orders  *MockOrderRepository
	reqs    *MockRequestRepository
	uow     *MockUoW
	factory *MockUoWFactory
}

// respondFixtureOf wires an Assigned order, its request, and the bound
// partner's profile behind mocked repositories.
func respondFixtureOf(t *testing.T, partnerUserID kernel.UUID) (*respondFixture, kernel.UUID) {
	t.Helper()

	vendorID := kernel.NewUUID()
	partnerID := kernel.NewUUID()

	o := approvedOrderOf(t, kernel.NewUUID(), vendorID)
	require.NoError(t, o.Assign(partnerID))

	req := assignedRequestFor(t, o.ID(), vendorID, partnerID)
	p := dispatchablePartnerOwnedBy(t, partnerID, partnerUserID)

	f := &respondFixture{
		order:   o,
		request: req,
		partner: new(MockPartnerRepository),
		orders:  new(MockOrderRepository),
		reqs:    new(MockRequestRepository),
		uow:     new(MockUoW),
		factory: new(MockUoWFactory),
	}

	f.uow.On("Begin", mock.Anything).Return(nil)
	f.uow.On("RequestRepository").Return(f.reqs)
	f.uow.On("PartnerRepository").Return(f.partner)
	f.uow.On("OrderRepository").Return(f.orders)
	f.uow.On("Rollback", mock.Anything).Return(nil)
	f.factory.On("Create").Return(f.uow).Once()

	f.reqs.On("Get", mock.Anything, req.ID()).Return(req, nil).Once()
	f.partner.On("GetByUser", mock.Anything, partnerUserID).Return(p, nil).Once()

	return f, partnerID
}

func TestRespondToRequestCommandHandler_Handle_Accept(t *testing.T) {
	ctx := t.Context()
	partnerUserID := kernel.NewUUID()
	f, partnerID := respondFixtureOf(t, partnerUserID)
	actor := actorOf(t, partnerUserID, kernel.RoleDeliveryPartner)

	cmd, err := commands.NewRespondToRequestCommand(f.request.ID(), actor, request.DecisionAccepted)
	require.NoError(t, err)

	f.reqs.On("AddResponse", mock.Anything, mock.Anything).Return(nil).Once()
	f.orders.On("Get", mock.Anything, f.order.ID()).Return(f.order, nil).Once()
	f.reqs.On("Transition", mock.Anything, f.request, request.StatusAssigned).Return(nil).Once()
	f.orders.On("Transition", mock.Anything, f.order, order.Assigned).Return(nil).Once()
	f.uow.On("Commit", mock.Anything).Return(nil).Once()

	notifier := new(MockChangeNotifier)
	notifier.On("Publish", mock.Anything, mock.Anything).Return(nil).Twice()

	h := commands.NewRespondToRequestCommandHandler(f.factory, notifier)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Accepted, f.order.Status())
	assert.Equal(t, request.StatusAccepted, f.request.Status())
	require.NotNil(t, f.order.Partner())
	assert.True(t, f.order.Partner().IsEqual(partnerID))
	f.uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestRespondToRequestCommandHandler_Handle_RejectReturnsOrderToDispatch(t *testing.T) {
	ctx := t.Context()
	partnerUserID := kernel.NewUUID()
	f, _ := respondFixtureOf(t, partnerUserID)
	actor := actorOf(t, partnerUserID, kernel.RoleDeliveryPartner)

	cmd, err := commands.NewRespondToRequestCommand(f.request.ID(), actor, request.DecisionRejected)
	require.NoError(t, err)

	f.reqs.On("AddResponse", mock.Anything, mock.Anything).Return(nil).Once()
	f.orders.On("Get", mock.Anything, f.order.ID()).Return(f.order, nil).Once()
	f.reqs.On("Transition", mock.Anything, f.request, request.StatusAssigned).Return(nil).Once()
	f.orders.On("Transition", mock.Anything, f.order, order.Assigned).Return(nil).Once()
	f.uow.On("Commit", mock.Anything).Return(nil).Once()

	notifier := new(MockChangeNotifier)
	notifier.On("Publish", mock.Anything, mock.Anything).Return(nil).Twice()

	h := commands.NewRespondToRequestCommandHandler(f.factory, notifier)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Approved, f.order.Status())
	assert.Nil(t, f.order.Partner())
	assert.Equal(t, request.StatusRejectedByPartner, f.request.Status())
}

func TestRespondToRequestCommandHandler_Handle_SecondResponseIsRefused(t *testing.T) {
	ctx := t.Context()
	partnerUserID := kernel.NewUUID()
	f, _ := respondFixtureOf(t, partnerUserID)
	actor := actorOf(t, partnerUserID, kernel.RoleDeliveryPartner)

	cmd, err := commands.NewRespondToRequestCommand(f.request.ID(), actor, request.DecisionRejected)
	require.NoError(t, err)

	// the unique constraint on (request, partner) reports the duplicate
	f.reqs.On("AddResponse", mock.Anything, mock.Anything).
		Return(request.ErrAlreadyResponded).Once()

	h := commands.NewRespondToRequestCommandHandler(f.factory, nil)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, request.ErrAlreadyResponded)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestRespondToRequestCommandHandler_Handle_UnboundPartnerIsRefused(t *testing.T) {
	ctx := t.Context()
	strangerUserID := kernel.NewUUID()
	f, _ := respondFixtureOf(t, kernel.NewUUID())
	actor := actorOf(t, strangerUserID, kernel.RoleDeliveryPartner)

	cmd, err := commands.NewRespondToRequestCommand(f.request.ID(), actor, request.DecisionAccepted)
	require.NoError(t, err)

	stranger := dispatchablePartnerOwnedBy(t, kernel.NewUUID(), strangerUserID)
	f.partner.On("GetByUser", mock.Anything, strangerUserID).Return(stranger, nil).Once()

	h := commands.NewRespondToRequestCommandHandler(f.factory, nil)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotAuthorized)
	f.reqs.AssertNotCalled(t, "AddResponse", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}
