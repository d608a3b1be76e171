package commands_test

import (
	"testing"

	"quickbasket/internal/core/application/usecases/commands"
	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/domain/model/order"
	"quickbasket/internal/core/domain/model/request"
	"quickbasket/internal/core/ports"
	"quickbasket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cancelFixture struct {
	orders  *MockOrderRepository
	reqs    *MockRequestRepository
	uow     *MockUoW
	factory *MockUoWFactory
}

func cancelFixtureOf(t *testing.T) *cancelFixture {
	t.Helper()

	f := &cancelFixture{
		orders:  new(MockOrderRepository),
		reqs:    new(MockRequestRepository),
		uow:     new(MockUoW),
		factory: new(MockUoWFactory),
	}

	f.uow.On("Begin", mock.Anything).Return(nil)
	f.uow.On("OrderRepository").Return(f.orders)
	f.uow.On("RequestRepository").Return(f.reqs)
	f.uow.On("Rollback", mock.Anything).Return(nil)
	f.factory.On("Create").Return(f.uow).Once()
	return f
}

func TestCancelOrderCommandHandler_Handle_CustomerWithinWindow(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	o := pendingOrderOf(t, customerID, kernel.NewUUID())
	f := cancelFixtureOf(t)

	cmd, err := commands.NewCancelOrderCommand(o.ID(), actorOf(t, customerID, kernel.RoleCustomer))
	require.NoError(t, err)

	f.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	f.orders.On("Transition", mock.Anything, o, order.Pending).Return(nil).Once()
	f.reqs.On("GetActiveByOrder", mock.Anything, o.ID()).
		Return(nil, errs.NewObjectNotFoundError("order_id", o.ID())).Once()
	f.uow.On("Commit", mock.Anything).Return(nil).Once()

	notifier := new(MockChangeNotifier)
	notifier.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

	h := commands.NewCancelOrderCommandHandler(f.factory, notifier)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, o.Status())
	f.uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_CustomerAfterWindowClosed(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	o := approvedOrderOf(t, customerID, kernel.NewUUID())
	require.NoError(t, o.Assign(kernel.NewUUID()))
	f := cancelFixtureOf(t)

	cmd, err := commands.NewCancelOrderCommand(o.ID(), actorOf(t, customerID, kernel.RoleCustomer))
	require.NoError(t, err)

	f.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()

	h := commands.NewCancelOrderCommandHandler(f.factory, nil)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrCancellationWindowClosed)
	assert.Equal(t, order.Assigned, o.Status())
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_AdminOverridesWindowAndCancelsRequest(t *testing.T) {
	ctx := t.Context()
	vendorID := kernel.NewUUID()
	partnerID := kernel.NewUUID()
	o := approvedOrderOf(t, kernel.NewUUID(), vendorID)
	require.NoError(t, o.Assign(partnerID))
	req := assignedRequestFor(t, o.ID(), vendorID, partnerID)
	f := cancelFixtureOf(t)

	cmd, err := commands.NewCancelOrderCommand(o.ID(), actorOf(t, kernel.NewUUID(), kernel.RoleAdmin))
	require.NoError(t, err)

	f.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	f.orders.On("Transition", mock.Anything, o, order.Assigned).Return(nil).Once()
	f.reqs.On("GetActiveByOrder", mock.Anything, o.ID()).Return(req, nil).Once()
	f.reqs.On("Transition", mock.Anything, req, request.StatusAssigned).Return(nil).Once()
	f.uow.On("Commit", mock.Anything).Return(nil).Once()

	notifier := new(MockChangeNotifier)
	notifier.On("Publish", mock.Anything, mock.MatchedBy(func(change ports.Change) bool {
		id, ok := change.Scopes[ports.ScopePartner]
		return ok && id.IsEqual(partnerID)
	})).Return(nil).Once()

	h := commands.NewCancelOrderCommandHandler(f.factory, notifier)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, o.Status())
	assert.Equal(t, request.StatusCancelled, req.Status())
	notifier.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_StrangerIsRefused(t *testing.T) {
	ctx := t.Context()
	o := pendingOrderOf(t, kernel.NewUUID(), kernel.NewUUID())
	f := cancelFixtureOf(t)

	cmd, err := commands.NewCancelOrderCommand(o.ID(), actorOf(t, kernel.NewUUID(), kernel.RoleCustomer))
	require.NoError(t, err)

	f.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()

	h := commands.NewCancelOrderCommandHandler(f.factory, nil)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotAuthorized)
	assert.Equal(t, order.Pending, o.Status())
}
