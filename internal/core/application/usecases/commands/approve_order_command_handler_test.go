package commands_test

import (
	"testing"

	"quickbasket/internal/core/application/usecases/commands"
	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/domain/model/order"
	"quickbasket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApproveOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	vendorUserID := kernel.NewUUID()
	vendorID := kernel.NewUUID()
	o := pendingOrderOf(t, kernel.NewUUID(), vendorID)
	v := vendorOwnedBy(t, vendorID, vendorUserID)
	actor := actorOf(t, vendorUserID, kernel.RoleVendor)

	cmd, err := commands.NewApproveOrderCommand(o.ID(), actor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	vendorRepo := new(MockVendorRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("VendorRepository").Return(vendorRepo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	vendorRepo.On("GetByUser", mock.Anything, vendorUserID).Return(v, nil).Once()
	orderRepo.On("Transition", mock.Anything, o, order.Pending).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockChangeNotifier)
	notifier.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

	h := commands.NewApproveOrderCommandHandler(factory, notifier)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Approved, o.Status())
	orderRepo.AssertExpectations(t)
	vendorRepo.AssertExpectations(t)
}

func TestApproveOrderCommandHandler_Handle_NotOwningVendor(t *testing.T) {
	ctx := t.Context()
	o := pendingOrderOf(t, kernel.NewUUID(), kernel.NewUUID())
	// vendor profile owned by the actor, but for a different vendor id
	strangerUserID := kernel.NewUUID()
	stranger := vendorOwnedBy(t, kernel.NewUUID(), strangerUserID)
	actor := actorOf(t, strangerUserID, kernel.RoleVendor)

	cmd, err := commands.NewApproveOrderCommand(o.ID(), actor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	vendorRepo := new(MockVendorRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("VendorRepository").Return(vendorRepo)
	uow.On("Rollback", ctx).Return(nil)

	orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	vendorRepo.On("GetByUser", mock.Anything, strangerUserID).Return(stranger, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveOrderCommandHandler(factory, nil)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotAuthorized)
	assert.Equal(t, order.Pending, o.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestApproveOrderCommandHandler_Handle_AdminMayApprove(t *testing.T) {
	ctx := t.Context()
	o := pendingOrderOf(t, kernel.NewUUID(), kernel.NewUUID())
	actor := actorOf(t, kernel.NewUUID(), kernel.RoleAdmin)

	cmd, err := commands.NewApproveOrderCommand(o.ID(), actor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("VendorRepository").Return(new(MockVendorRepository))
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	orderRepo.On("Transition", mock.Anything, o, order.Pending).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveOrderCommandHandler(factory, nil)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.Approved, o.Status())
}

func TestRejectOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	vendorUserID := kernel.NewUUID()
	vendorID := kernel.NewUUID()
	o := pendingOrderOf(t, kernel.NewUUID(), vendorID)
	v := vendorOwnedBy(t, vendorID, vendorUserID)
	actor := actorOf(t, vendorUserID, kernel.RoleVendor)

	cmd, err := commands.NewRejectOrderCommand(o.ID(), actor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	vendorRepo := new(MockVendorRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("VendorRepository").Return(vendorRepo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	vendorRepo.On("GetByUser", mock.Anything, vendorUserID).Return(v, nil).Once()
	orderRepo.On("Transition", mock.Anything, o, order.Pending).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRejectOrderCommandHandler(factory, nil)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.RejectedByVendor, o.Status())
}

func TestRejectOrderCommandHandler_Handle_AlreadyApproved(t *testing.T) {
	ctx := t.Context()
	vendorUserID := kernel.NewUUID()
	vendorID := kernel.NewUUID()
	o := approvedOrderOf(t, kernel.NewUUID(), vendorID)
	v := vendorOwnedBy(t, vendorID, vendorUserID)
	actor := actorOf(t, vendorUserID, kernel.RoleVendor)

	cmd, err := commands.NewRejectOrderCommand(o.ID(), actor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	vendorRepo := new(MockVendorRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("VendorRepository").Return(vendorRepo)
	uow.On("Rollback", ctx).Return(nil)

	orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	vendorRepo.On("GetByUser", mock.Anything, vendorUserID).Return(v, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRejectOrderCommandHandler(factory, nil)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Equal(t, order.Approved, o.Status())
}
