package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "quickbasket/internal/adapters/out/postgres"
	"quickbasket/internal/adapters/out/postgres/orderrepo"
	"quickbasket/internal/adapters/out/postgres/partnerrepo"
	"quickbasket/internal/adapters/out/postgres/requestrepo"
	"quickbasket/internal/adapters/out/postgres/trackingrepo"
	"quickbasket/internal/adapters/out/postgres/vendorrepo"
	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/domain/model/order"
	"quickbasket/internal/core/domain/model/request"
	"quickbasket/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&partnerrepo.PartnerDTO{},
		&vendorrepo.VendorDTO{},
		&requestrepo.RequestDTO{},
		&requestrepo.ResponseDTO{},
		&trackingrepo.SampleDTO{},
	)
	suite.Require().NoError(err)
	suite.Require().NoError(requestrepo.EnsureActiveRequestIndex(db))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, delivery_partners, vendors, delivery_requests, request_responses, tracking_samples",
	).Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.RequestRepository())
	suite.NotNil(uow1.PartnerRepository())
	suite.NotNil(uow2.VendorRepository())
	suite.NotNil(uow2.TrackingRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_DispatchWorkflow verifies the dispatch mutation commits the
// order transition and the request insert atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DispatchWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createApprovedOrder(suite)
	partnerID := kernel.NewUUID()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = testOrder.Assign(partnerID)
	suite.Require().NoError(err)

	deliveryRequest, err := request.NewDeliveryRequest(
		kernel.NewUUID(), testOrder.ID(), testOrder.VendorID(), partnerID,
	)
	suite.Require().NoError(err)

	err = uow.RequestRepository().Add(ctx, deliveryRequest)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Transition(ctx, testOrder, order.Approved)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Assigned, retrievedOrder.Status())
	suite.Require().NotNil(retrievedOrder.Partner())
	suite.True(retrievedOrder.Partner().IsEqual(partnerID))

	activeRequest, err := newUow.RequestRepository().GetActiveByOrder(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(activeRequest.ID().IsEqual(deliveryRequest.ID()))
	suite.Equal(request.StatusAssigned, activeRequest.Status())
}

// TestUnitOfWork_ActiveRequestUniqueness verifies the partial unique index
// rejects a second in-flight request for the same order.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ActiveRequestUniqueness() {
	ctx := context.Background()
	uow := suite.factory.Create()

	orderID := kernel.NewUUID()
	vendorID := kernel.NewUUID()

	first, err := request.NewDeliveryRequest(kernel.NewUUID(), orderID, vendorID, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.RequestRepository().Add(ctx, first))

	second, err := request.NewDeliveryRequest(kernel.NewUUID(), orderID, vendorID, kernel.NewUUID())
	suite.Require().NoError(err)

	err = uow.RequestRepository().Add(ctx, second)
	suite.Require().ErrorIs(err, ports.ErrActiveRequestExists)

	// once the first request reaches a terminal status, a new one may start
	suite.Require().NoError(first.Reject())
	suite.Require().NoError(uow.RequestRepository().Transition(ctx, first, request.StatusAssigned))

	err = uow.RequestRepository().Add(ctx, second)
	suite.Require().NoError(err)
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createApprovedOrder(suite)
	deliveryRequest, err := request.NewDeliveryRequest(
		kernel.NewUUID(), testOrder.ID(), testOrder.VendorID(), kernel.NewUUID(),
	)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.RequestRepository().Add(ctx, deliveryRequest)
	suite.Require().NoError(err)

	// both records are visible inside the transaction
	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	_, err = uow.RequestRepository().Get(ctx, deliveryRequest.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")

	_, err = newUow.RequestRepository().Get(ctx, deliveryRequest.ID())
	suite.Require().Error(err, "Request should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := createApprovedOrder(suite)
	order2 := createApprovedOrder(suite)

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)

	err = uow2.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	// each transaction only sees its own changes
	_, err = uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")

	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	_, err = uow2.OrderRepository().Get(ctx, order2.ID())
	suite.Require().NoError(err, "UOW2 should see order2")

	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")

	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createApprovedOrder(suite)

	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrievedOrder.ID().IsEqual(testOrder.ID()))

	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrievedOrder.ID().IsEqual(testOrder.ID()))
}

// createApprovedOrder creates a paid order moved to the approved status, the
// state dispatch starts from.
func createApprovedOrder(suite *UnitOfWorkIntegrationTestSuite) *order.Order {
	item, err := order.NewItem(nil, "Farm Eggs 12pc", 96, 1)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{item},
		"paid", 96, 0, 96, "",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.Approve())
	return testOrder
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
