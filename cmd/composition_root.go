package cmd

import (
	"log/slog"
	"strings"

	inhttp "quickbasket/internal/adapters/in/http"
	inkafka "quickbasket/internal/adapters/in/kafka"
	outkafka "quickbasket/internal/adapters/out/kafka"
	"quickbasket/internal/adapters/out/notify"
	"quickbasket/internal/adapters/out/postgres"
	"quickbasket/internal/core/application/usecases/commands"
	"quickbasket/internal/core/application/usecases/queries"
	"quickbasket/internal/core/domain/services"
	"quickbasket/internal/core/ports"
	"quickbasket/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.ChangeNotifier
	publisher  *outkafka.OrderChangedPublisher
	dispatcher services.PartnerDispatcher
	logger     *slog.Logger
}

// NewCompositionRoot wires the adapters around the application core. The Redis
// change feed is wrapped by the Kafka event bridge so every order change hits
// both surfaces from a single publish.
func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient redis.UniversalClient, logger *slog.Logger) CompositionRoot {
	publisher := outkafka.NewOrderChangedPublisher(kafkaBrokers(config), config.KafkaOrderChangedTopic)
	notifier := notify.NewEventBridgeNotifier(notify.NewRedisChangeNotifier(redisClient), publisher)

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		publisher:  publisher,
		dispatcher: services.NewPartnerDispatcher(config.DispatchRadiusKm),
		logger:     logger,
	}
}

func kafkaBrokers(config Config) []string {
	return strings.Split(config.KafkaHost, ",")
}

// Close releases adapter resources that outlive a single request.
func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateApproveOrderCommandHandler() commands.ApproveOrderCommandHandler {
	return commands.NewApproveOrderCommandHandler(c.createUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	return commands.NewRejectOrderCommandHandler(c.createUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateAssignPartnerCommandHandler() commands.AssignPartnerCommandHandler {
	return commands.NewAssignPartnerCommandHandler(c.createUoWFactory(), c.dispatcher, c.notifier)
}

func (c *CompositionRoot) CreateRespondToRequestCommandHandler() commands.RespondToRequestCommandHandler {
	return commands.NewRespondToRequestCommandHandler(c.createUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateProgressDeliveryCommandHandler() commands.ProgressDeliveryCommandHandler {
	return commands.NewProgressDeliveryCommandHandler(c.createUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.createUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateReportPositionCommandHandler() commands.ReportPositionCommandHandler {
	return commands.NewReportPositionCommandHandler(c.createUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreatePurgeOrderCommandHandler() commands.PurgeOrderCommandHandler {
	return commands.NewPurgeOrderCommandHandler(c.createUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateRegisterPartnerCommandHandler() commands.RegisterPartnerCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterPartnerCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterVendorCommandHandler() commands.RegisterVendorCommandHandler {
	var f commands.VendorUoWFactory = FuncVendorUoWFactory(func() commands.VendorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterVendorCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdatePartnerLocationCommandHandler() commands.UpdatePartnerLocationCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdatePartnerLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateVendorLocationCommandHandler() commands.UpdateVendorLocationCommandHandler {
	var f commands.VendorUoWFactory = FuncVendorUoWFactory(func() commands.VendorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateVendorLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateGetLatestPositionQueryHandler() queries.GetLatestPositionQueryHandler {
	return queries.NewGetLatestPositionQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPartnerRequestsQueryHandler() queries.GetPartnerRequestsQueryHandler {
	return queries.NewGetPartnerRequestsQueryHandler(c.gormDB)
}

// CreateHTTPServer bundles every handler behind the REST and WebSocket surface.
func (c *CompositionRoot) CreateHTTPServer() *inhttp.Server {
	return inhttp.NewServer(inhttp.Handlers{
		CreateOrder:           c.CreateCreateOrderCommandHandler(),
		ApproveOrder:          c.CreateApproveOrderCommandHandler(),
		RejectOrder:           c.CreateRejectOrderCommandHandler(),
		AssignPartner:         c.CreateAssignPartnerCommandHandler(),
		RespondToRequest:      c.CreateRespondToRequestCommandHandler(),
		ProgressDelivery:      c.CreateProgressDeliveryCommandHandler(),
		CancelOrder:           c.CreateCancelOrderCommandHandler(),
		ReportPosition:        c.CreateReportPositionCommandHandler(),
		PurgeOrder:            c.CreatePurgeOrderCommandHandler(),
		RegisterPartner:       c.CreateRegisterPartnerCommandHandler(),
		RegisterVendor:        c.CreateRegisterVendorCommandHandler(),
		UpdatePartnerLocation: c.CreateUpdatePartnerLocationCommandHandler(),
		UpdateVendorLocation:  c.CreateUpdateVendorLocationCommandHandler(),
		GetLatestPosition:     c.CreateGetLatestPositionQueryHandler(),
		GetActiveOrders:       c.CreateGetActiveOrdersQueryHandler(),
		GetPartnerRequests:    c.CreateGetPartnerRequestsQueryHandler(),
		Notifier:              c.notifier,
	})
}

// CreateJobManager wires the dispatch sweep and the tracking prune.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	dispatchJob := jobs.NewDispatchJob(
		c.CreateAssignPartnerCommandHandler(),
		c.createUoWFactory(),
		c.config.DispatchSchedule,
		c.logger,
	)
	pruneJob := jobs.NewTrackingPruneJob(
		c.createUoWFactory(),
		c.config.TrackingRetention,
		c.config.TrackingPruneSchedule,
		c.logger,
	)
	return jobs.NewJobManager(dispatchJob, pruneJob)
}

// CreateBasketConfirmedConsumer wires the checkout event stream to order creation.
func (c *CompositionRoot) CreateBasketConfirmedConsumer() *inkafka.BasketConfirmedConsumer {
	return inkafka.NewBasketConfirmedConsumer(
		kafkaBrokers(c.config),
		c.config.KafkaBasketConfirmedTopic,
		c.config.KafkaConsumerGroup,
		c.CreateCreateOrderCommandHandler(),
	)
}

func (c *CompositionRoot) createUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPartnerUoWFactory func() commands.PartnerUoW

func (f FuncPartnerUoWFactory) Create() commands.PartnerUoW {
	return f()
}

type FuncVendorUoWFactory func() commands.VendorUoW

func (f FuncVendorUoWFactory) Create() commands.VendorUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
