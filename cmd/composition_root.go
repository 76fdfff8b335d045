package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"dispatch/internal/adapters/in/cli"
	httpadapter "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/in/loader"
	"dispatch/internal/adapters/out/citymap"
	"dispatch/internal/adapters/out/eventbus"
	"dispatch/internal/adapters/out/memory"
	"dispatch/internal/adapters/out/redisstate"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type CompositionRoot struct {
	cfg        Config
	logger     *slog.Logger
	cityMap    ports.CityMap
	tariff     services.Tariff
	registry   *prometheus.Registry
	uowFactory *memory.UnitOfWorkFactory
	closers    []func() error
}

// NewCompositionRoot builds the store and the event publishers. Kafka and Redis
// are only used when configured.
func NewCompositionRoot(ctx context.Context, cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	tariff, err := cfg.Tariff()
	if err != nil {
		return nil, err
	}

	root := &CompositionRoot{
		cfg:      cfg,
		logger:   logger,
		cityMap:  citymap.NewGrid(),
		tariff:   tariff,
		registry: prometheus.NewRegistry(),
	}
	root.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	publishers := []ports.EventPublisher{
		eventbus.NewLogPublisher(logger),
		eventbus.NewMetricsPublisher(root.registry),
	}

	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher, err := eventbus.NewKafkaPublisher(
			eventbus.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaServiceEventsTopic), logger,
		)
		if err != nil {
			return nil, err
		}
		publishers = append(publishers, kafkaPublisher)
		root.closers = append(root.closers, kafkaPublisher.Close)
	}

	if cfg.RedisAddr != "" {
		client, err := redisstate.NewClient(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, errors.Join(err, root.Close())
		}
		publishers = append(publishers, redisstate.NewDriverStateProjector(client, logger))
		root.closers = append(root.closers, client.Close)
	}

	root.uowFactory = memory.NewUnitOfWorkFactory(memory.NewStore(), eventbus.NewFanOut(publishers...), logger)
	return root, nil
}

// Close releases the publisher connections.
func (c *CompositionRoot) Close() error {
	var err error
	for i := len(c.closers) - 1; i >= 0; i-- {
		err = errors.Join(err, c.closers[i]())
	}
	c.closers = nil
	return err
}

// Preload registers the users and drivers of the configured files.
func (c *CompositionRoot) Preload(ctx context.Context) error {
	if c.cfg.UsersFile != "" {
		users, err := loader.LoadUsersFile(c.cfg.UsersFile)
		if err != nil {
			return fmt.Errorf("load users: %w", err)
		}
		if len(users) > 0 {
			cmd, err := commands.NewBulkRegisterUsersCommand(users)
			if err != nil {
				return err
			}
			n, err := c.CreateBulkRegisterUsersCommandHandler().Handle(ctx, cmd)
			if err != nil {
				return fmt.Errorf("register users: %w", err)
			}
			c.logger.InfoContext(ctx, "Preregistered users loaded", "count", n, "file", c.cfg.UsersFile)
		}
	}

	if c.cfg.DriversFile != "" {
		drivers, err := loader.LoadDriversFile(c.cfg.DriversFile)
		if err != nil {
			return fmt.Errorf("load drivers: %w", err)
		}
		if len(drivers) > 0 {
			cmd, err := commands.NewBulkRegisterDriversCommand(drivers)
			if err != nil {
				return err
			}
			n, err := c.CreateBulkRegisterDriversCommandHandler().Handle(ctx, cmd)
			if err != nil {
				return fmt.Errorf("register drivers: %w", err)
			}
			c.logger.InfoContext(ctx, "Preregistered drivers loaded", "count", n, "file", c.cfg.DriversFile)
		}
	}
	return nil
}

func (c *CompositionRoot) commandUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) queryUoWFactory() queries.UoWFactory {
	return FuncQueryUoWFactory(func() queries.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.commandUoWFactory(), c.cityMap)
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() commands.RegisterDriverCommandHandler {
	return commands.NewRegisterDriverCommandHandler(c.commandUoWFactory(), c.cityMap)
}

func (c *CompositionRoot) CreateBulkRegisterUsersCommandHandler() commands.BulkRegisterUsersCommandHandler {
	return commands.NewBulkRegisterUsersCommandHandler(c.commandUoWFactory(), c.cityMap)
}

func (c *CompositionRoot) CreateBulkRegisterDriversCommandHandler() commands.BulkRegisterDriversCommandHandler {
	return commands.NewBulkRegisterDriversCommandHandler(c.commandUoWFactory(), c.cityMap)
}

func (c *CompositionRoot) CreateRequestRideCommandHandler() commands.RequestRideCommandHandler {
	return commands.NewRequestRideCommandHandler(c.commandUoWFactory(), c.cityMap, c.tariff)
}

func (c *CompositionRoot) CreateRequestDeliveryCommandHandler() commands.RequestDeliveryCommandHandler {
	return commands.NewRequestDeliveryCommandHandler(c.commandUoWFactory(), c.cityMap, c.tariff)
}

func (c *CompositionRoot) CreatePickupCommandHandler() commands.PickupCommandHandler {
	return commands.NewPickupCommandHandler(c.commandUoWFactory(), c.cityMap)
}

func (c *CompositionRoot) CreateDropOffCommandHandler() commands.DropOffCommandHandler {
	return commands.NewDropOffCommandHandler(c.commandUoWFactory(), c.cityMap, c.tariff)
}

func (c *CompositionRoot) CreateDriveToCommandHandler() commands.DriveToCommandHandler {
	return commands.NewDriveToCommandHandler(c.commandUoWFactory(), c.cityMap)
}

func (c *CompositionRoot) CreateCancelServiceRequestCommandHandler() commands.CancelServiceRequestCommandHandler {
	return commands.NewCancelServiceRequestCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateSortUsersCommandHandler() commands.SortUsersCommandHandler {
	return commands.NewSortUsersCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateGetUserQueryHandler() queries.GetUserQueryHandler {
	return queries.NewGetUserQueryHandler(c.queryUoWFactory())
}

func (c *CompositionRoot) CreateGetAllUsersQueryHandler() queries.GetAllUsersQueryHandler {
	return queries.NewGetAllUsersQueryHandler(c.queryUoWFactory())
}

func (c *CompositionRoot) CreateGetAllDriversQueryHandler() queries.GetAllDriversQueryHandler {
	return queries.NewGetAllDriversQueryHandler(c.queryUoWFactory())
}

func (c *CompositionRoot) CreateGetServiceRequestsQueryHandler() queries.GetServiceRequestsQueryHandler {
	return queries.NewGetServiceRequestsQueryHandler(c.queryUoWFactory())
}

func (c *CompositionRoot) CreateGetDispatchSummaryQueryHandler() queries.GetDispatchSummaryQueryHandler {
	return queries.NewGetDispatchSummaryQueryHandler(c.queryUoWFactory())
}

func (c *CompositionRoot) CreateShellHandlers() cli.Handlers {
	return cli.Handlers{
		RegisterUser:         c.CreateRegisterUserCommandHandler(),
		RegisterDriver:       c.CreateRegisterDriverCommandHandler(),
		BulkRegisterUsers:    c.CreateBulkRegisterUsersCommandHandler(),
		BulkRegisterDrivers:  c.CreateBulkRegisterDriversCommandHandler(),
		RequestRide:          c.CreateRequestRideCommandHandler(),
		RequestDelivery:      c.CreateRequestDeliveryCommandHandler(),
		Pickup:               c.CreatePickupCommandHandler(),
		DropOff:              c.CreateDropOffCommandHandler(),
		DriveTo:              c.CreateDriveToCommandHandler(),
		CancelServiceRequest: c.CreateCancelServiceRequestCommandHandler(),
		SortUsers:            c.CreateSortUsersCommandHandler(),
		GetUser:              c.CreateGetUserQueryHandler(),
		GetAllUsers:          c.CreateGetAllUsersQueryHandler(),
		GetAllDrivers:        c.CreateGetAllDriversQueryHandler(),
		GetServiceRequests:   c.CreateGetServiceRequestsQueryHandler(),
		GetDispatchSummary:   c.CreateGetDispatchSummaryQueryHandler(),
	}
}

func (c *CompositionRoot) CityMap() ports.CityMap {
	return c.cityMap
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateGetUserQueryHandler(),
		c.CreateGetAllUsersQueryHandler(),
		c.CreateGetAllDriversQueryHandler(),
		c.CreateGetServiceRequestsQueryHandler(),
		c.CreateGetDispatchSummaryQueryHandler(),
	)
}

func (c *CompositionRoot) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// CreateJobManager returns a manager without jobs when no summary schedule is set.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	if c.cfg.SummarySchedule == "" {
		return jobs.NewJobManager()
	}
	return jobs.NewJobManager(
		jobs.NewDispatchSummaryJob(c.CreateGetDispatchSummaryQueryHandler(), c.cfg.SummarySchedule, c.logger),
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncQueryUoWFactory func() queries.UoW

func (f FuncQueryUoWFactory) Create() queries.UoW {
	return f()
}
