package cmd

import (
	"context"
	"log/slog"

	httpin "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/in/ws"
	"restaurant/internal/adapters/notify"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/ports"
	"restaurant/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   *notify.Registry
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notify.NewRegistry(logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateSubmitDineInCommandHandler() commands.SubmitDineInCommandHandler {
	var f commands.DineInUoWFactory = FuncDineInUoWFactory(func() commands.DineInUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitDineInCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateSubmitTakeawayCommandHandler() commands.SubmitTakeawayCommandHandler {
	var f commands.TakeawayUoWFactory = FuncTakeawayUoWFactory(func() commands.TakeawayUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitTakeawayCommandHandler(f, c.notifier, nil)
}

func (c *CompositionRoot) CreateSubmitDeliveryCommandHandler() commands.SubmitDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitDeliveryCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.DineInUoWFactory = FuncDineInUoWFactory(func() commands.DineInUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.DineInUoWFactory = FuncDineInUoWFactory(func() commands.DineInUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateClearTableCommandHandler() commands.ClearTableCommandHandler {
	var f commands.TableUoWFactory = FuncTableUoWFactory(func() commands.TableUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClearTableCommandHandler(f)
}

func (c *CompositionRoot) CreateSweepTokenCountersCommandHandler() commands.SweepTokenCountersCommandHandler {
	var f commands.TokenUoWFactory = FuncTokenUoWFactory(func() commands.TokenUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSweepTokenCountersCommandHandler(f, nil)
}

func (c *CompositionRoot) CreateListOpenTicketsQueryHandler() queries.ListOpenTicketsQueryHandler {
	return queries.NewListOpenTicketsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListTablesQueryHandler() queries.ListTablesQueryHandler {
	return queries.NewListTablesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateSubmitDineInCommandHandler(),
		c.CreateSubmitTakeawayCommandHandler(),
		c.CreateSubmitDeliveryCommandHandler(),
		c.CreateUpdateOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateClearTableCommandHandler(),
		c.CreateListOpenTicketsQueryHandler(),
		c.CreateListTablesQueryHandler(),
	)
}

func (c *CompositionRoot) CreateTerminalHandler() *ws.Handler {
	snapshot := func(ctx context.Context, tenantID kernel.UUID) ([]ports.KitchenEvent, error) {
		uow := c.uowFactory.Create()
		open, err := uow.OrderRepository().GetAllKitchenVisible(ctx, tenantID)
		if err != nil {
			return nil, err
		}

		events := make([]ports.KitchenEvent, 0, len(open))
		for _, aggregate := range open {
			events = append(events, commands.KitchenEventFromOrder(aggregate))
		}
		return events, nil
	}

	return ws.NewHandler(c.notifier, snapshot, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateSweepTokenCountersCommandHandler(),
		c.config.TokenSweepSchedule,
		c.config.TokenRetentionDays,
		c.logger,
	)
}

type FuncDineInUoWFactory func() commands.DineInUoW

func (f FuncDineInUoWFactory) Create() commands.DineInUoW {
	return f()
}

type FuncTakeawayUoWFactory func() commands.TakeawayUoW

func (f FuncTakeawayUoWFactory) Create() commands.TakeawayUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncTableUoWFactory func() commands.TableUoW

func (f FuncTableUoWFactory) Create() commands.TableUoW {
	return f()
}

type FuncTokenUoWFactory func() commands.TokenUoW

func (f FuncTokenUoWFactory) Create() commands.TokenUoW {
	return f()
}
