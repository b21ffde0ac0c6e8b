package cmd

import (
	"log/slog"

	"tableside/internal/adapters/in/ws"
	"tableside/internal/adapters/out/postgres"
	"tableside/internal/adapters/out/postgres/staffrepo"
	"tableside/internal/core/application/notifications"
	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, use cases, and the notification fan-out.
// The WebSocket registry and dispatcher are created once here: the HTTP
// handler subscribes connections into the same registry the notifier
// broadcasts through.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	registry   *ws.Registry
	notifier   *notifications.Notifier
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph. eventFeed may be nil when no
// broker is configured.
func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	eventFeed notifications.EventFeed,
	logger *slog.Logger,
) CompositionRoot {
	registry := ws.NewRegistry()
	dispatcher := ws.NewDispatcher(registry, logger)
	staffRepo := staffrepo.NewGormStaffRepository(gormDB)
	notifier := notifications.NewNotifier(dispatcher, staffRepo, eventFeed, logger)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		registry:   registry,
		notifier:   notifier,
		logger:     logger,
	}
}

// Registry exposes the connection registry for the WebSocket handler.
func (c *CompositionRoot) Registry() *ws.Registry {
	return c.registry
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateReconcileTablesCommandHandler() commands.ReconcileTablesCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewReconcileTablesCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOpenOrdersQueryHandler() queries.GetOpenOrdersQueryHandler {
	return queries.NewGetOpenOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTablesQueryHandler() queries.GetTablesQueryHandler {
	return queries.NewGetTablesQueryHandler(c.gormDB)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
