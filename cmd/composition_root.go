package cmd

import (
	"fmt"
	"log/slog"

	httpin "freight/internal/adapters/in/http"
	"freight/internal/adapters/out/memory"
	"freight/internal/adapters/out/postgres"
	"freight/internal/adapters/out/postgres/bookingrepo"
	"freight/internal/adapters/out/postgres/loadrepo"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/ports"

	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	uowFactory ports.UnitOfWorkFactory
	loads      ports.LoadRepository
	bookings   ports.BookingRepository
	clock      ports.Clock
	logger     *slog.Logger
}

// NewPostgresCompositionRoot wires the handlers to gorm. The schema must
// already be migrated.
func NewPostgresCompositionRoot(gormDB *gorm.DB, clock clockwork.Clock, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		loads:      loadrepo.NewGormLoadRepository(gormDB),
		bookings:   bookingrepo.NewGormBookingRepository(gormDB),
		clock:      clock,
		logger:     logger,
	}
}

// NewMemoryCompositionRoot wires the handlers to store.
func NewMemoryCompositionRoot(store *memory.Store, clock clockwork.Clock, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		uowFactory: store,
		loads:      store.LoadRepository(),
		bookings:   store.BookingRepository(),
		clock:      clock,
		logger:     logger,
	}
}

// NewCompositionRoot picks the backend named by cfg.Storage. gormDB is only
// used for postgres.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, clock clockwork.Clock, logger *slog.Logger) (CompositionRoot, error) {
	switch cfg.Storage {
	case StoragePostgres:
		if gormDB == nil {
			return CompositionRoot{}, fmt.Errorf("%w: postgres storage without a database", errInvalidConfig)
		}
		return NewPostgresCompositionRoot(gormDB, clock, logger), nil
	case StorageMemory:
		store, err := memory.NewStore()
		if err != nil {
			return CompositionRoot{}, err
		}
		return NewMemoryCompositionRoot(store, clock, logger), nil
	default:
		return CompositionRoot{}, fmt.Errorf("%w: storage %q", errInvalidConfig, cfg.Storage)
	}
}

func (c *CompositionRoot) Clock() ports.Clock {
	return c.clock
}

// CreateHTTPServer wires every command and query handler into the REST server.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateLoad:    c.CreateCreateLoadCommandHandler(),
		UpdateLoad:    c.CreateUpdateLoadCommandHandler(),
		DeleteLoad:    c.CreateDeleteLoadCommandHandler(),
		CreateBooking: c.CreateCreateBookingCommandHandler(),
		UpdateBooking: c.CreateUpdateBookingCommandHandler(),
		DeleteBooking: c.CreateDeleteBookingCommandHandler(),
		GetLoad:       c.CreateGetLoadQueryHandler(),
		ListLoads:     c.CreateListLoadsQueryHandler(),
		GetBooking:    c.CreateGetBookingQueryHandler(),
		ListBookings:  c.CreateListBookingsQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateCreateLoadCommandHandler() commands.CreateLoadCommandHandler {
	var f commands.LoadUoWFactory = FuncLoadUoWFactory(func() commands.LoadUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateLoadCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateUpdateLoadCommandHandler() commands.UpdateLoadCommandHandler {
	var f commands.LoadUoWFactory = FuncLoadUoWFactory(func() commands.LoadUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateLoadCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateDeleteLoadCommandHandler() commands.DeleteLoadCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteLoadCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateCreateBookingCommandHandler() commands.CreateBookingCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateBookingCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateUpdateBookingCommandHandler() commands.UpdateBookingCommandHandler {
	var f commands.BookingUoWFactory = FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateBookingCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteBookingCommandHandler() commands.DeleteBookingCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteBookingCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateGetLoadQueryHandler() queries.GetLoadQueryHandler {
	return queries.NewGetLoadQueryHandler(c.loads)
}

func (c *CompositionRoot) CreateListLoadsQueryHandler() queries.ListLoadsQueryHandler {
	return queries.NewListLoadsQueryHandler(c.loads)
}

func (c *CompositionRoot) CreateGetBookingQueryHandler() queries.GetBookingQueryHandler {
	return queries.NewGetBookingQueryHandler(c.bookings)
}

func (c *CompositionRoot) CreateListBookingsQueryHandler() queries.ListBookingsQueryHandler {
	return queries.NewListBookingsQueryHandler(c.bookings)
}

func (c *CompositionRoot) CreateGetMarketplaceStatsQueryHandler() queries.GetMarketplaceStatsQueryHandler {
	return queries.NewGetMarketplaceStatsQueryHandler(c.loads, c.bookings)
}

type FuncLoadUoWFactory func() commands.LoadUoW

func (f FuncLoadUoWFactory) Create() commands.LoadUoW {
	return f()
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
