package cmd

import (
	"fmt"

	httpin "dineease/internal/adapters/in/http"
	"dineease/internal/adapters/out/inmem"
	"dineease/internal/adapters/out/payments"
	"dineease/internal/adapters/out/postgres"
	"dineease/internal/adapters/out/postgres/orderrepo"
	"dineease/internal/adapters/out/prefs"
	"dineease/internal/core/application/usecases/commands"
	"dineease/internal/core/application/usecases/queries"
	"dineease/internal/core/ports"

	"gorm.io/gorm"
)

// unitOfWorkFactory is satisfied by both storage backends.
type unitOfWorkFactory interface {
	Create() ports.UnitOfWork
}

// CompositionRoot wires adapters into use case handlers. The cart and the
// menu always live in memory; orders move to Postgres when a database is
// configured.
type CompositionRoot struct {
	uowFactory      unitOfWorkFactory
	menuRepository  ports.MenuRepository
	cartRepository  ports.CartRepository
	orderRepository ports.OrderRepository
	processor       ports.PaymentProcessor
	preferences     ports.PreferenceStore
}

// NewCompositionRoot builds the object graph for the configured backends.
// gormDB may be nil when the config does not name a database.
func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	items, err := inmem.DefaultMenu()
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to build menu: %w", err)
	}

	store := inmem.NewStore()
	cartRepository := inmem.NewCartRepository(store)

	root := CompositionRoot{
		menuRepository: inmem.NewMenuRepository(items),
		cartRepository: cartRepository,
		processor:      payments.NewSimulatedProcessor(config.PaymentDelay),
		preferences:    prefs.NewFileStore(config.PreferencesPath),
	}

	if config.UsesPostgres() {
		if gormDB == nil {
			return CompositionRoot{}, fmt.Errorf("database configured but no connection supplied")
		}
		root.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, cartRepository)
		root.orderRepository = orderrepo.NewGormOrderRepository(gormDB)
	} else {
		root.uowFactory = inmem.NewUnitOfWorkFactory(store)
		root.orderRepository = inmem.NewOrderRepository(store)
	}

	return root, nil
}

func (c *CompositionRoot) CreateAddItemToCartCommandHandler() commands.AddItemToCartCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddItemToCartCommandHandler(c.menuRepository, f)
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveCartItemCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeCartItemQuantityCommandHandler() commands.ChangeCartItemQuantityCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeCartItemQuantityCommandHandler(f)
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClearCartCommandHandler(f)
}

func (c *CompositionRoot) CreateSelectOrderTypeCommandHandler() commands.SelectOrderTypeCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSelectOrderTypeCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateDeliveryAddressCommandHandler() commands.UpdateDeliveryAddressCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryAddressCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.processor)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.menuRepository)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.cartRepository)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.orderRepository)
}

// OrderRepository exposes the order read side for background jobs.
func (c *CompositionRoot) OrderRepository() ports.OrderRepository {
	return c.orderRepository
}

// Preferences exposes the preference store for the HTTP server.
func (c *CompositionRoot) Preferences() ports.PreferenceStore {
	return c.preferences
}

// CreateServer builds the HTTP server over all use case handlers.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateAddItemToCartCommandHandler(),
		c.CreateRemoveCartItemCommandHandler(),
		c.CreateChangeCartItemQuantityCommandHandler(),
		c.CreateClearCartCommandHandler(),
		c.CreateSelectOrderTypeCommandHandler(),
		c.CreateUpdateDeliveryAddressCommandHandler(),
		c.CreatePlaceOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateGetMenuQueryHandler(),
		c.CreateGetCartQueryHandler(),
		c.CreateGetActiveOrdersQueryHandler(),
		c.CreateGetOrderHistoryQueryHandler(),
		c.CreateTrackOrderQueryHandler(),
		c.preferences,
	)
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
