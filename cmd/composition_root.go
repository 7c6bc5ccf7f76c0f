package cmd

import (
	"context"
	"log/slog"

	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/cartrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/adapters/out/postgres/userrepo"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/services"
	"storefront/internal/jobs"
	"storefront/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, m *metrics.Metrics, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		metrics:    m,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(
		f,
		userrepo.NewGormUserRepository(c.gormDB),
		cartrepo.NewGormCartRepository(c.gormDB),
		cartrepo.NewGormClearTaskRepository(c.gormDB),
		c.logger,
	)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRemoveOrderCommandHandler() commands.RemoveOrderCommandHandler {
	return commands.NewRemoveOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateClearUserCartCommandHandler() commands.ClearUserCartCommandHandler {
	return commands.NewClearUserCartCommandHandler(cartrepo.NewGormCartRepository(c.gormDB))
}

func (c *CompositionRoot) CreateRetryCartClearsCommandHandler() commands.RetryCartClearsCommandHandler {
	return commands.NewRetryCartClearsCommandHandler(
		cartrepo.NewGormCartRepository(c.gormDB),
		cartrepo.NewGormClearTaskRepository(c.gormDB),
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(
		orderrepo.NewGormOrderRepository(c.gormDB),
		userrepo.NewGormUserRepository(c.gormDB),
		productrepo.NewGormProductRepository(c.gormDB),
	)
}

func (c *CompositionRoot) CreateGetUserCartQueryHandler() queries.GetUserCartQueryHandler {
	return queries.NewGetUserCartQueryHandler(cartrepo.NewGormCartRepository(c.gormDB))
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB))
}

func (c *CompositionRoot) CreateFindOrdersByStatusQueryHandler() queries.FindOrdersByStatusQueryHandler {
	return queries.NewFindOrdersByStatusQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB))
}

func (c *CompositionRoot) CreateListUserOrdersQueryHandler() queries.ListUserOrdersQueryHandler {
	return queries.NewListUserOrdersQueryHandler(
		userrepo.NewGormUserRepository(c.gormDB),
		orderrepo.NewGormOrderRepository(c.gormDB),
	)
}

func (c *CompositionRoot) CreateGetDailySalesQueryHandler() queries.GetDailySalesQueryHandler {
	return queries.NewGetDailySalesQueryHandler(
		orderrepo.NewGormOrderRepository(c.gormDB),
		services.NewSalesAggregator(),
	)
}

// CreateRouter wires every use case into the echo router.
func (c *CompositionRoot) CreateRouter(ctx context.Context, gatherer prometheus.Gatherer) (*echo.Echo, error) {
	createOrder := c.CreateCreateOrderCommandHandler()
	updateOrder := c.CreateUpdateOrderCommandHandler()
	removeOrder := c.CreateRemoveOrderCommandHandler()
	clearCart := c.CreateClearUserCartCommandHandler()

	server := httpin.NewServer(httpin.Handlers{
		CreateOrder:    &createOrder,
		UpdateOrder:    &updateOrder,
		RemoveOrder:    &removeOrder,
		ClearUserCart:  &clearCart,
		GetUserCart:    c.CreateGetUserCartQueryHandler(),
		GetOrder:       c.CreateGetOrderQueryHandler(),
		ListOrders:     c.CreateListOrdersQueryHandler(),
		FindByStatus:   c.CreateFindOrdersByStatusQueryHandler(),
		ListUserOrders: c.CreateListUserOrdersQueryHandler(),
		DailySales:     c.CreateGetDailySalesQueryHandler(),
	}, c.metrics, c.logger)

	return httpin.NewRouter(ctx, server, httpin.RouterConfig{
		CORSOrigins: c.cfg.CORSOrigins,
		Metrics:     c.metrics,
		Gatherer:    gatherer,
		Logger:      c.logger,
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	retry := c.CreateRetryCartClearsCommandHandler()
	return jobs.NewJobManager(&retry, jobs.Config{
		CartClearRetrySchedule:  c.cfg.CartClearRetrySchedule,
		CartClearRetryBatchSize: c.cfg.CartClearRetryBatch,
	}, c.metrics, c.logger)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}
