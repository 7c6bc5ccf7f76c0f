package http

import (
	"context"
	"log/slog"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

type (
	OrderCreator interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	OrderUpdater interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderCommand) (*order.Order, error)
	}
	OrderRemover interface {
		Handle(ctx context.Context, cmd commands.RemoveOrderCommand) (*order.Order, error)
	}
	CartClearer interface {
		Handle(ctx context.Context, cmd commands.ClearUserCartCommand) error
	}
	CartReader interface {
		Handle(ctx context.Context, query queries.GetUserCartQuery) ([]cart.Item, error)
	}
	OrderGetter interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderDetails, error)
	}
	OrderLister interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]*order.Order, error)
	}
	OrderStatusFinder interface {
		Handle(ctx context.Context, query queries.FindOrdersByStatusQuery) ([]*order.Order, error)
	}
	UserOrderLister interface {
		Handle(ctx context.Context, query queries.ListUserOrdersQuery) ([]*order.Order, error)
	}
	DailySalesReporter interface {
		Handle(ctx context.Context, query queries.GetDailySalesQuery) ([]order.DailySales, error)
	}
)

// Handlers are the use cases the HTTP server delegates to.
type Handlers struct {
	CreateOrder    OrderCreator
	UpdateOrder    OrderUpdater
	RemoveOrder    OrderRemover
	ClearUserCart  CartClearer
	GetUserCart    CartReader
	GetOrder       OrderGetter
	ListOrders     OrderLister
	FindByStatus   OrderStatusFinder
	ListUserOrders UserOrderLister
	DailySales     DailySalesReporter
}

// Server implements ServerInterface on top of the application use cases.
type Server struct {
	handlers Handlers
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func NewServer(handlers Handlers, m *metrics.Metrics, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		metrics:  m,
		logger:   logger.With("component", "http_server"),
	}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	address, err := body.ShippingAddress.toDomain()
	if err != nil {
		return writeError(ctx, s.logger, errs.NewValueIsInvalidErrorWithCause("shippingAddress", err))
	}

	amounts, err := body.amounts()
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	cmd, err := commands.NewCreateOrderCommand(body.BuyerID, body.LineItemIDs, address, amounts)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	s.metrics.OrdersCreated.Inc()
	return ctx.JSON(http.StatusCreated, orderFromDomain(created))
}

// ListOrders handles GET /api/v1/orders. With ?status= only exact matches are returned.
func (s *Server) ListOrders(ctx echo.Context, params ListOrdersParams) error {
	var (
		orders []*order.Order
		err    error
	)

	if params.Status != nil {
		orders, err = s.handlers.FindByStatus.Handle(ctx.Request().Context(),
			queries.NewFindOrdersByStatusQuery(*params.Status))
	} else {
		orders, err = s.handlers.ListOrders.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	}
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, ordersFromDomain(orders))
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id string) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	details, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, detailsFromDomain(details))
}

// UpdateOrder handles PATCH and PUT /api/v1/orders/{id}. Both apply a partial update.
func (s *Server) UpdateOrder(ctx echo.Context, id string) error {
	var body OrderPatch
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	patch, err := body.toDomain()
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(id, patch)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	updated, err := s.handlers.UpdateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/{id} and returns the removed order.
func (s *Server) DeleteOrder(ctx echo.Context, id string) error {
	cmd, err := commands.NewRemoveOrderCommand(id)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	removed, err := s.handlers.RemoveOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(removed))
}

// ListUserOrders handles GET /api/v1/users/{userId}/orders.
func (s *Server) ListUserOrders(ctx echo.Context, userID string) error {
	orders, err := s.handlers.ListUserOrders.Handle(ctx.Request().Context(),
		queries.NewListUserOrdersQuery(userID))
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, ordersFromDomain(orders))
}

func (s *Server) GetDailySales(ctx echo.Context) error {
	sales, err := s.handlers.DailySales.Handle(ctx.Request().Context(), queries.NewGetDailySalesQuery())
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, dailySalesFromDomain(sales))
}

func (s *Server) GetUserCart(ctx echo.Context, userID string) error {
	query, err := queries.NewGetUserCartQuery(userID)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	items, err := s.handlers.GetUserCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, cartFromDomain(items))
}

func (s *Server) ClearUserCart(ctx echo.Context, userID string) error {
	cmd, err := commands.NewClearUserCartCommand(userID)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	if err = s.handlers.ClearUserCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
