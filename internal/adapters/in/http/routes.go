package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	// Status is matched exactly when present.
	Status *string `form:"status,omitempty" json:"status,omitempty"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Place an order and clear the buyer's cart
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// List every order, or only those with the given status
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// Get an order with its buyer and products
	// (GET /api/v1/orders/{id})
	GetOrder(ctx echo.Context, id string) error
	// Replace the given fields of an order
	// (PATCH /api/v1/orders/{id}, PUT /api/v1/orders/{id})
	UpdateOrder(ctx echo.Context, id string) error
	// Remove an order
	// (DELETE /api/v1/orders/{id})
	DeleteOrder(ctx echo.Context, id string) error
	// List the orders of a user
	// (GET /api/v1/users/{userId}/orders)
	ListUserOrders(ctx echo.Context, userID string) error
	// Delivered sales per UTC calendar day
	// (GET /api/v1/sales/daily)
	GetDailySales(ctx echo.Context) error
	// List the items in the cart of a user
	// (GET /api/v1/carts/users/{userId})
	GetUserCart(ctx echo.Context, userID string) error
	// Empty the cart of a user
	// (DELETE /api/v1/carts/users/{userId})
	ClearUserCart(ctx echo.Context, userID string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams

	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter status: "+err.Error())
	}

	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	id, err := bindPathString(ctx, "id")
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) UpdateOrder(ctx echo.Context) error {
	id, err := bindPathString(ctx, "id")
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	id, err := bindPathString(ctx, "id")
	if err != nil {
		return err
	}
	return w.Handler.DeleteOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) ListUserOrders(ctx echo.Context) error {
	userID, err := bindPathString(ctx, "userId")
	if err != nil {
		return err
	}
	return w.Handler.ListUserOrders(ctx, userID)
}

func (w *ServerInterfaceWrapper) GetDailySales(ctx echo.Context) error {
	return w.Handler.GetDailySales(ctx)
}

func (w *ServerInterfaceWrapper) GetUserCart(ctx echo.Context) error {
	userID, err := bindPathString(ctx, "userId")
	if err != nil {
		return err
	}
	return w.Handler.GetUserCart(ctx, userID)
}

func (w *ServerInterfaceWrapper) ClearUserCart(ctx echo.Context) error {
	userID, err := bindPathString(ctx, "userId")
	if err != nil {
		return err
	}
	return w.Handler.ClearUserCart(ctx, userID)
}

func bindPathString(ctx echo.Context, name string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter "+name+": "+err.Error())
	}
	return value, nil
}

// EchoRouter is the subset of echo used to register routes.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST("/api/v1/orders", wrapper.CreateOrder)
	router.GET("/api/v1/orders", wrapper.ListOrders)
	router.GET("/api/v1/orders/:id", wrapper.GetOrder)
	router.PATCH("/api/v1/orders/:id", wrapper.UpdateOrder)
	router.PUT("/api/v1/orders/:id", wrapper.UpdateOrder)
	router.DELETE("/api/v1/orders/:id", wrapper.DeleteOrder)
	router.GET("/api/v1/users/:userId/orders", wrapper.ListUserOrders)
	router.GET("/api/v1/sales/daily", wrapper.GetDailySales)
	router.GET("/api/v1/carts/users/:userId", wrapper.GetUserCart)
	router.DELETE("/api/v1/carts/users/:userId", wrapper.ClearUserCart)
}
