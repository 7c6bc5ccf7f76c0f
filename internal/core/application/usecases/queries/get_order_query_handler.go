package queries

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

type GetOrderQueryHandler struct {
	orders   ports.OrderRepository
	users    ports.UserRepository
	products ports.ProductRepository
}

func NewGetOrderQueryHandler(
	orders ports.OrderRepository,
	users ports.UserRepository,
	products ports.ProductRepository,
) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		orders:   orders,
		users:    users,
		products: products,
	}
}

// Handle returns errs.ErrObjectNotFound when the order does not exist.
// Buyer and products are loaded concurrently once the order is found.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return OrderDetails{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return OrderDetails{}, err
	}

	var (
		buyer    *user.User
		products []*product.Product
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, getErr := h.users.Get(gctx, o.Buyer())
		if errors.Is(getErr, errs.ErrObjectNotFound) {
			return nil
		}
		buyer = u
		return getErr
	})
	g.Go(func() error {
		p, getErr := h.products.GetMany(gctx, o.LineItems())
		products = p
		return getErr
	})

	if err = g.Wait(); err != nil {
		return OrderDetails{}, err
	}

	if products == nil {
		products = make([]*product.Product, 0)
	}

	return OrderDetails{
		Order:     o,
		Buyer:     buyer,
		LineItems: products,
	}, nil
}
