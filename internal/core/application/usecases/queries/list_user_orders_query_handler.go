package queries

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

type ListUserOrdersQueryHandler struct {
	users  ports.UserRepository
	orders ports.OrderRepository
}

func NewListUserOrdersQueryHandler(users ports.UserRepository, orders ports.OrderRepository) ListUserOrdersQueryHandler {
	return ListUserOrdersQueryHandler{users: users, orders: orders}
}

// Handle resolves the user and returns their orders oldest first. A malformed id or
// a user that cannot be resolved yields an empty list; orders left behind by a
// deleted user are not returned.
func (h ListUserOrdersQueryHandler) Handle(ctx context.Context, query ListUserOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	userID, ok := query.UserID()
	if !ok {
		return make([]*order.Order, 0), nil
	}

	buyer, err := h.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return make([]*order.Order, 0), nil
		}
		return nil, err
	}

	orders, err := h.orders.FindByBuyer(ctx, buyer.ID())
	if err != nil {
		return nil, err
	}

	return nonNil(orders), nil
}

func nonNil(orders []*order.Order) []*order.Order {
	if orders == nil {
		return make([]*order.Order, 0)
	}
	return orders
}
