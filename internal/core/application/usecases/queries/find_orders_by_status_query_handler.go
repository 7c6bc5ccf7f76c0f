package queries

import (
	"context"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

type FindOrdersByStatusQueryHandler struct {
	orders ports.OrderRepository
}

func NewFindOrdersByStatusQueryHandler(orders ports.OrderRepository) FindOrdersByStatusQueryHandler {
	return FindOrdersByStatusQueryHandler{orders: orders}
}

func (h FindOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query FindOrdersByStatusQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.FindByStatus(ctx, query.Status())
	if err != nil {
		return nil, err
	}

	return nonNil(orders), nil
}
