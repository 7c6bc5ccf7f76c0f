package queries

import (
	"context"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/ports"
)

type GetUserCartQueryHandler struct {
	carts ports.CartRepository
}

func NewGetUserCartQueryHandler(carts ports.CartRepository) GetUserCartQueryHandler {
	return GetUserCartQueryHandler{carts: carts}
}

// Handle returns an empty list for an empty or unknown cart.
func (h GetUserCartQueryHandler) Handle(ctx context.Context, query GetUserCartQuery) ([]cart.Item, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, err := h.carts.GetUserCart(ctx, query.UserID())
	if err != nil {
		return nil, err
	}

	if items == nil {
		return []cart.Item{}, nil
	}
	return items, nil
}
