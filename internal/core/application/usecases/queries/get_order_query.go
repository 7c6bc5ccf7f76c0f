package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery fetches one order with its buyer and products expanded.
//
// Example:
//
//	query, err := NewGetOrderQuery(c.Param("id"))
//	if err != nil {
//	    // malformed id: errors.Is(err, errs.ErrValueIsInvalid)
//	}
//	details, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery rejects a malformed identifier before any lookup happens.
func NewGetOrderQuery(orderID string) (GetOrderQuery, error) {
	id, err := kernel.ParseID("orderId", orderID)
	if err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: id,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderDetails is an order with its references resolved.
// Buyer is nil when the user record no longer exists. LineItems holds one product
// per line item that still exists in the catalogue, in line item order.
type OrderDetails struct {
	Order     *order.Order
	Buyer     *user.User
	LineItems []*product.Product
}
