// Package ports defines the contracts between the order core and its infrastructure:
// order persistence, the identity lookup, the product catalogue and the cart store.
package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// List methods return orders in insertion order and never return a nil slice.
type OrderRepository interface {
	// Add persists a new order and returns it as stored, with CreatedAt assigned.
	Add(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Update overwrites the mutable fields of an existing order.
	// Returns errs.ErrObjectNotFound when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identifier.
	// Returns errs.ErrObjectNotFound when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order and returns its last state.
	// Returns errs.ErrObjectNotFound when the order does not exist.
	Delete(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// FindByBuyer returns every order placed by buyerID, possibly none.
	FindByBuyer(ctx context.Context, buyerID kernel.UUID) ([]*order.Order, error)

	// FindByStatus returns every order whose stored status equals status exactly.
	// Unknown values simply match nothing.
	FindByStatus(ctx context.Context, status string) ([]*order.Order, error)

	// FindAll returns every order.
	FindAll(ctx context.Context) ([]*order.Order, error)
}
