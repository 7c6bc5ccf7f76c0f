package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
)

type ProductRepository interface {
	// GetMany returns the products for ids in the order of ids. Unknown ids are
	// skipped; a repeated id yields the product once per occurrence.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)
}
