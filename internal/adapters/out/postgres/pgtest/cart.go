package pgtest

import (
	"context"
	"time"

	"storefront/internal/adapters/out/postgres/cartrepo"
	"storefront/internal/core/domain/model/cart"

	"gorm.io/gorm"
)

// AddCartItem puts item into the cart as if the cart store had written it at addedAt.
func AddCartItem(ctx context.Context, db *gorm.DB, item cart.Item, addedAt time.Time) error {
	return db.WithContext(ctx).Create(&cartrepo.CartItemDTO{
		UserID:    item.UserID().Bytes(),
		ProductID: item.ProductID().Bytes(),
		Quantity:  item.Quantity(),
		AddedAt:   addedAt.UTC(),
	}).Error
}
