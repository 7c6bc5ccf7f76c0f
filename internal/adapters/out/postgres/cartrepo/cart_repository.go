package cartrepo

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormCartRepository implements ports.CartRepository over cart_items.
type GormCartRepository struct {
	db *gorm.DB
}

func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// ClearUserCart deletes every item of the user. Deleting nothing is success.
func (r *GormCartRepository) ClearUserCart(ctx context.Context, userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("user_id = ?", userID.Bytes()).
		Delete(&CartItemDTO{}).Error
}

// ClearUserCartAsOf deletes the items of the user added at or before asOf.
func (r *GormCartRepository) ClearUserCartAsOf(ctx context.Context, userID kernel.UUID, asOf time.Time) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("user_id = ? AND added_at <= ?", userID.Bytes(), asOf).
		Delete(&CartItemDTO{}).Error
}

func (r *GormCartRepository) GetUserCart(ctx context.Context, userID kernel.UUID) ([]cart.Item, error) {
	var dtos []CartItemDTO
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID.Bytes()).
		Order("product_id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]cart.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := itemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
