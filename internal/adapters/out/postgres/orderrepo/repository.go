package orderrepo

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
// Lists are ordered by the orders.seq column, which follows insertion.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{
		db: db,
	}
}

// Add inserts a new order and returns it with the creation time the database holds.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	if dto.CreatedAt.IsZero() {
		// timestamptz keeps microseconds; truncate so the returned order matches a re-read.
		dto.CreatedAt = r.db.NowFunc().UTC().Truncate(time.Microsecond)
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.NewObjectConflictErrorWithCause("order", aggregate.ID().String(), err)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update writes every mutable column, zero values included.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select(mutableColumns).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID().String())
	}

	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the row and returns what was stored, using DELETE ... RETURNING.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	result := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ?", id.Bytes()).
		Delete(&dto)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("orderId", id.String())
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) FindByBuyer(ctx context.Context, buyerID kernel.UUID) ([]*order.Order, error) {
	return r.find(ctx, "buyer_id = ?", buyerID.Bytes())
}

func (r *GormOrderRepository) FindByStatus(ctx context.Context, status string) ([]*order.Order, error) {
	return r.find(ctx, "status = ?", status)
}

func (r *GormOrderRepository) FindAll(ctx context.Context) ([]*order.Order, error) {
	return r.find(ctx, "TRUE")
}

func (r *GormOrderRepository) find(ctx context.Context, query string, args ...any) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Where(query, args...).Order("seq").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
