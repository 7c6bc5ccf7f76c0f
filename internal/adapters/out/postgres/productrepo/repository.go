// Package productrepo reads catalogue entries from the products table.
package productrepo

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	Price decimal.Decimal `gorm:"type:numeric(12,2)"`
}

func (ProductDTO) TableName() string {
	return "products"
}

// GormProductRepository implements ports.ProductRepository.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// GetMany loads products in one query and returns them in the order of ids.
// Missing ids are skipped.
func (r *GormProductRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	if len(ids) == 0 {
		return make([]*product.Product, 0), nil
	}

	raw := make([]uuid.UUID, len(ids))
	for i, id := range ids {
		raw[i] = id.Bytes()
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*product.Product, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		byID[dto.ID] = p
	}

	products := make([]*product.Product, 0, len(ids))
	for _, id := range raw {
		if p, ok := byID[id]; ok {
			products = append(products, p)
		}
	}

	return products, nil
}

// Add stores a catalogue entry, for seeding and tests.
func (r *GormProductRepository) Add(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := ProductDTO{ID: p.ID().Bytes(), Name: p.Name(), Price: p.Price().Decimal()}
	return r.db.WithContext(ctx).Create(&dto).Error
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney("price", dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, price)
}
