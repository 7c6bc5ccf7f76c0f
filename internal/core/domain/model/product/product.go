// Package product holds the catalogue record referenced by order line items.
package product

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via RestoreProduct")

// Product is a read-only catalogue entry. Orders reference products by id and never
// copy their price.
type Product struct {
	id    kernel.UUID
	name  string
	price kernel.Money

	isConstructed bool
}

func RestoreProduct(id kernel.UUID, name string, price kernel.Money) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Product{
		id:            id,
		name:          name,
		price:         price,
		isConstructed: true,
	}, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Price() kernel.Money {
	return p.price
}
