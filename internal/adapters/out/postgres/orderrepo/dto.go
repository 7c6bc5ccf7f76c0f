// Package orderrepo persists order aggregates in the orders table.
package orderrepo

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. Line items are kept as an ordered text[] of product
// ids; the shipping address is flattened into shipping_* columns.
type OrderDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BuyerID          uuid.UUID       `gorm:"type:uuid;index"`
	LineItemIDs      pq.StringArray  `gorm:"type:text[]"`
	ShippingAddress  AddressDTO      `gorm:"embedded;embeddedPrefix:shipping_"`
	Subtotal         decimal.Decimal `gorm:"type:numeric(12,2)"`
	ShippingCost     decimal.Decimal `gorm:"type:numeric(12,2)"`
	Tax              decimal.Decimal `gorm:"type:numeric(12,2)"`
	Total            decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status           string          `gorm:"index"`
	ConfirmationCode int
	CreatedAt        time.Time `gorm:"autoCreateTime"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type AddressDTO struct {
	Street     string
	Apartment  string
	City       string
	State      string
	PostalCode string
}

// mutableColumns are written by Update. Buyer, confirmation code and creation time
// are never among them.
var mutableColumns = []string{
	"line_item_ids",
	"shipping_street",
	"shipping_apartment",
	"shipping_city",
	"shipping_state",
	"shipping_postal_code",
	"subtotal",
	"shipping_cost",
	"tax",
	"total",
	"status",
}

func fromDomain(o *order.Order) OrderDTO {
	addr := o.ShippingAddress()

	return OrderDTO{
		ID:          o.ID().Bytes(),
		BuyerID:     o.Buyer().Bytes(),
		LineItemIDs: pq.StringArray(kernel.Strings(o.LineItems())),
		ShippingAddress: AddressDTO{
			Street:     addr.Street(),
			Apartment:  addr.Apartment(),
			City:       addr.City(),
			State:      addr.State(),
			PostalCode: addr.PostalCode(),
		},
		Subtotal:         o.Subtotal().Decimal(),
		ShippingCost:     o.ShippingCost().Decimal(),
		Tax:              o.Tax().Decimal(),
		Total:            o.Total().Decimal(),
		Status:           o.Status().String(),
		ConfirmationCode: o.ConfirmationCode().Int(),
		CreatedAt:        o.CreatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	lineItems, err := kernel.ParseIDs("lineItemIds", dto.LineItemIDs)
	if err != nil {
		return nil, err
	}

	addr, err := kernel.NewAddress(
		dto.ShippingAddress.Street,
		dto.ShippingAddress.Apartment,
		dto.ShippingAddress.City,
		dto.ShippingAddress.State,
		dto.ShippingAddress.PostalCode,
	)
	if err != nil {
		return nil, err
	}

	amounts, err := amountsFromDTO(dto)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		buyerID,
		lineItems,
		addr,
		amounts,
		order.Status(dto.Status),
		order.ConfirmationCode(dto.ConfirmationCode),
		dto.CreatedAt.UTC(),
	)
}

func amountsFromDTO(dto OrderDTO) (order.Amounts, error) {
	subtotal, subtotalErr := kernel.NewMoney("subtotal", dto.Subtotal)
	shippingCost, shippingErr := kernel.NewMoney("shippingCost", dto.ShippingCost)
	tax, taxErr := kernel.NewMoney("tax", dto.Tax)
	total, totalErr := kernel.NewMoney("total", dto.Total)

	if err := errors.Join(subtotalErr, shippingErr, taxErr, totalErr); err != nil {
		return order.Amounts{}, err
	}

	return order.Amounts{
		Subtotal:     subtotal,
		ShippingCost: shippingCost,
		Tax:          tax,
		Total:        total,
	}, nil
}
