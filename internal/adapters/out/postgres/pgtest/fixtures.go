package pgtest

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// NewOrder builds a valid, not yet persisted order for buyerID with two line items.
// It panics on invalid input since it is only used by tests.
func NewOrder(buyerID kernel.UUID, total string) *order.Order {
	addr, err := kernel.NewAddress("742 Evergreen Terrace", "", "Springfield", "OR", "97403")
	if err != nil {
		panic(err)
	}

	o, err := order.NewOrder(
		kernel.NewUUID(),
		buyerID,
		[]kernel.UUID{kernel.NewUUID(), kernel.NewUUID()},
		addr,
		order.Amounts{
			Subtotal:     kernel.MustMoney(total),
			ShippingCost: kernel.MustMoney("0"),
			Tax:          kernel.MustMoney("0"),
			Total:        kernel.MustMoney(total),
		},
		order.NewRandomConfirmationCode(),
	)
	if err != nil {
		panic(err)
	}
	return o
}
