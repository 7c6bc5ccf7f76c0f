package order

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
)

// Patch carries a partial order update. A nil field means "leave unchanged".
// The buyer, confirmation code and creation time cannot be patched.
type Patch struct {
	LineItems       *[]kernel.UUID
	Status          *Status
	ShippingAddress *kernel.Address
	Subtotal        *kernel.Money
	ShippingCost    *kernel.Money
	Tax             *kernel.Money
	Total           *kernel.Money
}

// Validate checks every present field.
func (p Patch) Validate() error {
	var errList []error
	if p.LineItems != nil {
		errList = append(errList, validateLineItems(*p.LineItems))
	}
	if p.Status != nil {
		errList = append(errList, p.Status.Validate())
	}
	if p.ShippingAddress != nil {
		errList = append(errList, p.ShippingAddress.Validate())
	}
	return errors.Join(errList...)
}
