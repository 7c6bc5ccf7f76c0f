package order

import (
	"errors"
	"slices"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Amounts is the monetary breakdown of an order exactly as the caller computed it.
// Total is not checked against the other amounts.
type Amounts struct {
	Subtotal     kernel.Money
	ShippingCost kernel.Money
	Tax          kernel.Money
	Total        kernel.Money
}

// Order is the aggregate root for a purchase.
//
// Order follows these invariants:
//   - Has a valid identifier and exactly one valid buyer reference
//   - Has at least one line item
//   - Has a constructed shipping address
//   - Has a confirmation code in the 5-digit range
//   - buyerID, confirmationCode and createdAt never change after construction
type Order struct {
	id               kernel.UUID
	buyerID          kernel.UUID
	lineItems        []kernel.UUID
	shippingAddress  kernel.Address
	amounts          Amounts
	status           Status
	confirmationCode ConfirmationCode
	createdAt        time.Time

	isConstructed bool
}

// NewOrder creates an order from a cart snapshot. The order starts in InitialStatus;
// createdAt stays zero until the repository persists it.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), buyer.ID(), lineItems, address, amounts,
//	    order.NewRandomConfirmationCode())
func NewOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	lineItems []kernel.UUID,
	shippingAddress kernel.Address,
	amounts Amounts,
	code ConfirmationCode,
) (*Order, error) {
	return build(id, buyerID, lineItems, shippingAddress, amounts, InitialStatus, code, time.Time{})
}

// RestoreOrder rebuilds a persisted order, including its status and creation time.
// It runs the same validation as NewOrder so corrupted rows are not silently accepted.
func RestoreOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	lineItems []kernel.UUID,
	shippingAddress kernel.Address,
	amounts Amounts,
	status Status,
	code ConfirmationCode,
	createdAt time.Time,
) (*Order, error) {
	return build(id, buyerID, lineItems, shippingAddress, amounts, status, code, createdAt)
}

func build(
	id kernel.UUID,
	buyerID kernel.UUID,
	lineItems []kernel.UUID,
	shippingAddress kernel.Address,
	amounts Amounts,
	status Status,
	code ConfirmationCode,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		amounts:       amounts,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setBuyer(buyerID),
		o.setLineItems(lineItems),
		o.setShippingAddress(shippingAddress),
		o.setStatus(status),
		o.setConfirmationCode(code),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// Buyer returns the reference to the user who placed the order.
func (o *Order) Buyer() kernel.UUID {
	return o.buyerID
}

// LineItems returns a copy of the ordered product references.
func (o *Order) LineItems() []kernel.UUID {
	return slices.Clone(o.lineItems)
}

func (o *Order) ShippingAddress() kernel.Address {
	return o.shippingAddress
}

func (o *Order) Amounts() Amounts {
	return o.amounts
}

func (o *Order) Subtotal() kernel.Money {
	return o.amounts.Subtotal
}

func (o *Order) ShippingCost() kernel.Money {
	return o.amounts.ShippingCost
}

func (o *Order) Tax() kernel.Money {
	return o.amounts.Tax
}

func (o *Order) Total() kernel.Money {
	return o.amounts.Total
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) ConfirmationCode() ConfirmationCode {
	return o.confirmationCode
}

// CreatedAt returns the creation timestamp, or the zero time before persistence.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Apply replaces the fields present in p and leaves the rest untouched.
// The patch is validated as a whole first; on error the order is unchanged.
// There is no transition guard on status.
func (o *Order) Apply(p Patch) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if p.LineItems != nil {
		o.lineItems = slices.Clone(*p.LineItems)
	}
	if p.Status != nil {
		o.status = *p.Status
	}
	if p.ShippingAddress != nil {
		o.shippingAddress = *p.ShippingAddress
	}
	if p.Subtotal != nil {
		o.amounts.Subtotal = *p.Subtotal
	}
	if p.ShippingCost != nil {
		o.amounts.ShippingCost = *p.ShippingCost
	}
	if p.Tax != nil {
		o.amounts.Tax = *p.Tax
	}
	if p.Total != nil {
		o.amounts.Total = *p.Total
	}

	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setBuyer(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("buyer", err)
	}
	o.buyerID = buyerID
	return nil
}

func (o *Order) setLineItems(lineItems []kernel.UUID) error {
	if err := validateLineItems(lineItems); err != nil {
		return err
	}
	o.lineItems = slices.Clone(lineItems)
	return nil
}

func (o *Order) setShippingAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.shippingAddress = address
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setConfirmationCode(code ConfirmationCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	o.confirmationCode = code
	return nil
}

func validateLineItems(lineItems []kernel.UUID) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("lineItems")
	}
	for _, id := range lineItems {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("lineItems", err)
		}
	}
	return nil
}
