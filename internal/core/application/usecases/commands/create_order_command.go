package commands

import (
	"errors"
	"slices"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a checkout: the buyer, the products taken from the
// cart, where to ship them and the amounts the storefront already computed.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(buyerID, []string{productID}, address, order.Amounts{
//	    Subtotal: kernel.MustMoney("20"), Total: kernel.MustMoney("20"),
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid checkout: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	buyerID         kernel.UUID
	lineItemIDs     []kernel.UUID
	shippingAddress kernel.Address
	amounts         order.Amounts

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand parses and validates a checkout request.
// Identifiers are parsed here, so a malformed buyer or product id is an invalid
// argument rather than a missing record.
func NewCreateOrderCommand(
	buyerID string,
	lineItemIDs []string,
	shippingAddress kernel.Address,
	amounts order.Amounts,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		amounts: amounts,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBuyerID(buyerID),
		cmd.setLineItemIDs(lineItemIDs),
		cmd.setShippingAddress(shippingAddress),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

func (c CreateOrderCommand) LineItemIDs() []kernel.UUID {
	return slices.Clone(c.lineItemIDs)
}

func (c CreateOrderCommand) ShippingAddress() kernel.Address {
	return c.shippingAddress
}

func (c CreateOrderCommand) Amounts() order.Amounts {
	return c.amounts
}

func (c *CreateOrderCommand) setBuyerID(buyerID string) error {
	id, err := kernel.ParseID("buyerId", buyerID)
	if err != nil {
		return err
	}

	c.buyerID = id
	return nil
}

func (c *CreateOrderCommand) setLineItemIDs(lineItemIDs []string) error {
	if len(lineItemIDs) == 0 {
		return errs.NewValueIsRequiredError("lineItemIds")
	}

	ids, err := kernel.ParseIDs("lineItemIds", lineItemIDs)
	if err != nil {
		return err
	}

	c.lineItemIDs = ids
	return nil
}

func (c *CreateOrderCommand) setShippingAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shippingAddress", err)
	}

	c.shippingAddress = address
	return nil
}
