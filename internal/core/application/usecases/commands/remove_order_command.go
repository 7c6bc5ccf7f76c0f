package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrRemoveOrderCommandIsNotConstructed = errors.New(
		"RemoveOrderCommand must be created via NewRemoveOrderCommand constructor",
	)
)

// RemoveOrderCommand deletes an order permanently.
type RemoveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveOrderCommand(orderID string) (RemoveOrderCommand, error) {
	id, err := kernel.ParseID("orderId", orderID)
	if err != nil {
		return RemoveOrderCommand{}, err
	}

	return RemoveOrderCommand{
		orderID: id,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderCommandIsNotConstructed)
}

func (c RemoveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
