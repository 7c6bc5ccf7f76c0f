package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrClearUserCartCommandIsNotConstructed = errors.New(
		"ClearUserCartCommand must be created via NewClearUserCartCommand constructor",
	)
)

// ClearUserCartCommand empties a user's cart outside of checkout.
type ClearUserCartCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewClearUserCartCommand(userID string) (ClearUserCartCommand, error) {
	id, err := kernel.ParseID("userId", userID)
	if err != nil {
		return ClearUserCartCommand{}, err
	}

	return ClearUserCartCommand{
		userID: id,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c ClearUserCartCommand) Validate() error {
	return c.guard.Validate(ErrClearUserCartCommandIsNotConstructed)
}

func (c ClearUserCartCommand) UserID() kernel.UUID {
	return c.userID
}
