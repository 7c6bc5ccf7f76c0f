package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetUserCartQueryIsNotConstructed = errors.New(
		"GetUserCartQuery must be created via NewGetUserCartQuery constructor",
	)
)

// GetUserCartQuery lists what a user currently holds in the cart.
type GetUserCartQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetUserCartQuery(userID string) (GetUserCartQuery, error) {
	id, err := kernel.ParseID("userId", userID)
	if err != nil {
		return GetUserCartQuery{}, err
	}

	return GetUserCartQuery{
		userID: id,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetUserCartQuery) Validate() error {
	return q.guard.Validate(ErrGetUserCartQueryIsNotConstructed)
}

func (q GetUserCartQuery) UserID() kernel.UUID {
	return q.userID
}
