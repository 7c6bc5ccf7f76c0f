package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrListUserOrdersQueryIsNotConstructed = errors.New(
		"ListUserOrdersQuery must be created via NewListUserOrdersQuery constructor",
	)
)

// ListUserOrdersQuery lists a buyer's orders.
//
// Unlike GetOrderQuery, a malformed or unknown user id is not an error: the
// result is simply empty.
type ListUserOrdersQuery struct {
	userID kernel.UUID
	valid  bool

	guard guard.ConstructorGuard
}

func NewListUserOrdersQuery(userID string) ListUserOrdersQuery {
	id, err := kernel.UUIDFromString(userID)

	return ListUserOrdersQuery{
		userID: id,
		valid:  err == nil,
		guard:  guard.NewConstructorGuard(),
	}
}

func (q ListUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListUserOrdersQueryIsNotConstructed)
}

// UserID returns the parsed id and whether parsing succeeded.
func (q ListUserOrdersQuery) UserID() (kernel.UUID, bool) {
	return q.userID, q.valid
}
