package queries

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var (
	ErrFindOrdersByStatusQueryIsNotConstructed = errors.New(
		"FindOrdersByStatusQuery must be created via NewFindOrdersByStatusQuery constructor",
	)
)

// FindOrdersByStatusQuery matches the stored status exactly. Any string is accepted;
// values outside the known statuses just match nothing.
type FindOrdersByStatusQuery struct {
	status string

	guard guard.ConstructorGuard
}

func NewFindOrdersByStatusQuery(status string) FindOrdersByStatusQuery {
	return FindOrdersByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}
}

func (q FindOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrFindOrdersByStatusQueryIsNotConstructed)
}

func (q FindOrdersByStatusQuery) Status() string {
	return q.status
}
