package queries

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var (
	ErrGetDailySalesQueryIsNotConstructed = errors.New(
		"GetDailySalesQuery must be created via NewGetDailySalesQuery constructor",
	)
)

// GetDailySalesQuery requests the per-day report of Delivered orders.
// It has no parameters; every execution rescans the stored orders.
type GetDailySalesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDailySalesQuery() GetDailySalesQuery {
	return GetDailySalesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDailySalesQuery) Validate() error {
	return q.guard.Validate(ErrGetDailySalesQueryIsNotConstructed)
}
