package kernel

import (
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a non-negative monetary amount in the store's single currency.
// Amounts supplied by callers are stored verbatim; nothing in the domain derives one
// amount from another. The zero value is a valid amount of 0.
type Money struct {
	amount decimal.Decimal
}

// NewMoney wraps amount, rejecting negative values.
func NewMoney(paramName string, amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeError(paramName, amount.String(), "0", "+inf")
	}
	return Money{amount: amount}, nil
}

// MoneyFromString parses a decimal literal such as "149.90".
func MoneyFromString(paramName, s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return NewMoney(paramName, amount)
}

// MustMoney is NewMoney for literals known to be valid, mostly in tests.
func MustMoney(s string) Money {
	m, err := MoneyFromString("amount", s)
	if err != nil {
		panic(err)
	}
	return m
}

// Decimal returns the underlying amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// IsEqual compares amounts numerically, so 10 and 10.00 are equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return m.amount.String()
}
