package order

import (
	"math/rand/v2"
	"strconv"

	"storefront/internal/pkg/errs"
)

const (
	MinConfirmationCode = 10000
	MaxConfirmationCode = 99999
)

// ConfirmationCode is the 5-digit number shown to the buyer. It is for display only
// and may collide with other orders' codes.
type ConfirmationCode int

// NewConfirmationCode validates a stored or supplied code.
func NewConfirmationCode(v int) (ConfirmationCode, error) {
	code := ConfirmationCode(v)
	if err := code.Validate(); err != nil {
		return 0, err
	}
	return code, nil
}

// NewRandomConfirmationCode draws a code uniformly from [MinConfirmationCode, MaxConfirmationCode].
func NewRandomConfirmationCode() ConfirmationCode {
	return ConfirmationCode(rand.IntN(MaxConfirmationCode-MinConfirmationCode+1) + MinConfirmationCode) //nolint:gosec // display code, not a secret
}

// Validate checks the 5-digit range.
func (c ConfirmationCode) Validate() error {
	if c < MinConfirmationCode || c > MaxConfirmationCode {
		return errs.NewValueIsOutOfRangeError("confirmationCode", int(c), MinConfirmationCode, MaxConfirmationCode)
	}
	return nil
}

func (c ConfirmationCode) Int() int {
	return int(c)
}

func (c ConfirmationCode) String() string {
	return strconv.Itoa(int(c))
}
