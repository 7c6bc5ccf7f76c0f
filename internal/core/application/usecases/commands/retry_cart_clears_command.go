package commands

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

const DefaultRetryBatchSize = 50

var (
	ErrRetryCartClearsCommandIsNotConstructed = errors.New(
		"RetryCartClearsCommand must be created via NewRetryCartClearsCommand constructor",
	)
)

// RetryCartClearsCommand drains up to BatchSize pending cart clears.
type RetryCartClearsCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

func NewRetryCartClearsCommand(batchSize int) (RetryCartClearsCommand, error) {
	if batchSize <= 0 {
		return RetryCartClearsCommand{}, errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, "+inf")
	}

	return RetryCartClearsCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RetryCartClearsCommand) Validate() error {
	return c.guard.Validate(ErrRetryCartClearsCommandIsNotConstructed)
}

func (c RetryCartClearsCommand) BatchSize() int {
	return c.batchSize
}

// RetryCartClearsResult summarises one retry pass. Failed tasks stay pending,
// Parked ones have used up their attempts.
type RetryCartClearsResult struct {
	Attempted int
	Cleared   int
	Failed    int
	Parked    int
}
