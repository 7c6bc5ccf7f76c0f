package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
)

// CartRepository is the cart store.
type CartRepository interface {
	// ClearUserCart removes every item from the user's cart. Clearing an empty or
	// unknown cart succeeds.
	ClearUserCart(ctx context.Context, userID kernel.UUID) error

	// ClearUserCartAsOf removes the items that were in the user's cart at asOf.
	// Items added after asOf stay. Clearing an empty or unknown cart succeeds.
	ClearUserCartAsOf(ctx context.Context, userID kernel.UUID, asOf time.Time) error

	// GetUserCart lists the items currently in the user's cart.
	GetUserCart(ctx context.Context, userID kernel.UUID) ([]cart.Item, error)
}

// CartClearTaskRepository stores pending cart clears that must survive a failed
// clear call after an order commit.
type CartClearTaskRepository interface {
	Add(ctx context.Context, task *cart.ClearTask) error

	// GetPending returns at most limit pending tasks, oldest first.
	GetPending(ctx context.Context, limit int) ([]*cart.ClearTask, error)

	// MarkDone completes the task. Returns errs.ErrObjectNotFound for an unknown id.
	MarkDone(ctx context.Context, id kernel.UUID) error

	// MarkFailed stores the attempt count, last error and status of a still pending
	// task, which parks it once it has run out of attempts.
	MarkFailed(ctx context.Context, task *cart.ClearTask) error
}
