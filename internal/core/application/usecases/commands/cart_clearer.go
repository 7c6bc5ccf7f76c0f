package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/ports"
)

// clearCart empties the part of the cart that was checked out by task's order and
// records the outcome. Items added after the order was placed are kept. A failed
// clear leaves the task pending with its attempt count bumped, or parks it once the
// attempts are used up.
func clearCart(
	ctx context.Context,
	carts ports.CartRepository,
	tasks ports.CartClearTaskRepository,
	task *cart.ClearTask,
) error {
	if err := carts.ClearUserCartAsOf(ctx, task.UserID(), task.PlacedAt()); err != nil {
		task.Fail(err)
		if markErr := tasks.MarkFailed(ctx, task); markErr != nil {
			return errors.Join(err, markErr)
		}
		return err
	}

	task.Complete()
	return tasks.MarkDone(ctx, task.ID())
}
