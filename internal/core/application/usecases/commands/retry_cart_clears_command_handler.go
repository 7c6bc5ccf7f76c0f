package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/ports"
)

// RetryCartClearsCommandHandler clears the carts of orders whose post-commit clear
// failed. Each task is handled independently; one failure does not stop the pass.
// A task that fails cart.MaxClearAttempts times is parked and left for an operator.
type RetryCartClearsCommandHandler struct {
	carts  ports.CartRepository
	tasks  ports.CartClearTaskRepository
	logger *slog.Logger
}

func NewRetryCartClearsCommandHandler(
	carts ports.CartRepository,
	tasks ports.CartClearTaskRepository,
	logger *slog.Logger,
) RetryCartClearsCommandHandler {
	return RetryCartClearsCommandHandler{
		carts:  carts,
		tasks:  tasks,
		logger: logger.With("component", "retry_cart_clears_handler"),
	}
}

// Handle returns an error only when the pending tasks cannot be listed.
func (h *RetryCartClearsCommandHandler) Handle(
	ctx context.Context,
	cmd RetryCartClearsCommand,
) (RetryCartClearsResult, error) {
	var result RetryCartClearsResult
	if err := cmd.Validate(); err != nil {
		return result, err
	}

	pending, err := h.tasks.GetPending(ctx, cmd.BatchSize())
	if err != nil {
		return result, err
	}

	for _, task := range pending {
		if ctx.Err() != nil {
			break
		}

		result.Attempted++
		if err = clearCart(ctx, h.carts, h.tasks, task); err != nil {
			if task.IsParked() {
				result.Parked++
				h.logger.ErrorContext(ctx, "cart clear parked after too many attempts",
					"task_id", task.ID().String(),
					"order_id", task.OrderID().String(),
					"user_id", task.UserID().String(),
					"attempts", task.Attempts(),
					"error", err,
				)
				continue
			}
			result.Failed++
			h.logger.WarnContext(ctx, "cart clear retry failed",
				"task_id", task.ID().String(),
				"order_id", task.OrderID().String(),
				"attempts", task.Attempts(),
				"error", err,
			)
			continue
		}
		result.Cleared++
	}

	return result, nil
}
