package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// CreateOrderCommandHandler places an order for an existing buyer and empties the
// buyer's cart.
//
// The order and a pending cart clear task are committed together. The cart is
// cleared after the commit, up to the order's creation time; if that fails the
// order still stands and the task is left for RetryCartClearsCommandHandler.
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	users      ports.UserRepository
	carts      ports.CartRepository
	tasks      ports.CartClearTaskRepository
	logger     *slog.Logger
}

func NewCreateOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	users ports.UserRepository,
	carts ports.CartRepository,
	tasks ports.CartClearTaskRepository,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		users:      users,
		carts:      carts,
		tasks:      tasks,
		logger:     logger.With("component", "create_order_handler"),
	}
}

// Handle returns the persisted order, including its creation time.
// An unknown buyer yields errs.ErrObjectNotFound and nothing is written.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	buyer, err := h.users.Get(ctx, cmd.BuyerID())
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		buyer.ID(),
		cmd.LineItemIDs(),
		cmd.ShippingAddress(),
		cmd.Amounts(),
		order.NewRandomConfirmationCode(),
	)
	if err != nil {
		return nil, err
	}

	saved, task, err := h.persist(ctx, newOrder)
	if err != nil {
		return nil, err
	}

	if err = clearCart(ctx, h.carts, h.tasks, task); err != nil {
		h.logger.WarnContext(ctx, "cart clear failed, left for retry",
			"order_id", saved.ID().String(),
			"user_id", buyer.ID().String(),
			"error", err,
		)
	}

	return saved, nil
}

// persist stores the order and a pending clear of the cart as it stood when the
// order was placed.
func (h *CreateOrderCommandHandler) persist(
	ctx context.Context,
	newOrder *order.Order,
) (*order.Order, *cart.ClearTask, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	saved, err := uow.OrderRepository().Add(ctx, newOrder)
	if err != nil {
		return nil, nil, err
	}

	task, err := cart.NewClearTask(newOrder.Buyer(), newOrder.ID(), saved.CreatedAt())
	if err != nil {
		return nil, nil, err
	}

	if err = uow.CartClearTaskRepository().Add(ctx, task); err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	return saved, task, nil
}
