package commands

import (
	"context"

	"storefront/internal/core/ports"
)

type ClearUserCartCommandHandler struct {
	carts ports.CartRepository
}

func NewClearUserCartCommandHandler(carts ports.CartRepository) ClearUserCartCommandHandler {
	return ClearUserCartCommandHandler{carts: carts}
}

// Handle is idempotent: clearing an already empty cart succeeds.
func (h *ClearUserCartCommandHandler) Handle(ctx context.Context, cmd ClearUserCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.carts.ClearUserCart(ctx, cmd.UserID())
}
