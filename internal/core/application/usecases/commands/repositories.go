// Package commands holds the operations that change orders and carts.
// Every command is built by a constructor that validates its input; its handler
// opens a unit of work when more than one write must commit together.
package commands

import (
	"context"

	"storefront/internal/core/ports"
)

type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	CartClearTaskRepoFactory interface {
		CartClearTaskRepository() ports.CartClearTaskRepository
	}

	// OrderUoW is enough for update and remove, which touch a single order row.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CheckoutUoW writes an order and its pending cart clear atomically.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   saved, err := uow.OrderRepository().Add(ctx, o)
	//   err = uow.CartClearTaskRepository().Add(ctx, task)
	//
	//   err = uow.Commit(ctx)
	CheckoutUoW interface {
		TxManager
		OrderRepoFactory
		CartClearTaskRepoFactory
	}

	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}
)
