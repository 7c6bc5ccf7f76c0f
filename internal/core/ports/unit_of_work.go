package ports

import (
	"context"
)

// UnitOfWorkFactory hands out one UnitOfWork per business operation.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork groups the writes of a checkout into one transaction.
// Repositories obtained after Begin share that transaction until Commit or Rollback.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	// Commit fails when no transaction is active.
	Commit(ctx context.Context) error
	// Rollback fails when no transaction is active, so a deferred call after Commit is harmless.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	CartClearTaskRepository() CartClearTaskRepository
}
