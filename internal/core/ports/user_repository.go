package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
)

// UserRepository resolves buyer references.
type UserRepository interface {
	// Get returns errs.ErrObjectNotFound when no user has this identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
}
