// Package user holds the buyer record owned by the identity service.
// Orders only keep a reference to it.
package user

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var ErrUserIsNotConstructed = errors.New("User must be created via RestoreUser")

// User is a read-only view of an account. The order core needs its existence and
// identifier; name and email are carried for read expansion.
type User struct {
	id    kernel.UUID
	name  string
	email string

	isConstructed bool
}

// RestoreUser builds a User from a stored record.
func RestoreUser(id kernel.UUID, name, email string) (*User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(email) == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	return &User{
		id:            id,
		name:          name,
		email:         email,
		isConstructed: true,
	}, nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}
