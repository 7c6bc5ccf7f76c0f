package kernel

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly initialized Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress constructor")

// Address is the shipping address value object. An order holds its own copy;
// nothing else shares or mutates it.
//
// Street, city, state and postal code are required; apartment may be empty.
//
// Example:
//
//	addr, err := kernel.NewAddress("221B Baker Street", "", "London", "Greater London", "NW1 6XE")
//	if err != nil {
//	    // errors.Is(err, errs.ErrValueIsRequired)
//	}
type Address struct { //nolint:recvcheck //using for validation
	street     string
	apartment  string
	city       string
	state      string
	postalCode string
	guard      guard.ConstructorGuard
}

// NewAddress creates an Address, trimming surrounding whitespace from every field.
// All missing required fields are reported together.
func NewAddress(street, apartment, city, state, postalCode string) (Address, error) {
	addr := Address{
		apartment: strings.TrimSpace(apartment),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setRequired(&addr.street, "street", street),
		setRequired(&addr.city, "city", city),
		setRequired(&addr.state, "state", state),
		setRequired(&addr.postalCode, "postalCode", postalCode),
	); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate returns ErrAddressIsNotConstructed for the zero value.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) Street() string {
	return a.street
}

func (a Address) Apartment() string {
	return a.apartment
}

func (a Address) City() string {
	return a.city
}

func (a Address) State() string {
	return a.state
}

func (a Address) PostalCode() string {
	return a.postalCode
}

// IsEqual compares two addresses field by field.
func (a Address) IsEqual(other Address) bool {
	return a == other
}

// String renders the address on one line, for logs.
func (a Address) String() string {
	street := a.street
	if a.apartment != "" {
		street = fmt.Sprintf("%s, %s", street, a.apartment)
	}
	return fmt.Sprintf("%s, %s, %s %s", street, a.city, a.state, a.postalCode)
}

func setRequired(dst *string, paramName, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	*dst = value
	return nil
}
