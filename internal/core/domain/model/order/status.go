package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status is the order status as stored and exchanged on the wire.
// Values are matched exactly, case included.
type Status string

const (
	Pending   Status = "Pending"
	Shipped   Status = "Shipped"
	Delivered Status = "Delivered"
	Cancelled Status = "Cancelled"
)

// InitialStatus is assigned to every newly created order.
const InitialStatus = Delivered

// Statuses lists every valid status.
func Statuses() []Status {
	return []Status{Pending, Shipped, Delivered, Cancelled}
}

// StatusFromString converts a caller supplied value into a Status.
// No normalisation is applied: "delivered" is not Delivered.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that s is one of the known statuses.
func (s Status) Validate() error {
	for _, known := range Statuses() {
		if s == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
}

func (s Status) String() string {
	return string(s)
}
