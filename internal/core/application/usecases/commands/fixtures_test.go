package commands_test

import (
	"log/slog"
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

// checkoutTime is the creation time of every order built by testOrder.
var checkoutTime = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testAddress(t *testing.T) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress("500 Terry Francois St", "", "San Francisco", "CA", "94158")
	require.NoError(t, err)
	return addr
}

func testAmounts() order.Amounts {
	return order.Amounts{
		Subtotal:     kernel.MustMoney("40.00"),
		ShippingCost: kernel.MustMoney("5.00"),
		Tax:          kernel.MustMoney("3.60"),
		Total:        kernel.MustMoney("48.60"),
	}
}

func testUser(t *testing.T, id kernel.UUID) *user.User {
	t.Helper()
	u, err := user.RestoreUser(id, "Grace", "grace@example.com")
	require.NoError(t, err)
	return u
}

func testOrder(t *testing.T, buyerID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		buyerID,
		[]kernel.UUID{kernel.NewUUID()},
		testAddress(t),
		testAmounts(),
		order.Delivered,
		order.ConfirmationCode(31337),
		checkoutTime,
	)
	require.NoError(t, err)
	return o
}
