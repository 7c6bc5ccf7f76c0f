package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	buyerID := kernel.NewUUID()
	productID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(buyerID.String(), []string{productID.String()}, testAddress(t), testAmounts())

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, cmd.BuyerID().IsEqual(buyerID))
	require.Len(t, cmd.LineItemIDs(), 1)
	assert.True(t, cmd.LineItemIDs()[0].IsEqual(productID))
	assert.True(t, cmd.Amounts().Total.IsEqual(kernel.MustMoney("48.6")))
}

func TestNewCreateOrderCommand_MalformedBuyerID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("not-a-uuid", []string{kernel.NewUUID().String()}, testAddress(t), testAmounts())

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "buyerId")
}

func TestNewCreateOrderCommand_EmptyLineItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID().String(), nil, testAddress(t), testAmounts())

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.True(t, errs.IsInvalidArgument(err))
}

func TestNewCreateOrderCommand_MalformedLineItem(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID().String(),
		[]string{kernel.NewUUID().String(), "42"},
		testAddress(t),
		testAmounts(),
	)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "lineItemIds[1]")
}

func TestNewCreateOrderCommand_MissingAddress(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID().String(),
		[]string{kernel.NewUUID().String()},
		kernel.Address{},
		testAmounts(),
	)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "shippingAddress")
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
