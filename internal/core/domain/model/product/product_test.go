package product_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestoreProduct(t *testing.T) {
	id := kernel.NewUUID()

	p, err := product.RestoreProduct(id, "Kettle", kernel.MustMoney("39.90"))
	require.NoError(t, err)
	require.NoError(t, p.Validate())
	assert.True(t, p.ID().IsEqual(id))
	assert.Equal(t, "Kettle", p.Name())
	assert.Equal(t, "39.9", p.Price().String())

	_, err = product.RestoreProduct(kernel.UUID{}, "Kettle", kernel.MustMoney("1"))
	require.Error(t, err)

	var zero product.Product
	require.ErrorIs(t, zero.Validate(), product.ErrProductIsNotConstructed)
}
