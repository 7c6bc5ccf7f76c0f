package queries_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/user"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) (*order.Order, error) {
	args := m.Called(ctx, o)
	saved, _ := args.Get(0).(*order.Order)
	return saved, args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) FindByBuyer(ctx context.Context, buyerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, buyerID)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) FindByStatus(ctx context.Context, status string) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	args := m.Called(ctx, ids)
	products, _ := args.Get(0).([]*product.Product)
	return products, args.Error(1)
}

func makeOrder(t *testing.T, buyerID kernel.UUID, status order.Status, total string, createdAt time.Time) *order.Order {
	t.Helper()
	addr, err := kernel.NewAddress("10 Downing St", "", "London", "LDN", "SW1A 2AA")
	require.NoError(t, err)
	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		buyerID,
		[]kernel.UUID{kernel.NewUUID(), kernel.NewUUID()},
		addr,
		order.Amounts{Subtotal: kernel.MustMoney(total), Total: kernel.MustMoney(total)},
		status,
		order.ConfirmationCode(55555),
		createdAt,
	)
	require.NoError(t, err)
	return o
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) ClearUserCart(ctx context.Context, userID kernel.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockCartRepository) ClearUserCartAsOf(ctx context.Context, userID kernel.UUID, asOf time.Time) error {
	args := m.Called(ctx, userID, asOf)
	return args.Error(0)
}

func (m *MockCartRepository) GetUserCart(ctx context.Context, userID kernel.UUID) ([]cart.Item, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]cart.Item)
	return items, args.Error(1)
}
