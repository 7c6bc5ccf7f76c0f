package http_test

import (
	"context"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockOrderCreator struct{ mock.Mock }

func (m *MockOrderCreator) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockOrderUpdater struct{ mock.Mock }

func (m *MockOrderUpdater) Handle(ctx context.Context, cmd commands.UpdateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockOrderRemover struct{ mock.Mock }

func (m *MockOrderRemover) Handle(ctx context.Context, cmd commands.RemoveOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockCartClearer struct{ mock.Mock }

func (m *MockCartClearer) Handle(ctx context.Context, cmd commands.ClearUserCartCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockCartReader struct{ mock.Mock }

func (m *MockCartReader) Handle(ctx context.Context, query queries.GetUserCartQuery) ([]cart.Item, error) {
	args := m.Called(ctx, query)
	items, _ := args.Get(0).([]cart.Item)
	return items, args.Error(1)
}

type MockOrderGetter struct{ mock.Mock }

func (m *MockOrderGetter) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderDetails, error) {
	args := m.Called(ctx, query)
	details, _ := args.Get(0).(queries.OrderDetails)
	return details, args.Error(1)
}

type MockOrderLister struct{ mock.Mock }

func (m *MockOrderLister) Handle(ctx context.Context, query queries.ListOrdersQuery) ([]*order.Order, error) {
	args := m.Called(ctx, query)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockOrderStatusFinder struct{ mock.Mock }

func (m *MockOrderStatusFinder) Handle(
	ctx context.Context,
	query queries.FindOrdersByStatusQuery,
) ([]*order.Order, error) {
	args := m.Called(ctx, query)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockUserOrderLister struct{ mock.Mock }

func (m *MockUserOrderLister) Handle(ctx context.Context, query queries.ListUserOrdersQuery) ([]*order.Order, error) {
	args := m.Called(ctx, query)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockDailySalesReporter struct{ mock.Mock }

func (m *MockDailySalesReporter) Handle(
	ctx context.Context,
	query queries.GetDailySalesQuery,
) ([]order.DailySales, error) {
	args := m.Called(ctx, query)
	sales, _ := args.Get(0).([]order.DailySales)
	return sales, args.Error(1)
}
