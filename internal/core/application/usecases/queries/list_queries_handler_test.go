package queries_test

import (
	"errors"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func knownUser(t *testing.T, id kernel.UUID) *user.User {
	t.Helper()
	u, err := user.RestoreUser(id, "Ada", "ada@example.com")
	require.NoError(t, err)
	return u
}

func TestListUserOrdersQueryHandler_Handle(t *testing.T) {
	t.Run("returns the buyer's orders in repository order", func(t *testing.T) {
		ctx := t.Context()
		buyerID := kernel.NewUUID()
		first := makeOrder(t, buyerID, order.Delivered, "1", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		second := makeOrder(t, buyerID, order.Pending, "2", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))

		users := new(MockUserRepository)
		orders := new(MockOrderRepository)
		mock.InOrder(
			users.On("Get", ctx, buyerID).Return(knownUser(t, buyerID), nil).Once(),
			orders.On("FindByBuyer", ctx, buyerID).Return([]*order.Order{first, second}, nil).Once(),
		)

		got, err := queries.NewListUserOrdersQueryHandler(users, orders).
			Handle(ctx, queries.NewListUserOrdersQuery(buyerID.String()))

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Same(t, first, got[0])
		assert.Same(t, second, got[1])
		users.AssertExpectations(t)
		orders.AssertExpectations(t)
	})

	t.Run("malformed user id yields empty list without lookup", func(t *testing.T) {
		users := new(MockUserRepository)
		orders := new(MockOrderRepository)

		got, err := queries.NewListUserOrdersQueryHandler(users, orders).
			Handle(t.Context(), queries.NewListUserOrdersQuery("nope"))

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
		users.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
		orders.AssertNotCalled(t, "FindByBuyer", mock.Anything, mock.Anything)
	})

	t.Run("unresolved user yields empty list even when orders reference it", func(t *testing.T) {
		ctx := t.Context()
		userID := kernel.NewUUID()
		users := new(MockUserRepository)
		orders := new(MockOrderRepository)
		users.On("Get", ctx, userID).Return(nil, errs.NewObjectNotFoundError("userId", userID.String())).Once()
		orders.On("FindByBuyer", ctx, userID).
			Return([]*order.Order{makeOrder(t, userID, order.Delivered, "5", time.Now().UTC())}, nil).Maybe()

		got, err := queries.NewListUserOrdersQueryHandler(users, orders).
			Handle(ctx, queries.NewListUserOrdersQuery(userID.String()))

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
		orders.AssertNotCalled(t, "FindByBuyer", mock.Anything, mock.Anything)
	})

	t.Run("known user without orders yields empty list", func(t *testing.T) {
		ctx := t.Context()
		userID := kernel.NewUUID()
		users := new(MockUserRepository)
		orders := new(MockOrderRepository)
		users.On("Get", ctx, userID).Return(knownUser(t, userID), nil).Once()
		orders.On("FindByBuyer", ctx, userID).Return(nil, nil).Once()

		got, err := queries.NewListUserOrdersQueryHandler(users, orders).
			Handle(ctx, queries.NewListUserOrdersQuery(userID.String()))

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("user lookup error is returned", func(t *testing.T) {
		ctx := t.Context()
		userID := kernel.NewUUID()
		users := new(MockUserRepository)
		orders := new(MockOrderRepository)
		users.On("Get", ctx, userID).Return(nil, errors.New("connection reset")).Once()

		_, err := queries.NewListUserOrdersQueryHandler(users, orders).
			Handle(ctx, queries.NewListUserOrdersQuery(userID.String()))

		require.EqualError(t, err, "connection reset")
		orders.AssertNotCalled(t, "FindByBuyer", mock.Anything, mock.Anything)
	})

	t.Run("storage error is returned", func(t *testing.T) {
		ctx := t.Context()
		userID := kernel.NewUUID()
		users := new(MockUserRepository)
		orders := new(MockOrderRepository)
		users.On("Get", ctx, userID).Return(knownUser(t, userID), nil).Once()
		orders.On("FindByBuyer", ctx, userID).Return(nil, errors.New("timeout")).Once()

		_, err := queries.NewListUserOrdersQueryHandler(users, orders).
			Handle(ctx, queries.NewListUserOrdersQuery(userID.String()))

		require.EqualError(t, err, "timeout")
	})
}

func TestFindOrdersByStatusQueryHandler_Handle(t *testing.T) {
	t.Run("passes the status through unchanged", func(t *testing.T) {
		ctx := t.Context()
		shipped := makeOrder(t, kernel.NewUUID(), order.Shipped, "3", time.Now().UTC())
		orders := new(MockOrderRepository)
		orders.On("FindByStatus", ctx, "Shipped").Return([]*order.Order{shipped}, nil).Once()

		got, err := queries.NewFindOrdersByStatusQueryHandler(orders).Handle(ctx, queries.NewFindOrdersByStatusQuery("Shipped"))

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, order.Shipped, got[0].Status())
	})

	t.Run("unknown status is not an error", func(t *testing.T) {
		ctx := t.Context()
		orders := new(MockOrderRepository)
		orders.On("FindByStatus", ctx, "shipped").Return([]*order.Order{}, nil).Once()

		got, err := queries.NewFindOrdersByStatusQueryHandler(orders).Handle(ctx, queries.NewFindOrdersByStatusQuery("shipped"))

		require.NoError(t, err)
		assert.Empty(t, got)
		orders.AssertExpectations(t)
	})
}

func TestListOrdersQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	all := []*order.Order{
		makeOrder(t, kernel.NewUUID(), order.Pending, "1", time.Now().UTC()),
		makeOrder(t, kernel.NewUUID(), order.Cancelled, "2", time.Now().UTC()),
	}
	orders := new(MockOrderRepository)
	orders.On("FindAll", ctx).Return(all, nil).Once()

	got, err := queries.NewListOrdersQueryHandler(orders).Handle(ctx, queries.NewListOrdersQuery())

	require.NoError(t, err)
	assert.Equal(t, all, got)

	_, err = queries.NewListOrdersQueryHandler(orders).Handle(ctx, queries.ListOrdersQuery{})
	require.ErrorIs(t, err, queries.ErrListOrdersQueryIsNotConstructed)
}
