package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/pgtest"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite verifies order persistence against PostgreSQL.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background(), clock.NewSystem().Now)
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = orderrepo.NewGormOrderRepository(suite.database.DB)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

// repositoryAt returns a repository whose clock is frozen at t.
func (suite *OrderRepositoryIntegrationTestSuite) repositoryAt(t time.Time) *orderrepo.GormOrderRepository {
	db := suite.database.DB.Session(&gorm.Session{NowFunc: clock.NewFixed(t).Now})
	return orderrepo.NewGormOrderRepository(db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ThenGet_ReturnsSameOrder() {
	ctx := context.Background()
	buyerID := kernel.NewUUID()
	testOrder := pgtest.NewOrder(buyerID, "118.25")

	saved, err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)
	suite.False(saved.CreatedAt().IsZero())

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(retrieved.ID().IsEqual(testOrder.ID()))
	suite.True(retrieved.Buyer().IsEqual(buyerID))
	suite.Equal(testOrder.LineItems(), retrieved.LineItems())
	suite.True(retrieved.ShippingAddress().IsEqual(testOrder.ShippingAddress()))
	suite.True(retrieved.Total().IsEqual(kernel.MustMoney("118.25")))
	suite.True(retrieved.Subtotal().IsEqual(testOrder.Subtotal()))
	suite.Equal(order.Delivered, retrieved.Status())
	suite.Equal(testOrder.ConfirmationCode(), retrieved.ConfirmationCode())
	suite.True(saved.CreatedAt().Equal(retrieved.CreatedAt()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateID_ReturnsConflict() {
	ctx := context.Background()
	testOrder := pgtest.NewOrder(kernel.NewUUID(), "1")

	_, err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	_, err = suite.repository.Add(ctx, testOrder)
	suite.Require().ErrorIs(err, errs.ErrObjectConflict)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NotConstructedOrder_ReturnsError() {
	_, err := suite.repository.Add(context.Background(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertOrderCount(0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	retrieved, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(retrieved)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_WritesPatchAndKeepsImmutableFields() {
	ctx := context.Background()
	buyerID := kernel.NewUUID()
	saved, err := suite.repository.Add(ctx, pgtest.NewOrder(buyerID, "50"))
	suite.Require().NoError(err)

	status := order.Cancelled
	zero := kernel.MustMoney("0")
	items := []kernel.UUID{kernel.NewUUID()}
	suite.Require().NoError(saved.Apply(order.Patch{Status: &status, Total: &zero, LineItems: &items}))
	suite.Require().NoError(suite.repository.Update(ctx, saved))

	retrieved, err := suite.repository.Get(ctx, saved.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, retrieved.Status())
	suite.True(retrieved.Total().IsEqual(zero), "zero amounts must be written")
	suite.True(retrieved.Subtotal().IsEqual(kernel.MustMoney("50")))
	suite.Equal(items, retrieved.LineItems())
	suite.True(retrieved.Buyer().IsEqual(buyerID))
	suite.True(retrieved.CreatedAt().Equal(saved.CreatedAt()))
	suite.Equal(saved.ConfirmationCode(), retrieved.ConfirmationCode())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFound() {
	err := suite.repository.Update(context.Background(), pgtest.NewOrder(kernel.NewUUID(), "1"))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_ReturnsDeletedOrder() {
	ctx := context.Background()
	saved, err := suite.repository.Add(ctx, pgtest.NewOrder(kernel.NewUUID(), "12.34"))
	suite.Require().NoError(err)

	deleted, err := suite.repository.Delete(ctx, saved.ID())
	suite.Require().NoError(err)
	suite.True(deleted.ID().IsEqual(saved.ID()))
	suite.True(deleted.Total().IsEqual(kernel.MustMoney("12.34")))
	suite.assertOrderCount(0)

	_, err = suite.repository.Delete(ctx, saved.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFindByBuyer_ReturnsInsertionOrder() {
	ctx := context.Background()
	buyerID := kernel.NewUUID()
	first, err := suite.repository.Add(ctx, pgtest.NewOrder(buyerID, "1"))
	suite.Require().NoError(err)
	_, err = suite.repository.Add(ctx, pgtest.NewOrder(kernel.NewUUID(), "2"))
	suite.Require().NoError(err)
	third, err := suite.repository.Add(ctx, pgtest.NewOrder(buyerID, "3"))
	suite.Require().NoError(err)

	orders, err := suite.repository.FindByBuyer(ctx, buyerID)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.True(orders[0].ID().IsEqual(first.ID()))
	suite.True(orders[1].ID().IsEqual(third.ID()))

	none, err := suite.repository.FindByBuyer(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.NotNil(none)
	suite.Empty(none)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFindByStatus_ExactMatch() {
	ctx := context.Background()
	delivered, err := suite.repository.Add(ctx, pgtest.NewOrder(kernel.NewUUID(), "1"))
	suite.Require().NoError(err)
	shipped, err := suite.repository.Add(ctx, pgtest.NewOrder(kernel.NewUUID(), "2"))
	suite.Require().NoError(err)
	status := order.Shipped
	suite.Require().NoError(shipped.Apply(order.Patch{Status: &status}))
	suite.Require().NoError(suite.repository.Update(ctx, shipped))

	got, err := suite.repository.FindByStatus(ctx, "Delivered")
	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.True(got[0].ID().IsEqual(delivered.ID()))

	got, err = suite.repository.FindByStatus(ctx, "delivered")
	suite.Require().NoError(err)
	suite.Empty(got)

	all, err := suite.repository.FindAll(ctx)
	suite.Require().NoError(err)
	suite.Len(all, 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UsesDatabaseClockForCreatedAt() {
	ctx := context.Background()
	at := time.Date(2024, 2, 29, 23, 30, 0, 0, time.UTC)

	saved, err := suite.repositoryAt(at).Add(ctx, pgtest.NewOrder(kernel.NewUUID(), "5"))
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, saved.ID())
	suite.Require().NoError(err)
	suite.True(at.Equal(retrieved.CreatedAt()))
	suite.Equal("2024-02-29", retrieved.CreatedAt().Format(order.DateLayout))
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.database.DB.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
