package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence against a
// real PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
	tenantID   kernel.UUID
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
	suite.tenantID = kernel.NewUUID()
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newItem(name string, status order.ItemStatus) *order.Item {
	item, err := order.NewItem(kernel.NewUUID(), name, 1,
		decimal.RequireFromString("120.00"), "", status)
	suite.Require().NoError(err)
	return item
}

func (suite *OrderRepositoryIntegrationTestSuite) newTakeaway(status order.Status, items ...*order.Item) *order.Order {
	if len(items) == 0 {
		items = []*order.Item{suite.newItem("Masala Dosa", order.ItemStatusPending)}
	}
	money, err := kernel.NewMoney(
		decimal.RequireFromString("120.00"), decimal.Zero,
		decimal.RequireFromString("6.00"), decimal.RequireFromString("126.00"))
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), suite.tenantID,
		order.ChannelQuickService, order.TypeTakeaway, nil, nil, items, status, money)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	aggregate := suite.newTakeaway(order.StatusSaved)
	suite.Require().NoError(aggregate.AssignToken(4))

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, suite.tenantID, aggregate.ID())
	suite.Require().NoError(err)

	suite.True(loaded.IsEqual(aggregate))
	suite.Equal(order.StatusSaved, loaded.Status())
	suite.Equal(order.TypeTakeaway, loaded.Type())
	suite.Require().NotNil(loaded.Token())
	suite.Equal(4, *loaded.Token())
	suite.Require().Len(loaded.Items(), 1)
	// quick service fires pending items on creation
	suite.Equal(order.ItemStatusPreparing, loaded.Items()[0].Status())
	suite.True(loaded.Money().Total().Equal(decimal.RequireFromString("126.00")))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, suite.tenantID, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_WrongTenant() {
	ctx := context.Background()
	aggregate := suite.newTakeaway(order.StatusSaved)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	_, err := suite.repository.Get(ctx, kernel.NewUUID(), aggregate.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ReplacesItems() {
	ctx := context.Background()
	aggregate := suite.newTakeaway(order.StatusKitchenTicketed)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	// complete the existing line and add a new one
	existing := aggregate.Items()[0]
	completed, err := order.RestoreItem(existing.ID(), existing.Name(), existing.Quantity(),
		existing.UnitPrice(), existing.Notes(), order.ItemStatusCompleted)
	suite.Require().NoError(err)
	dessert := suite.newItem("Kheer", order.ItemStatusPending)

	suite.Require().NoError(aggregate.ReplaceItems([]*order.Item{completed, dessert}))
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, suite.tenantID, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().Len(loaded.Items(), 2)
	suite.Equal(order.ItemStatusCompleted, loaded.Items()[0].Status())
	suite.Equal("Kheer", loaded.Items()[1].Name())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingOrder() {
	ctx := context.Background()
	aggregate := suite.newTakeaway(order.StatusSaved)

	err := suite.repository.Update(ctx, aggregate)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllKitchenVisible() {
	ctx := context.Background()

	ticketed := suite.newTakeaway(order.StatusKitchenTicketed)
	suite.Require().NoError(suite.repository.Add(ctx, ticketed))

	saved := suite.newTakeaway(order.StatusSaved)
	suite.Require().NoError(suite.repository.Add(ctx, saved))

	// paid with a preparing item stays on the kitchen view
	paidPreparing := suite.newTakeaway(order.StatusKitchenTicketed)
	suite.Require().NoError(suite.repository.Add(ctx, paidPreparing))
	suite.Require().NoError(paidPreparing.ChangeStatus(order.StatusPaid))
	suite.Require().NoError(suite.repository.Update(ctx, paidPreparing))

	// paid with everything completed drops off
	paidDone := suite.newTakeaway(order.StatusKitchenTicketed)
	suite.Require().NoError(suite.repository.Add(ctx, paidDone))
	line := paidDone.Items()[0]
	finished, err := order.RestoreItem(line.ID(), line.Name(), line.Quantity(),
		line.UnitPrice(), line.Notes(), order.ItemStatusCompleted)
	suite.Require().NoError(err)
	suite.Require().NoError(paidDone.ReplaceItems([]*order.Item{finished}))
	suite.Require().NoError(paidDone.ChangeStatus(order.StatusPaid))
	suite.Require().NoError(suite.repository.Update(ctx, paidDone))

	visible, err := suite.repository.GetAllKitchenVisible(ctx, suite.tenantID)
	suite.Require().NoError(err)
	suite.Require().Len(visible, 2)

	ids := map[string]bool{}
	for _, o := range visible {
		ids[o.ID().String()] = true
	}
	suite.True(ids[ticketed.ID().String()])
	suite.True(ids[paidPreparing.ID().String()])
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
