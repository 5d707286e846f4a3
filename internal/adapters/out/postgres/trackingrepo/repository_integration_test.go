package trackingrepo_test

import (
	"context"
	"testing"
	"time"

	"ordertrack/internal/adapters/out/postgres/trackingrepo"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/tracking"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// TrackingRepositoryIntegrationTestSuite provides integration tests for the
// tracking ledger using PostgreSQL containers.
type TrackingRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *trackingrepo.GormTrackingRepository
	tracker    *MockAggregateTracker
}

func (suite *TrackingRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&trackingrepo.EntryDTO{}))
}

func (suite *TrackingRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE tracking_entries").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = trackingrepo.NewGormTrackingRepository(suite.db, suite.tracker)
}

func (suite *TrackingRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TrackingRepositoryIntegrationTestSuite) TestAdd_ValidEntry_Success() {
	ctx := context.Background()

	entry, err := tracking.NewEntry(kernel.NewUUID(), order.Uploaded, "Order uploaded", "")
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", entry.ID(), entry).Once()

	suite.Require().NoError(suite.repository.Add(ctx, entry))

	var count int64
	suite.Require().NoError(suite.db.Model(&trackingrepo.EntryDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TrackingRepositoryIntegrationTestSuite) TestGetByOrder_ReturnsMostRecentFirst() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	base := time.Now().UTC().Truncate(time.Second)
	statuses := []order.Status{order.Uploaded, order.Processing, order.Validated}
	for i, status := range statuses {
		entry, err := tracking.RestoreEntry(
			kernel.NewUUID(), orderID, status, status.String(), "", base.Add(time.Duration(i)*time.Second),
		)
		suite.Require().NoError(err)

		suite.tracker.On("TrackAggregate", entry.ID(), entry).Once()
		suite.Require().NoError(suite.repository.Add(ctx, entry))
	}

	entries, err := suite.repository.GetByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 3)

	suite.Equal(order.Validated, entries[0].Status())
	suite.Equal(order.Processing, entries[1].Status())
	suite.Equal(order.Uploaded, entries[2].Status())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TrackingRepositoryIntegrationTestSuite) TestGetByOrder_FiltersByOrder() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	otherOrderID := kernel.NewUUID()

	for _, id := range []kernel.UUID{orderID, otherOrderID} {
		entry, err := tracking.NewEntry(id, order.Uploaded, "Order uploaded", "")
		suite.Require().NoError(err)

		suite.tracker.On("TrackAggregate", entry.ID(), entry).Once()
		suite.Require().NoError(suite.repository.Add(ctx, entry))
	}

	entries, err := suite.repository.GetByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Equal(orderID, entries[0].OrderID())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TrackingRepositoryIntegrationTestSuite) TestGetByOrder_NoEntries_ReturnsEmptySlice() {
	ctx := context.Background()

	entries, err := suite.repository.GetByOrder(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Empty(entries)
	suite.tracker.AssertExpectations(suite.T())
}

func TestTrackingRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TrackingRepositoryIntegrationTestSuite))
}
