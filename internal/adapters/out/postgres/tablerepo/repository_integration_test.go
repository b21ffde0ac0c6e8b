package tablerepo_test

import (
	"context"
	"testing"
	"time"

	"tableside/internal/adapters/out/postgres/tablerepo"
	"tableside/internal/core/domain/model/table"
	"tableside/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate any) {
	m.Called(id, aggregate)
}

// TableRepositoryIntegrationTestSuite provides integration tests for
// GormTableRepository using a PostgreSQL container.
type TableRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *tablerepo.GormTableRepository
	tracker    *MockAggregateTracker
}

func (suite *TableRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&tablerepo.TableDTO{}))
}

func (suite *TableRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE tables").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = tablerepo.NewGormTableRepository(suite.db, suite.tracker)
}

func (suite *TableRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TableRepositoryIntegrationTestSuite) TestAdd_ValidTable_Persists() {
	ctx := context.Background()

	newTable, err := table.NewTable(5, "patio")
	suite.Require().NoError(err)
	suite.tracker.On("TrackAggregate", "5", newTable).Once()

	suite.Require().NoError(suite.repository.Add(ctx, newTable))

	retrieved, err := suite.repository.Get(ctx, 5)
	suite.Require().NoError(err)
	suite.Equal(5, retrieved.Number())
	suite.Equal("patio", retrieved.Name())
	suite.Equal(table.Free, retrieved.Status())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TableRepositoryIntegrationTestSuite) TestGet_NonExistentTable_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, 404)

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *TableRepositoryIntegrationTestSuite) TestUpdate_OccupancyChange_Persists() {
	ctx := context.Background()

	newTable, err := table.NewTable(5, "")
	suite.Require().NoError(err)
	suite.tracker.On("TrackAggregate", "5", newTable).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, newTable))

	newTable.MarkOccupied()
	suite.Require().NoError(suite.repository.Update(ctx, newTable))

	retrieved, err := suite.repository.Get(ctx, 5)
	suite.Require().NoError(err)
	suite.True(retrieved.IsOccupied())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TableRepositoryIntegrationTestSuite) TestUpdate_NonExistentTable_ReturnsError() {
	ctx := context.Background()

	missing, err := table.NewTable(404, "")
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, missing)

	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TableRepositoryIntegrationTestSuite) TestGetAll_ReturnsTablesSortedByNumber() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("string"), mock.Anything).Times(3)
	for _, number := range []int{9, 2, 5} {
		newTable, err := table.NewTable(number, "")
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repository.Add(ctx, newTable))
	}

	tables, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(tables, 3)
	suite.Equal(2, tables[0].Number())
	suite.Equal(5, tables[1].Number())
	suite.Equal(9, tables[2].Number())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TableRepositoryIntegrationTestSuite) TestGetAll_EmptyDatabase_ReturnsEmptySlice() {
	tables, err := suite.repository.GetAll(context.Background())

	suite.Require().NoError(err)
	suite.NotNil(tables)
	suite.Empty(tables)
}

func TestTableRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TableRepositoryIntegrationTestSuite))
}
