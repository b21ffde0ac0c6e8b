package staffrepo_test

import (
	"context"
	"testing"
	"time"

	"tableside/internal/adapters/out/postgres/staffrepo"
	"tableside/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// StaffRepositoryIntegrationTestSuite provides integration tests for
// GormStaffRepository using a PostgreSQL container.
type StaffRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *staffrepo.GormStaffRepository
}

func (suite *StaffRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&staffrepo.WaiterDTO{}, &staffrepo.WaiterTableDTO{}))
}

func (suite *StaffRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE waiters CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE waiter_tables").Error)

	suite.repository = staffrepo.NewGormStaffRepository(suite.db)
}

func (suite *StaffRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *StaffRepositoryIntegrationTestSuite) TestGetWaiterAssignments_ReturnsWaitersWithTables() {
	ctx := context.Background()

	aliceID := suite.seedWaiter("alice", 5, 6)
	bobID := suite.seedWaiter("bob", 8)

	assignments, err := suite.repository.GetWaiterAssignments(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(assignments, 2)

	byID := make(map[string][]int)
	names := make(map[string]string)
	for _, a := range assignments {
		byID[a.WaiterID().String()] = a.Tables()
		names[a.WaiterID().String()] = a.Name()
	}

	suite.ElementsMatch([]int{5, 6}, byID[aliceID.String()])
	suite.ElementsMatch([]int{8}, byID[bobID.String()])
	suite.Equal("alice", names[aliceID.String()])
	suite.Equal("bob", names[bobID.String()])
}

func (suite *StaffRepositoryIntegrationTestSuite) TestGetWaiterAssignments_WaiterWithoutTables_ReturnsEmptySet() {
	ctx := context.Background()

	suite.seedWaiter("carol")

	assignments, err := suite.repository.GetWaiterAssignments(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(assignments, 1)
	suite.Empty(assignments[0].Tables())
	suite.False(assignments[0].Covers(5))
}

func (suite *StaffRepositoryIntegrationTestSuite) TestGetWaiterAssignments_EmptyDatabase_ReturnsEmptySlice() {
	assignments, err := suite.repository.GetWaiterAssignments(context.Background())

	suite.Require().NoError(err)
	suite.NotNil(assignments)
	suite.Empty(assignments)
}

func (suite *StaffRepositoryIntegrationTestSuite) seedWaiter(name string, tables ...int) kernel.UUID {
	waiterID := kernel.NewUUID()

	rows := make([]staffrepo.WaiterTableDTO, 0, len(tables))
	for _, number := range tables {
		rows = append(rows, staffrepo.WaiterTableDTO{
			WaiterID:    waiterID.Bytes(),
			TableNumber: number,
		})
	}

	dto := staffrepo.WaiterDTO{
		ID:     waiterID.Bytes(),
		Name:   name,
		Tables: rows,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)

	return waiterID
}

func TestStaffRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(StaffRepositoryIntegrationTestSuite))
}
