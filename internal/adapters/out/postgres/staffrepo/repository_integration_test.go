package staffrepo_test

import (
	"context"
	"testing"
	"time"

	"catering/internal/adapters/out/postgres/staffrepo"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/role"
	"catering/internal/core/domain/model/staff"
	"catering/internal/pkg/errs"

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

// StaffRepositoryIntegrationTestSuite provides integration tests for
// StaffRepository, including the unique login email constraint.
type StaffRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *staffrepo.GormStaffRepository
	tracker    *MockAggregateTracker
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&staffrepo.StaffDTO{}))
}

func (suite *StaffRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = staffrepo.NewGormStaffRepository(suite.db, suite.tracker)
}

func (suite *StaffRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *StaffRepositoryIntegrationTestSuite) TestAdd_ValidStaff_Persists() {
	ctx := context.Background()

	account := suite.createTestStaff("admin@catering.local", role.Admin)
	suite.tracker.On("TrackAggregate", account.ID(), account).Once()

	err := suite.repository.Add(ctx, account)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, account.ID())
	suite.Require().NoError(err)
	suite.Equal(account.Email(), retrieved.Email())
	suite.Equal(role.Admin, retrieved.Role())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *StaffRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail_ReturnsConflictError() {
	ctx := context.Background()

	first := suite.createTestStaff("taken@catering.local", role.Courier)
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.createTestStaff("taken@catering.local", role.Admin)

	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)

	var conflictErr *errs.ObjectAlreadyExistsError
	suite.Require().ErrorAs(err, &conflictErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *StaffRepositoryIntegrationTestSuite) TestGetByEmail_ExistingStaff_ReturnsAccount() {
	ctx := context.Background()

	account := suite.createTestStaff("owner@catering.local", role.Owner)
	suite.tracker.On("TrackAggregate", account.ID(), account).Once()
	suite.Require().NoError(suite.repository.Add(ctx, account))

	retrieved, err := suite.repository.GetByEmail(ctx, "owner@catering.local")
	suite.Require().NoError(err)
	suite.Equal(account.ID(), retrieved.ID())
	suite.Equal(role.Owner, retrieved.Role())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *StaffRepositoryIntegrationTestSuite) TestGetByEmail_UnknownEmail_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.GetByEmail(ctx, "nobody@catering.local")

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *StaffRepositoryIntegrationTestSuite) TestUpdate_NonExistentStaff_ReturnsNotFoundError() {
	ctx := context.Background()

	missing := suite.createTestStaff("ghost@catering.local", role.Courier)

	err := suite.repository.Update(ctx, missing)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

// createTestStaff builds a staff account with a pre-hashed credential.
func (suite *StaffRepositoryIntegrationTestSuite) createTestStaff(email string, staffRole role.Role) *staff.Staff {
	account, err := staff.NewStaff(
		kernel.NewUUID(),
		"Test Staff",
		email,
		"$2a$10$hashhashhashhashhashhash",
		staffRole,
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return account
}

func TestStaffRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(StaffRepositoryIntegrationTestSuite))
}
