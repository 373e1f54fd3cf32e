package queries_test

import (
	"context"
	"testing"
	"time"

	"catering/internal/adapters/out/postgres"
	"catering/internal/adapters/out/postgres/packagerepo"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/domain/model/customer"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/model/payment"
	"catering/internal/core/domain/model/role"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GetDashboardStatsQueryHandlerTestSuite covers the back-office dashboard
// read model plus the backlog counts used by the reporting job.
type GetDashboardStatsQueryHandlerTestSuite struct {
	suite.Suite
	container      *pgcontainer.PostgresContainer
	db             *gorm.DB
	statsHandler   queries.GetDashboardStatsQueryHandler
	backlogHandler queries.GetOrderBacklogQueryHandler
	methodsHandler queries.ListPaymentMethodsQueryHandler
	store          queryTestStore
	packages       *packagerepo.GormPackageRepository
	testCustomer   *customer.Customer
	paymentMethod  *payment.Method
}

func (suite *GetDashboardStatsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres.Migrate(db))

	suite.statsHandler = queries.NewGetDashboardStatsQueryHandler(db)
	suite.backlogHandler = queries.NewGetOrderBacklogQueryHandler(db)
	suite.methodsHandler = queries.NewListPaymentMethodsQueryHandler(db)
	suite.store = newQueryTestStore(db)
	suite.packages = packagerepo.NewGormPackageRepository(db, &mockAggregateTracker{})

	suite.testCustomer = suite.store.seedCustomer(suite.T(), "Maria Santos", "maria-stats@example.com")
	suite.paymentMethod = suite.store.seedPaymentMethod(suite.T(), "Bank Transfer")
}

func (suite *GetDashboardStatsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetDashboardStatsQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_lines, packages").Error)
}

func (suite *GetDashboardStatsQueryHandlerTestSuite) TestHandle_Customer_IsForbidden() {
	actor := testPrincipal(suite.T(), kernel.NewUUID(), role.Customer)
	query, err := queries.NewGetDashboardStatsQuery(actor)
	suite.Require().NoError(err)

	_, err = suite.statsHandler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrForbidden)
}

func (suite *GetDashboardStatsQueryHandlerTestSuite) TestHandle_CountsAndRevenue() {
	suite.seedPackage("Fiesta Lunch Trays")
	suite.seedPackage("Garden Wedding Buffet")

	suite.store.seedOrder(suite.T(), suite.testCustomer.ID(), suite.paymentMethod.ID(),
		"ORD-1756000000000-41", order.AwaitingConfirmation, time.Now().UTC().Add(-3*time.Hour))
	suite.store.seedOrder(suite.T(), suite.testCustomer.ID(), suite.paymentMethod.ID(),
		"ORD-1756000000000-42", order.AwaitingCourier, time.Now().UTC().Add(-2*time.Hour))
	delivered := suite.store.seedOrder(suite.T(), suite.testCustomer.ID(), suite.paymentMethod.ID(),
		"ORD-1756000000000-43", order.Delivered, time.Now().UTC())

	actor := testPrincipal(suite.T(), kernel.NewUUID(), role.Owner)
	query, err := queries.NewGetDashboardStatsQuery(actor)
	suite.Require().NoError(err)

	result, err := suite.statsHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(3), result.TotalOrders)
	suite.Equal(int64(2), result.PendingOrders, "delivered orders are no longer pending")
	suite.Equal(int64(1), result.Customers)
	suite.Equal(int64(2), result.Packages)
	suite.True(delivered.Total().IsEqual(result.Revenue), "revenue counts delivered orders only")

	suite.Require().Len(result.RecentOrders, 3)
	suite.Equal(delivered.ID(), result.RecentOrders[0].ID, "recent orders come newest first")
}

func (suite *GetDashboardStatsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ZeroRevenue() {
	actor := testPrincipal(suite.T(), kernel.NewUUID(), role.Admin)
	query, err := queries.NewGetDashboardStatsQuery(actor)
	suite.Require().NoError(err)

	result, err := suite.statsHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(0), result.TotalOrders)
	suite.True(result.Revenue.IsZero())
	suite.Empty(result.RecentOrders)
}

func (suite *GetDashboardStatsQueryHandlerTestSuite) TestBacklog_CountsAwaitingStatuses() {
	suite.store.seedOrder(suite.T(), suite.testCustomer.ID(), suite.paymentMethod.ID(),
		"ORD-1756000000000-44", order.AwaitingConfirmation, time.Now().UTC())
	suite.store.seedOrder(suite.T(), suite.testCustomer.ID(), suite.paymentMethod.ID(),
		"ORD-1756000000000-45", order.AwaitingConfirmation, time.Now().UTC())
	suite.store.seedOrder(suite.T(), suite.testCustomer.ID(), suite.paymentMethod.ID(),
		"ORD-1756000000000-46", order.AwaitingCourier, time.Now().UTC())
	suite.store.seedOrder(suite.T(), suite.testCustomer.ID(), suite.paymentMethod.ID(),
		"ORD-1756000000000-47", order.Delivered, time.Now().UTC())

	result, err := suite.backlogHandler.Handle(context.Background(), queries.NewGetOrderBacklogQuery())

	suite.Require().NoError(err)
	suite.Equal(int64(2), result.AwaitingConfirmation)
	suite.Equal(int64(1), result.AwaitingCourier)
}

func (suite *GetDashboardStatsQueryHandlerTestSuite) TestListPaymentMethods_GroupsDetails() {
	result, err := suite.methodsHandler.Handle(context.Background(), queries.NewListPaymentMethodsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Bank Transfer", result[0].Name)
	suite.Require().Len(result[0].Details, 1)
	suite.Equal("0012-3456-7890", result[0].Details[0].AccountNumber)
	suite.Equal("Metro Savings Bank", result[0].Details[0].AccountPlace)
}

// seedPackage persists a minimal catalog package.
func (suite *GetDashboardStatsQueryHandlerTestSuite) seedPackage(name string) *catalog.Package {
	price, err := kernel.NewMoneyFromInt(12500)
	suite.Require().NoError(err)

	pkg, err := catalog.NewPackage(
		kernel.NewUUID(), name, "tray", "corporate", 30, price, "", nil, time.Now().UTC(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.packages.Add(context.Background(), pkg))
	return pkg
}

func TestGetDashboardStatsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetDashboardStatsQueryHandlerTestSuite))
}
