package queries_test

import (
	"context"
	"testing"
	"time"

	"catering/internal/adapters/out/postgres"
	"catering/internal/adapters/out/postgres/customerrepo"
	"catering/internal/adapters/out/postgres/orderrepo"
	"catering/internal/adapters/out/postgres/packagerepo"
	"catering/internal/adapters/out/postgres/paymentrepo"
	"catering/internal/core/application/auth"
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

// mockAggregateTracker is a no-op tracker for seeding test data through the
// repositories.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// queryTestStore bundles the repositories used to seed read-model tests.
type queryTestStore struct {
	customers *customerrepo.GormCustomerRepository
	payments  *paymentrepo.GormPaymentMethodRepository
	orders    *orderrepo.GormOrderRepository
	packages  *packagerepo.GormPackageRepository
}

func newQueryTestStore(db *gorm.DB) queryTestStore {
	tracker := &mockAggregateTracker{}
	return queryTestStore{
		customers: customerrepo.NewGormCustomerRepository(db, tracker),
		payments:  paymentrepo.NewGormPaymentMethodRepository(db, tracker),
		orders:    orderrepo.NewGormOrderRepository(db, tracker),
		packages:  packagerepo.NewGormPackageRepository(db, tracker),
	}
}

// seedCustomer persists a customer and returns it.
func (s queryTestStore) seedCustomer(t *testing.T, name, email string) *customer.Customer {
	t.Helper()

	c, err := customer.NewCustomer(
		kernel.NewUUID(), name, email, "$2a$10$hashhashhashhashhashhash",
		"", nil, "88 Katipunan Ave", time.Now().UTC(),
	)
	if err != nil {
		t.Fatal(err)
	}
	if err = s.customers.Add(context.Background(), c); err != nil {
		t.Fatal(err)
	}
	return c
}

// seedPaymentMethod persists a payment method and returns it.
func (s queryTestStore) seedPaymentMethod(t *testing.T, name string) *payment.Method {
	t.Helper()

	detail, err := payment.NewDetail(kernel.NewUUID(), "0012-3456-7890", "Metro Savings Bank", "uploads/bank.png")
	if err != nil {
		t.Fatal(err)
	}
	m, err := payment.NewMethod(kernel.NewUUID(), name, []payment.Detail{detail})
	if err != nil {
		t.Fatal(err)
	}
	if err = s.payments.Add(context.Background(), m); err != nil {
		t.Fatal(err)
	}
	return m
}

// seedOrder persists a one-line order in the given status and returns it.
func (s queryTestStore) seedOrder(
	t *testing.T,
	customerID, paymentMethodID kernel.UUID,
	trackingCode string,
	status order.Status,
	orderDate time.Time,
) *order.Order {
	t.Helper()

	amount, err := kernel.NewMoneyFromInt(7500)
	if err != nil {
		t.Fatal(err)
	}
	line, err := order.NewLine(kernel.NewUUID(), kernel.NewUUID(), amount)
	if err != nil {
		t.Fatal(err)
	}

	o, err := order.NewOrder(kernel.NewUUID(), customerID, paymentMethodID, trackingCode, orderDate, []order.Line{line})
	if err != nil {
		t.Fatal(err)
	}
	if err = o.SetStatus(status); err != nil {
		t.Fatal(err)
	}
	if err = s.orders.Add(context.Background(), o); err != nil {
		t.Fatal(err)
	}
	return o
}

// seedPricedPackage persists a package with the given whole-unit price.
func (s queryTestStore) seedPricedPackage(t *testing.T, name string, price int64) *catalog.Package {
	t.Helper()

	amount, err := kernel.NewMoneyFromInt(price)
	if err != nil {
		t.Fatal(err)
	}
	pkg, err := catalog.NewPackage(
		kernel.NewUUID(), name, "tray", "corporate", 30, amount, "", nil, time.Now().UTC(),
	)
	if err != nil {
		t.Fatal(err)
	}
	if err = s.packages.Add(context.Background(), pkg); err != nil {
		t.Fatal(err)
	}
	return pkg
}

// seedOrderForPackage persists an order with one line referencing the given
// package at the given snapshot subtotal.
func (s queryTestStore) seedOrderForPackage(
	t *testing.T,
	customerID, paymentMethodID kernel.UUID,
	trackingCode string,
	packageID kernel.UUID,
	subtotal int64,
) *order.Order {
	t.Helper()

	amount, err := kernel.NewMoneyFromInt(subtotal)
	if err != nil {
		t.Fatal(err)
	}
	line, err := order.NewLine(kernel.NewUUID(), packageID, amount)
	if err != nil {
		t.Fatal(err)
	}

	o, err := order.NewOrder(kernel.NewUUID(), customerID, paymentMethodID,
		trackingCode, time.Now().UTC(), []order.Line{line})
	if err != nil {
		t.Fatal(err)
	}
	if err = s.orders.Add(context.Background(), o); err != nil {
		t.Fatal(err)
	}
	return o
}

// testPrincipal builds a principal with the given role for query tests.
func testPrincipal(t *testing.T, id kernel.UUID, r role.Role) auth.Principal {
	t.Helper()

	p, err := auth.NewPrincipal(id, "actor@example.com", r)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

// ListOrdersQueryHandlerTestSuite covers order listings and single-order
// reads against a real PostgreSQL database.
type ListOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container     *pgcontainer.PostgresContainer
	db            *gorm.DB
	listHandler   queries.ListOrdersQueryHandler
	getHandler    queries.GetOrderQueryHandler
	store         queryTestStore
	maria         *customer.Customer
	juan          *customer.Customer
	paymentMethod *payment.Method
}

func (suite *ListOrdersQueryHandlerTestSuite) SetupSuite() {
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

	suite.listHandler = queries.NewListOrdersQueryHandler(db)
	suite.getHandler = queries.NewGetOrderQueryHandler(db)
	suite.store = newQueryTestStore(db)

	suite.maria = suite.store.seedCustomer(suite.T(), "Maria Santos", "maria@example.com")
	suite.juan = suite.store.seedCustomer(suite.T(), "Juan Cruz", "juan@example.com")
	suite.paymentMethod = suite.store.seedPaymentMethod(suite.T(), "Bank Transfer")
}

func (suite *ListOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ListOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	actor := testPrincipal(suite.T(), kernel.NewUUID(), role.Admin)
	query, err := queries.NewListOrdersQuery(actor)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_Admin_SeesAllOrdersNewestFirst() {
	older := suite.store.seedOrder(suite.T(), suite.maria.ID(), suite.paymentMethod.ID(),
		"ORD-1756000000000-21", order.AwaitingConfirmation, time.Now().UTC().Add(-2*time.Hour))
	newer := suite.store.seedOrder(suite.T(), suite.juan.ID(), suite.paymentMethod.ID(),
		"ORD-1756000000000-22", order.Processing, time.Now().UTC())

	actor := testPrincipal(suite.T(), kernel.NewUUID(), role.Admin)
	query, err := queries.NewListOrdersQuery(actor)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(newer.ID(), result[0].ID)
	suite.Equal(older.ID(), result[1].ID)
	suite.Equal("Juan Cruz", result[0].CustomerName)
	suite.Equal("Bank Transfer", result[0].PaymentMethod)
	suite.Equal("Processing", result[0].Status)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_Customer_SeesOnlyOwnOrders() {
	own := suite.store.seedOrder(suite.T(), suite.maria.ID(), suite.paymentMethod.ID(),
		"ORD-1756000000000-23", order.AwaitingConfirmation, time.Now().UTC())
	suite.store.seedOrder(suite.T(), suite.juan.ID(), suite.paymentMethod.ID(),
		"ORD-1756000000000-24", order.AwaitingConfirmation, time.Now().UTC())

	actor := testPrincipal(suite.T(), suite.maria.ID(), role.Customer)
	query, err := queries.NewListOrdersQuery(actor)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(own.ID(), result[0].ID)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_Courier_IsForbidden() {
	actor := testPrincipal(suite.T(), kernel.NewUUID(), role.Courier)
	query, err := queries.NewListOrdersQuery(actor)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)

	suite.Nil(result)
	suite.Require().ErrorIs(err, errs.ErrForbidden)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestGetOrder_Owner_SeesLines() {
	seeded := suite.store.seedOrder(suite.T(), suite.maria.ID(), suite.paymentMethod.ID(),
		"ORD-1756000000000-25", order.AwaitingConfirmation, time.Now().UTC())

	actor := testPrincipal(suite.T(), suite.maria.ID(), role.Customer)
	query, err := queries.NewGetOrderQuery(actor, seeded.ID())
	suite.Require().NoError(err)

	result, err := suite.getHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(seeded.ID(), result.ID)
	suite.Equal("ORD-1756000000000-25", result.TrackingCode)
	suite.Require().Len(result.Lines, 1)
	suite.True(seeded.Lines()[0].Subtotal().IsEqual(result.Lines[0].Subtotal))
}

func (suite *ListOrdersQueryHandlerTestSuite) TestGetOrder_PackageDeleted_LineSurvives() {
	pkg := suite.store.seedPricedPackage(suite.T(), "Family Tray", 9900)
	seeded := suite.store.seedOrderForPackage(suite.T(), suite.maria.ID(), suite.paymentMethod.ID(),
		"ORD-1756000000000-27", pkg.ID(), 9900)

	suite.Require().NoError(suite.store.packages.Delete(context.Background(), pkg.ID()))

	actor := testPrincipal(suite.T(), suite.maria.ID(), role.Customer)
	query, err := queries.NewGetOrderQuery(actor, seeded.ID())
	suite.Require().NoError(err)

	result, err := suite.getHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Lines, 1)
	suite.Equal(pkg.ID(), result.Lines[0].PackageID)
	suite.Empty(result.Lines[0].PackageName)
	suite.True(seeded.Lines()[0].Subtotal().IsEqual(result.Lines[0].Subtotal))
	suite.True(seeded.Total().IsEqual(result.Total))
}

func (suite *ListOrdersQueryHandlerTestSuite) TestGetOrder_PackagePriceChanged_SnapshotUnchanged() {
	pkg := suite.store.seedPricedPackage(suite.T(), "Banquet Set", 9900)
	seeded := suite.store.seedOrderForPackage(suite.T(), suite.maria.ID(), suite.paymentMethod.ID(),
		"ORD-1756000000000-28", pkg.ID(), 9900)

	newPrice, err := kernel.NewMoneyFromInt(15000)
	suite.Require().NoError(err)
	suite.Require().NoError(pkg.UpdateDetails(
		pkg.Name(), pkg.Kind(), pkg.Category(), pkg.MinPax(), newPrice, pkg.Description(), pkg.Photos(),
	))
	suite.Require().NoError(suite.store.packages.Update(context.Background(), pkg))

	actor := testPrincipal(suite.T(), suite.maria.ID(), role.Customer)
	query, err := queries.NewGetOrderQuery(actor, seeded.ID())
	suite.Require().NoError(err)

	result, err := suite.getHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Lines, 1)
	suite.True(seeded.Lines()[0].Subtotal().IsEqual(result.Lines[0].Subtotal))
	suite.True(seeded.Total().IsEqual(result.Total))
}

func (suite *ListOrdersQueryHandlerTestSuite) TestGetOrder_OtherCustomer_IsForbidden() {
	seeded := suite.store.seedOrder(suite.T(), suite.maria.ID(), suite.paymentMethod.ID(),
		"ORD-1756000000000-26", order.AwaitingConfirmation, time.Now().UTC())

	actor := testPrincipal(suite.T(), suite.juan.ID(), role.Customer)
	query, err := queries.NewGetOrderQuery(actor, seeded.ID())
	suite.Require().NoError(err)

	_, err = suite.getHandler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrForbidden)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestGetOrder_NonExistent_ReturnsNotFoundError() {
	actor := testPrincipal(suite.T(), kernel.NewUUID(), role.Admin)
	query, err := queries.NewGetOrderQuery(actor, kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.getHandler.Handle(context.Background(), query)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func TestListOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListOrdersQueryHandlerTestSuite))
}
