package commands_test

import (
	"context"
	"fmt"
	"time"

	"catering/internal/core/application/auth"
	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/domain/model/customer"
	"catering/internal/core/domain/model/delivery"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/model/payment"
	"catering/internal/core/domain/model/role"
	"catering/internal/core/domain/model/staff"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
)

type MockStaffRepository struct{ mock.Mock }

func (m *MockStaffRepository) Add(ctx context.Context, s *staff.Staff) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockStaffRepository) Update(ctx context.Context, s *staff.Staff) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockStaffRepository) Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Staff), args.Error(1)
}
func (m *MockStaffRepository) GetByEmail(ctx context.Context, email string) (*staff.Staff, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Staff), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}
func (m *MockCustomerRepository) GetByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

type MockPackageRepository struct{ mock.Mock }

func (m *MockPackageRepository) Add(ctx context.Context, p *catalog.Package) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPackageRepository) Update(ctx context.Context, p *catalog.Package) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPackageRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPackageRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Package), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}
func (m *MockDeliveryRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

type MockPaymentMethodRepository struct{ mock.Mock }

func (m *MockPaymentMethodRepository) Add(ctx context.Context, p *payment.Method) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentMethodRepository) Update(ctx context.Context, p *payment.Method) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentMethodRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Method, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Method), args.Error(1)
}

// MockUoW satisfies every narrow unit-of-work interface the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) StaffRepository() ports.StaffRepository {
	return m.Called().Get(0).(ports.StaffRepository)
}
func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	return m.Called().Get(0).(ports.CustomerRepository)
}
func (m *MockUoW) PackageRepository() ports.PackageRepository {
	return m.Called().Get(0).(ports.PackageRepository)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}
func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	return m.Called().Get(0).(ports.DeliveryRepository)
}
func (m *MockUoW) PaymentMethodRepository() ports.PaymentMethodRepository {
	return m.Called().Get(0).(ports.PaymentMethodRepository)
}

type (
	staffUoWFactoryFunc    func() commands.StaffUoW
	customerUoWFactoryFunc func() commands.CustomerUoW
	packageUoWFactoryFunc  func() commands.PackageUoW
	orderUoWFactoryFunc    func() commands.OrderUoW
	deliveryUoWFactoryFunc func() commands.DeliveryUoW
)

func (f staffUoWFactoryFunc) Create() commands.StaffUoW       { return f() }
func (f customerUoWFactoryFunc) Create() commands.CustomerUoW { return f() }
func (f packageUoWFactoryFunc) Create() commands.PackageUoW   { return f() }
func (f orderUoWFactoryFunc) Create() commands.OrderUoW       { return f() }
func (f deliveryUoWFactoryFunc) Create() commands.DeliveryUoW { return f() }

// stubHasher produces reversible "hashes" so login tests can match them.
type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}
func (stubHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("%w: invalid credentials", errs.ErrUnauthenticated)
	}
	return nil
}

type stubTokens struct{}

func (stubTokens) Issue(p auth.Principal, _ time.Duration) (string, error) {
	return "token-" + p.Email, nil
}

type stubCodes struct{}

func (stubCodes) Generate() string { return "ORD-1756000000000-7" }

func principal(r role.Role) auth.Principal {
	p, err := auth.NewPrincipal(kernel.NewUUID(), "actor@example.com", r)
	if err != nil {
		panic(err)
	}
	return p
}

func fixturePackage(price int64) *catalog.Package {
	money, err := kernel.NewMoneyFromInt(price)
	if err != nil {
		panic(err)
	}
	pkg, err := catalog.NewPackage(
		kernel.NewUUID(),
		"Garden Buffet",
		"buffet",
		"wedding",
		50,
		money,
		"",
		nil,
		time.Now(),
	)
	if err != nil {
		panic(err)
	}
	return pkg
}

func fixturePaymentMethod() *payment.Method {
	method, err := payment.NewMethod(kernel.NewUUID(), "Bank Transfer", nil)
	if err != nil {
		panic(err)
	}
	return method
}
