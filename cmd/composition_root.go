package cmd

import (
	"log/slog"

	httpin "catering/internal/adapters/in/http"
	"catering/internal/adapters/out/postgres"
	"catering/internal/core/application/auth"
	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/services"
	"catering/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	tokens     *auth.TokenService
	hasher     *auth.PasswordHasher
	codes      services.TrackingCodeGenerator
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	tokens, err := auth.NewTokenService(configs.JWTSecret, configs.JWTIssuer)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		tokens:     tokens,
		hasher:     auth.NewPasswordHasher(),
		codes:      services.NewTrackingCodeGenerator(),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCustomerCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateLoginStaffCommandHandler() commands.LoginStaffCommandHandler {
	var f commands.StaffUoWFactory = FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLoginStaffCommandHandler(f, c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateLoginCustomerCommandHandler() commands.LoginCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLoginCustomerCommandHandler(f, c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateCreateStaffCommandHandler() commands.CreateStaffCommandHandler {
	var f commands.StaffUoWFactory = FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateStaffCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateCreatePackageCommandHandler() commands.CreatePackageCommandHandler {
	var f commands.PackageUoWFactory = FuncPackageUoWFactory(func() commands.PackageUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePackageCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdatePackageCommandHandler() commands.UpdatePackageCommandHandler {
	var f commands.PackageUoWFactory = FuncPackageUoWFactory(func() commands.PackageUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdatePackageCommandHandler(f)
}

func (c *CompositionRoot) CreateDeletePackageCommandHandler() commands.DeletePackageCommandHandler {
	var f commands.PackageUoWFactory = FuncPackageUoWFactory(func() commands.PackageUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeletePackageCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.codes)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreatePickupDeliveryCommandHandler() commands.PickupDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPickupDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	commandHandlers := httpin.CommandHandlers{
		RegisterCustomer:  c.CreateRegisterCustomerCommandHandler(),
		LoginStaff:        c.CreateLoginStaffCommandHandler(),
		LoginCustomer:     c.CreateLoginCustomerCommandHandler(),
		CreateStaff:       c.CreateCreateStaffCommandHandler(),
		CreatePackage:     c.CreateCreatePackageCommandHandler(),
		UpdatePackage:     c.CreateUpdatePackageCommandHandler(),
		DeletePackage:     c.CreateDeletePackageCommandHandler(),
		PlaceOrder:        c.CreatePlaceOrderCommandHandler(),
		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		PickupDelivery:    c.CreatePickupDeliveryCommandHandler(),
		CompleteDelivery:  c.CreateCompleteDeliveryCommandHandler(),
	}

	queryHandlers := httpin.QueryHandlers{
		ListPackages:       queries.NewListPackagesQueryHandler(c.gormDB),
		GetPackage:         queries.NewGetPackageQueryHandler(c.gormDB),
		ListOrders:         queries.NewListOrdersQueryHandler(c.gormDB),
		GetOrder:           queries.NewGetOrderQueryHandler(c.gormDB),
		ListDeliveryTasks:  queries.NewListDeliveryTasksQueryHandler(c.gormDB),
		ListCustomers:      queries.NewListCustomersQueryHandler(c.gormDB),
		ListStaff:          queries.NewListStaffQueryHandler(c.gormDB),
		ListPaymentMethods: queries.NewListPaymentMethodsQueryHandler(c.gormDB),
		GetProfile:         queries.NewGetProfileQueryHandler(c.gormDB),
		GetDashboardStats:  queries.NewGetDashboardStatsQueryHandler(c.gormDB),
	}

	return httpin.NewServer(commandHandlers, queryHandlers, c.tokens, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(queries.NewGetOrderBacklogQueryHandler(c.gormDB), c.logger)
}

type FuncStaffUoWFactory func() commands.StaffUoW

func (f FuncStaffUoWFactory) Create() commands.StaffUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncPackageUoWFactory func() commands.PackageUoW

func (f FuncPackageUoWFactory) Create() commands.PackageUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
