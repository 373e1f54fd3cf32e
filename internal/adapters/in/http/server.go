// Package http is the inbound HTTP adapter: an echo server translating
// requests into commands and queries. Handlers never touch the database;
// everything goes through the application layer.
package http

import (
	"log/slog"

	"catering/internal/core/application/auth"
	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// CommandHandlers bundles the write-side handlers the server dispatches to.
type CommandHandlers struct {
	RegisterCustomer  commands.RegisterCustomerCommandHandler
	LoginStaff        commands.LoginStaffCommandHandler
	LoginCustomer     commands.LoginCustomerCommandHandler
	CreateStaff       commands.CreateStaffCommandHandler
	CreatePackage     commands.CreatePackageCommandHandler
	UpdatePackage     commands.UpdatePackageCommandHandler
	DeletePackage     commands.DeletePackageCommandHandler
	PlaceOrder        commands.PlaceOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	PickupDelivery    commands.PickupDeliveryCommandHandler
	CompleteDelivery  commands.CompleteDeliveryCommandHandler
}

// QueryHandlers bundles the read-side handlers the server dispatches to.
type QueryHandlers struct {
	ListPackages       queries.ListPackagesQueryHandler
	GetPackage         queries.GetPackageQueryHandler
	ListOrders         queries.ListOrdersQueryHandler
	GetOrder           queries.GetOrderQueryHandler
	ListDeliveryTasks  queries.ListDeliveryTasksQueryHandler
	ListCustomers      queries.ListCustomersQueryHandler
	ListStaff          queries.ListStaffQueryHandler
	ListPaymentMethods queries.ListPaymentMethodsQueryHandler
	GetProfile         queries.GetProfileQueryHandler
	GetDashboardStats  queries.GetDashboardStatsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	tokens   *auth.TokenService
	logger   *slog.Logger
}

// NewServer creates a new HTTP server dispatching to the given handlers.
func NewServer(
	commandHandlers CommandHandlers,
	queryHandlers QueryHandlers,
	tokens *auth.TokenService,
	logger *slog.Logger,
) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
		tokens:   tokens,
		logger:   logger.With("component", "http_server"),
	}
}

// RegisterRoutes mounts all endpoints under /api/v1 with the session
// middleware applied.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1", sessionMiddleware(s.tokens))

	api.POST("/auth/login", s.LoginStaff)
	api.POST("/auth/login-customer", s.LoginCustomer)
	api.POST("/auth/register-customer", s.RegisterCustomer)
	api.GET("/auth/profile", s.GetProfile)

	api.GET("/packages", s.ListPackages)
	api.GET("/packages/:id", s.GetPackage)
	api.POST("/packages", s.CreatePackage)
	api.PUT("/packages/:id", s.UpdatePackage)
	api.DELETE("/packages/:id", s.DeletePackage)

	api.GET("/orders", s.ListOrders)
	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id/status", s.UpdateOrderStatus)

	api.GET("/deliveries/tasks", s.ListDeliveryTasks)
	api.POST("/deliveries", s.ActOnDelivery)

	api.GET("/customers", s.ListCustomers)
	api.GET("/staff", s.ListStaff)
	api.POST("/staff", s.CreateStaff)
	api.GET("/payment-methods", s.ListPaymentMethods)
	api.GET("/dashboard/stats", s.GetDashboardStats)
}
