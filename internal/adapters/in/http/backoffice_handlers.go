package http

import (
	"net/http"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/role"
	"catering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type createStaffRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// ListCustomers handles GET /api/v1/customers - the back-office customer
// directory.
func (s *Server) ListCustomers(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	query, err := queries.NewListCustomersQuery(principal)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	customers, err := s.queries.ListCustomers.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	data := make([]CustomerData, 0, len(customers))
	for _, customer := range customers {
		data = append(data, customerResponseToData(customer))
	}

	return c.JSON(http.StatusOK, response{Success: true, Data: data})
}

// ListStaff handles GET /api/v1/staff - the staff roster.
func (s *Server) ListStaff(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	query, err := queries.NewListStaffQuery(principal)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	members, err := s.queries.ListStaff.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	data := make([]StaffData, 0, len(members))
	for _, member := range members {
		data = append(data, staffResponseToData(member))
	}

	return c.JSON(http.StatusOK, response{Success: true, Data: data})
}

// CreateStaff handles POST /api/v1/staff - registering a staff account.
func (s *Server) CreateStaff(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	var req createStaffRequest
	if err = c.Bind(&req); err != nil {
		return respondError(c, s.logger, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	staffRole, err := role.FromString(req.Role)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	cmd, err := commands.NewCreateStaffCommand(principal, req.Name, req.Email, req.Password, staffRole)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	created, err := s.commands.CreateStaff.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	return c.JSON(http.StatusCreated, response{Success: true, Data: staffToData(created)})
}

// ListPaymentMethods handles GET /api/v1/payment-methods - the payment
// options offered at checkout.
func (s *Server) ListPaymentMethods(c echo.Context) error {
	query := queries.NewListPaymentMethodsQuery()

	methods, err := s.queries.ListPaymentMethods.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	data := make([]PaymentMethodData, 0, len(methods))
	for _, method := range methods {
		data = append(data, paymentMethodToData(method))
	}

	return c.JSON(http.StatusOK, response{Success: true, Data: data})
}

// GetDashboardStats handles GET /api/v1/dashboard/stats - the back-office
// landing page numbers.
func (s *Server) GetDashboardStats(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	query, err := queries.NewGetDashboardStatsQuery(principal)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	stats, err := s.queries.GetDashboardStats.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	return c.JSON(http.StatusOK, response{Success: true, Data: dashboardToData(stats)})
}
