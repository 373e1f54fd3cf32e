package http

import (
	"net/http"
	"time"

	"catering/internal/core/application/auth"
	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerCustomerRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
	Birthdate string `json:"birthdate"`
	Address   string `json:"address"`
}

// LoginStaff handles POST /api/v1/auth/login - authenticates a staff account.
func (s *Server) LoginStaff(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, s.logger, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewLoginCommand(req.Email, req.Password)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	session, err := s.commands.LoginStaff.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	setSessionCookie(c, session.Token, int(auth.StaffTokenTTL.Seconds()))
	return c.JSON(http.StatusOK, response{Success: true, Data: sessionToData(session)})
}

// LoginCustomer handles POST /api/v1/auth/login-customer - authenticates a
// customer account.
func (s *Server) LoginCustomer(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, s.logger, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewLoginCommand(req.Email, req.Password)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	session, err := s.commands.LoginCustomer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	setSessionCookie(c, session.Token, int(auth.CustomerTokenTTL.Seconds()))
	return c.JSON(http.StatusOK, response{Success: true, Data: sessionToData(session)})
}

// RegisterCustomer handles POST /api/v1/auth/register-customer - creates a
// customer account.
func (s *Server) RegisterCustomer(c echo.Context) error {
	var req registerCustomerRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, s.logger, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	var birthdate *time.Time
	if req.Birthdate != "" {
		parsed, err := time.Parse(birthdateLayout, req.Birthdate)
		if err != nil {
			return respondError(c, s.logger, errs.NewValueIsInvalidErrorWithCause("birthdate", err))
		}
		birthdate = &parsed
	}

	cmd, err := commands.NewRegisterCustomerCommand(
		req.Name, req.Email, req.Password, req.Phone, birthdate, req.Address,
	)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	created, err := s.commands.RegisterCustomer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	return c.JSON(http.StatusCreated, response{Success: true, Data: customerToData(created)})
}

// GetProfile handles GET /api/v1/auth/profile - returns the session owner's
// account.
func (s *Server) GetProfile(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	query, err := queries.NewGetProfileQuery(principal)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	profile, err := s.queries.GetProfile.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	return c.JSON(http.StatusOK, response{Success: true, Data: profileToData(profile)})
}
