package http

import (
	"net/http"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type packageRequest struct {
	Name        string   `json:"name"`
	Kind        string   `json:"kind"`
	Category    string   `json:"category"`
	MinPax      int      `json:"minPax"`
	Price       string   `json:"price"`
	Description string   `json:"description"`
	Photos      []string `json:"photos"`
}

// pathUUID parses the named path parameter as a UUID.
func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// ListPackages handles GET /api/v1/packages - the public catalog listing.
func (s *Server) ListPackages(c echo.Context) error {
	packages, err := s.queries.ListPackages.Handle(c.Request().Context(), queries.NewListPackagesQuery())
	if err != nil {
		return respondError(c, s.logger, err)
	}

	data := make([]PackageData, 0, len(packages))
	for _, p := range packages {
		data = append(data, packageResponseToData(p))
	}

	return c.JSON(http.StatusOK, response{Success: true, Data: data})
}

// GetPackage handles GET /api/v1/packages/:id - a single catalog package.
func (s *Server) GetPackage(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return respondError(c, s.logger, err)
	}

	query, err := queries.NewGetPackageQuery(id)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	pkg, err := s.queries.GetPackage.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	return c.JSON(http.StatusOK, response{Success: true, Data: packageResponseToData(pkg)})
}

// CreatePackage handles POST /api/v1/packages - adds a catalog package.
func (s *Server) CreatePackage(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	var req packageRequest
	if err = c.Bind(&req); err != nil {
		return respondError(c, s.logger, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	price, err := kernel.MoneyFromString(req.Price)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	cmd, err := commands.NewCreatePackageCommand(
		principal, req.Name, req.Kind, req.Category, req.MinPax, price, req.Description, req.Photos,
	)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	created, err := s.commands.CreatePackage.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	return c.JSON(http.StatusCreated, response{Success: true, Data: packageToData(created)})
}

// UpdatePackage handles PUT /api/v1/packages/:id - replaces a package's
// details.
func (s *Server) UpdatePackage(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return respondError(c, s.logger, err)
	}

	var req packageRequest
	if err = c.Bind(&req); err != nil {
		return respondError(c, s.logger, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	price, err := kernel.MoneyFromString(req.Price)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	cmd, err := commands.NewUpdatePackageCommand(
		principal, id, req.Name, req.Kind, req.Category, req.MinPax, price, req.Description, req.Photos,
	)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	updated, err := s.commands.UpdatePackage.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	return c.JSON(http.StatusOK, response{Success: true, Data: packageToData(updated)})
}

// DeletePackage handles DELETE /api/v1/packages/:id - removes a package.
func (s *Server) DeletePackage(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return respondError(c, s.logger, err)
	}

	cmd, err := commands.NewDeletePackageCommand(principal, id)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	if err = s.commands.DeletePackage.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, s.logger, err)
	}

	return c.JSON(http.StatusOK, response{Success: true, Message: "package deleted"})
}
