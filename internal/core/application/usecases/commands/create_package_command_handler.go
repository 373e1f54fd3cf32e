package commands

import (
	"context"
	"fmt"
	"time"

	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

// CreatePackageCommandHandler adds packages to the catalog. Restricted to
// admin and owner principals.
type CreatePackageCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewCreatePackageCommandHandler creates a handler for package creation.
func NewCreatePackageCommandHandler(uowFactory PackageUoWFactory) CreatePackageCommandHandler {
	return CreatePackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the created package.
func (h CreatePackageCommandHandler) Handle(
	ctx context.Context,
	cmd CreatePackageCommand,
) (*catalog.Package, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().Role.IsAdmin() {
		return nil, fmt.Errorf("%w: catalog is managed by admins", errs.ErrForbidden)
	}

	pkg, err := catalog.NewPackage(
		kernel.NewUUID(),
		cmd.Name(),
		cmd.Kind(),
		cmd.Category(),
		cmd.MinPax(),
		cmd.Price(),
		cmd.Description(),
		cmd.Photos(),
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PackageRepository().Add(ctx, pkg); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return pkg, nil
}
