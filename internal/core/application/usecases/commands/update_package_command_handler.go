package commands

import (
	"context"
	"fmt"

	"catering/internal/core/domain/model/catalog"
	"catering/internal/pkg/errs"
)

// UpdatePackageCommandHandler replaces a catalog package's details.
// Restricted to admin and owner principals; a missing package surfaces as
// errs.ErrObjectNotFound.
type UpdatePackageCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewUpdatePackageCommandHandler creates a handler for package updates.
func NewUpdatePackageCommandHandler(uowFactory PackageUoWFactory) UpdatePackageCommandHandler {
	return UpdatePackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the updated package.
func (h UpdatePackageCommandHandler) Handle(
	ctx context.Context,
	cmd UpdatePackageCommand,
) (*catalog.Package, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().Role.IsAdmin() {
		return nil, fmt.Errorf("%w: catalog is managed by admins", errs.ErrForbidden)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PackageRepository()
	pkg, err := repo.Get(ctx, cmd.PackageID())
	if err != nil {
		return nil, err
	}

	if err = pkg.UpdateDetails(
		cmd.Name(),
		cmd.Kind(),
		cmd.Category(),
		cmd.MinPax(),
		cmd.Price(),
		cmd.Description(),
		cmd.Photos(),
	); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, pkg); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return pkg, nil
}
