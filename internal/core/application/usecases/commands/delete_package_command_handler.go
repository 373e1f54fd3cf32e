package commands

import (
	"context"
	"fmt"

	"catering/internal/pkg/errs"
)

// DeletePackageCommandHandler removes a package from the catalog.
// Restricted to admin and owner principals. The package is fetched first so
// a missing identifier surfaces as errs.ErrObjectNotFound rather than a
// silent no-op delete.
type DeletePackageCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewDeletePackageCommandHandler creates a handler for package deletion.
func NewDeletePackageCommandHandler(uowFactory PackageUoWFactory) DeletePackageCommandHandler {
	return DeletePackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
func (h DeletePackageCommandHandler) Handle(ctx context.Context, cmd DeletePackageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().Role.IsAdmin() {
		return fmt.Errorf("%w: catalog is managed by admins", errs.ErrForbidden)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PackageRepository()
	if _, err := repo.Get(ctx, cmd.PackageID()); err != nil {
		return err
	}

	if err := repo.Delete(ctx, cmd.PackageID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
