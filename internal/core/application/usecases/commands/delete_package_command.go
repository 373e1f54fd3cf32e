package commands

import (
	"errors"

	"catering/internal/core/application/auth"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrDeletePackageCommandIsNotConstructed = errors.New(
	"DeletePackageCommand must be created via NewDeletePackageCommand constructor",
)

// DeletePackageCommand represents an admin request to remove a catalog package.
type DeletePackageCommand struct { //nolint:recvcheck //using for validation
	actor     auth.Principal
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeletePackageCommand creates a command to delete a catalog package.
func NewDeletePackageCommand(
	actor auth.Principal,
	packageID kernel.UUID,
) (DeletePackageCommand, error) {
	cmd := DeletePackageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setPackageID(packageID),
	); err != nil {
		return DeletePackageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeletePackageCommand) Validate() error {
	return c.guard.Validate(ErrDeletePackageCommandIsNotConstructed)
}

// Actor returns the principal performing the operation.
func (c DeletePackageCommand) Actor() auth.Principal {
	return c.actor
}

// PackageID returns the identifier of the package being deleted.
func (c DeletePackageCommand) PackageID() kernel.UUID {
	return c.packageID
}

func (c *DeletePackageCommand) setActor(actor auth.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *DeletePackageCommand) setPackageID(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}

	c.packageID = packageID
	return nil
}
