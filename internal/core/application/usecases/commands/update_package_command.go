package commands

import (
	"errors"

	"catering/internal/core/application/auth"
	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var ErrUpdatePackageCommandIsNotConstructed = errors.New(
	"UpdatePackageCommand must be created via NewUpdatePackageCommand constructor",
)

// UpdatePackageCommand represents an admin request to replace a catalog
// package's details. The update is whole-record: every field is supplied.
type UpdatePackageCommand struct { //nolint:recvcheck //using for validation
	actor       auth.Principal
	packageID   kernel.UUID
	name        string
	kind        string
	category    string
	minPax      int
	price       kernel.Money
	description string
	photos      []string

	guard guard.ConstructorGuard
}

// NewUpdatePackageCommand creates a command to update a catalog package.
func NewUpdatePackageCommand(
	actor auth.Principal,
	packageID kernel.UUID,
	name string,
	kind string,
	category string,
	minPax int,
	price kernel.Money,
	description string,
	photos []string,
) (UpdatePackageCommand, error) {
	cmd := UpdatePackageCommand{
		description: description,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setPackageID(packageID),
		cmd.setName(name),
		cmd.setKind(kind),
		cmd.setCategory(category),
		cmd.setMinPax(minPax),
		cmd.setPrice(price),
		cmd.setPhotos(photos),
	); err != nil {
		return UpdatePackageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePackageCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePackageCommandIsNotConstructed)
}

// Actor returns the principal performing the operation.
func (c UpdatePackageCommand) Actor() auth.Principal {
	return c.actor
}

// PackageID returns the identifier of the package being updated.
func (c UpdatePackageCommand) PackageID() kernel.UUID {
	return c.packageID
}

// Name returns the new package name.
func (c UpdatePackageCommand) Name() string {
	return c.name
}

// Kind returns the new package kind.
func (c UpdatePackageCommand) Kind() string {
	return c.kind
}

// Category returns the new category.
func (c UpdatePackageCommand) Category() string {
	return c.category
}

// MinPax returns the new minimum headcount.
func (c UpdatePackageCommand) MinPax() int {
	return c.minPax
}

// Price returns the new price.
func (c UpdatePackageCommand) Price() kernel.Money {
	return c.price
}

// Description returns the new description.
func (c UpdatePackageCommand) Description() string {
	return c.description
}

// Photos returns the new photo references.
func (c UpdatePackageCommand) Photos() []string {
	return c.photos
}

func (c *UpdatePackageCommand) setActor(actor auth.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UpdatePackageCommand) setPackageID(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}

	c.packageID = packageID
	return nil
}

func (c *UpdatePackageCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *UpdatePackageCommand) setKind(kind string) error {
	if kind == "" {
		return errs.NewValueIsRequiredError("kind")
	}

	c.kind = kind
	return nil
}

func (c *UpdatePackageCommand) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}

	c.category = category
	return nil
}

func (c *UpdatePackageCommand) setMinPax(minPax int) error {
	if minPax <= 0 {
		return errs.NewValueIsInvalidError("minPax")
	}

	c.minPax = minPax
	return nil
}

func (c *UpdatePackageCommand) setPrice(price kernel.Money) error {
	c.price = price
	return nil
}

func (c *UpdatePackageCommand) setPhotos(photos []string) error {
	if len(photos) > catalog.MaxPhotos {
		return errs.NewValueIsInvalidError("photos")
	}

	c.photos = photos
	return nil
}
