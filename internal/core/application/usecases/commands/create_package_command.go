package commands

import (
	"errors"

	"catering/internal/core/application/auth"
	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var ErrCreatePackageCommandIsNotConstructed = errors.New(
	"CreatePackageCommand must be created via NewCreatePackageCommand constructor",
)

// CreatePackageCommand represents an admin request to add a catering package
// to the catalog.
type CreatePackageCommand struct { //nolint:recvcheck //using for validation
	actor       auth.Principal
	name        string
	kind        string
	category    string
	minPax      int
	price       kernel.Money
	description string
	photos      []string

	guard guard.ConstructorGuard
}

// NewCreatePackageCommand creates a command to add a catalog package.
// Name, kind, and category are required; the minimum headcount must be
// positive and at most three photos are accepted.
func NewCreatePackageCommand(
	actor auth.Principal,
	name string,
	kind string,
	category string,
	minPax int,
	price kernel.Money,
	description string,
	photos []string,
) (CreatePackageCommand, error) {
	cmd := CreatePackageCommand{
		description: description,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setName(name),
		cmd.setKind(kind),
		cmd.setCategory(category),
		cmd.setMinPax(minPax),
		cmd.setPrice(price),
		cmd.setPhotos(photos),
	); err != nil {
		return CreatePackageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePackageCommand) Validate() error {
	return c.guard.Validate(ErrCreatePackageCommandIsNotConstructed)
}

// Actor returns the principal performing the operation.
func (c CreatePackageCommand) Actor() auth.Principal {
	return c.actor
}

// Name returns the package name.
func (c CreatePackageCommand) Name() string {
	return c.name
}

// Kind returns the package kind, e.g. buffet or boxed.
func (c CreatePackageCommand) Kind() string {
	return c.kind
}

// Category returns the cuisine or event category.
func (c CreatePackageCommand) Category() string {
	return c.category
}

// MinPax returns the minimum headcount the package serves.
func (c CreatePackageCommand) MinPax() int {
	return c.minPax
}

// Price returns the package price.
func (c CreatePackageCommand) Price() kernel.Money {
	return c.price
}

// Description returns the free-form description.
func (c CreatePackageCommand) Description() string {
	return c.description
}

// Photos returns the photo references.
func (c CreatePackageCommand) Photos() []string {
	return c.photos
}

func (c *CreatePackageCommand) setActor(actor auth.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreatePackageCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreatePackageCommand) setKind(kind string) error {
	if kind == "" {
		return errs.NewValueIsRequiredError("kind")
	}

	c.kind = kind
	return nil
}

func (c *CreatePackageCommand) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}

	c.category = category
	return nil
}

func (c *CreatePackageCommand) setMinPax(minPax int) error {
	if minPax <= 0 {
		return errs.NewValueIsInvalidError("minPax")
	}

	c.minPax = minPax
	return nil
}

func (c *CreatePackageCommand) setPrice(price kernel.Money) error {
	c.price = price
	return nil
}

func (c *CreatePackageCommand) setPhotos(photos []string) error {
	if len(photos) > catalog.MaxPhotos {
		return errs.NewValueIsInvalidError("photos")
	}

	c.photos = photos
	return nil
}
