// Package catalog defines the catering package aggregate: the catalog items
// customers order from.
package catalog

import (
	"errors"
	"fmt"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

// MaxPhotos is the maximum number of photo references a package may carry.
const MaxPhotos = 3

// ErrPackageIsNotConstructed is returned when a Package instance was not
// created through NewPackage or RestorePackage.
var ErrPackageIsNotConstructed = errors.New(
	"Package must be created via NewPackage or RestorePackage constructor")

// Package represents a catering offering: a named menu with a serving kind
// (buffet, box), an event category, a minimum headcount, and a unit price.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Name, kind, and category must be non-empty
//   - Minimum headcount must be positive
//   - At most MaxPhotos photo references
type Package struct {
	id          kernel.UUID
	name        string
	kind        string
	category    string
	minPax      int
	price       kernel.Money
	description string
	photos      []string
	createdAt   time.Time

	isConstructed bool
}

// NewPackage creates a validated catalog package.
func NewPackage(
	id kernel.UUID,
	name string,
	kind string,
	category string,
	minPax int,
	price kernel.Money,
	description string,
	photos []string,
	createdAt time.Time,
) (*Package, error) {
	p := &Package{
		description:   description,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setKind(kind),
		p.setCategory(category),
		p.setMinPax(minPax),
		p.setPrice(price),
		p.setPhotos(photos),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePackage reconstructs a package from persistence.
func RestorePackage(
	id kernel.UUID,
	name string,
	kind string,
	category string,
	minPax int,
	price kernel.Money,
	description string,
	photos []string,
	createdAt time.Time,
) (*Package, error) {
	return NewPackage(id, name, kind, category, minPax, price, description, photos, createdAt)
}

// Validate ensures the instance was created through a constructor.
func (p *Package) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackageIsNotConstructed
	}
	return nil
}

// IsEqual compares two packages by identifier.
func (p *Package) IsEqual(other *Package) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the package's unique identifier.
func (p *Package) ID() kernel.UUID {
	return p.id
}

// Name returns the package name.
func (p *Package) Name() string {
	return p.name
}

// Kind returns the serving kind, e.g. buffet or box.
func (p *Package) Kind() string {
	return p.kind
}

// Category returns the event category, e.g. wedding or meeting.
func (p *Package) Category() string {
	return p.category
}

// MinPax returns the minimum headcount the package serves.
func (p *Package) MinPax() int {
	return p.minPax
}

// Price returns the current unit price.
// Order lines snapshot this value; later price changes never touch
// existing orders.
func (p *Package) Price() kernel.Money {
	return p.price
}

// Description returns the free-text description.
func (p *Package) Description() string {
	return p.description
}

// Photos returns the photo references, at most MaxPhotos entries.
func (p *Package) Photos() []string {
	return p.photos
}

// CreatedAt returns the catalog entry creation time.
func (p *Package) CreatedAt() time.Time {
	return p.createdAt
}

// UpdateDetails replaces the package's mutable attributes in one validated step.
func (p *Package) UpdateDetails(
	name string,
	kind string,
	category string,
	minPax int,
	price kernel.Money,
	description string,
	photos []string,
) error {
	if err := p.Validate(); err != nil {
		return err
	}

	updated := *p
	if err := errors.Join(
		updated.setName(name),
		updated.setKind(kind),
		updated.setCategory(category),
		updated.setMinPax(minPax),
		updated.setPrice(price),
		updated.setPhotos(photos),
	); err != nil {
		return err
	}
	updated.description = description

	*p = updated
	return nil
}

func (p *Package) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Package) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Package) setKind(kind string) error {
	if kind == "" {
		return errs.NewValueIsRequiredError("kind")
	}
	p.kind = kind
	return nil
}

func (p *Package) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	p.category = category
	return nil
}

func (p *Package) setMinPax(minPax int) error {
	if minPax <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"minPax",
			fmt.Errorf("%d is not greater than 0", minPax),
		)
	}
	p.minPax = minPax
	return nil
}

func (p *Package) setPrice(price kernel.Money) error {
	p.price = price
	return nil
}

func (p *Package) setPhotos(photos []string) error {
	if len(photos) > MaxPhotos {
		return errs.NewValueIsInvalidErrorWithCause(
			"photos",
			fmt.Errorf("%d exceeds the maximum of %d", len(photos), MaxPhotos),
		)
	}
	p.photos = photos
	return nil
}
