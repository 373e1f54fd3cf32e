package order

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through NewLine or RestoreLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine or RestoreLine constructor")

// Line is one package selection within an order. The subtotal is a snapshot
// of the package price at order time; later price changes never alter it.
// Duplicate package references are allowed, each as an independent line.
type Line struct {
	id        kernel.UUID
	packageID kernel.UUID
	subtotal  kernel.Money

	isConstructed bool
}

// NewLine creates a validated order line with the given price snapshot.
func NewLine(id kernel.UUID, packageID kernel.UUID, subtotal kernel.Money) (Line, error) {
	if err := errors.Join(id.Validate(), packageID.Validate()); err != nil {
		return Line{}, err
	}

	return Line{
		id:            id,
		packageID:     packageID,
		subtotal:      subtotal,
		isConstructed: true,
	}, nil
}

// RestoreLine reconstructs a line from persistence.
func RestoreLine(id kernel.UUID, packageID kernel.UUID, subtotal kernel.Money) (Line, error) {
	return NewLine(id, packageID, subtotal)
}

// Validate ensures the line was created through a constructor.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (l Line) ID() kernel.UUID {
	return l.id
}

// PackageID returns the referenced package.
func (l Line) PackageID() kernel.UUID {
	return l.packageID
}

// Subtotal returns the price snapshot taken at order time.
func (l Line) Subtotal() kernel.Money {
	return l.subtotal
}
