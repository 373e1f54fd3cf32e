package ports

import (
	"context"

	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/domain/model/kernel"
)

// PackageRepository defines the persistence contract for catalog packages.
type PackageRepository interface {
	// Add persists a new package aggregate.
	Add(ctx context.Context, aggregate *catalog.Package) error

	// Update persists changes to an existing package aggregate.
	Update(ctx context.Context, aggregate *catalog.Package) error

	// Delete removes a package by its identifier.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a package aggregate by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Package, error)
}
