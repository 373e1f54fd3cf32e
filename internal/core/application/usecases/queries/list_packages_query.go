// Package queries contains the read operations of the system. Query handlers
// bypass the repositories and read with raw SQL over the gorm connection,
// returning flat read models shaped for the HTTP layer.
//
// Queries that expose protected data carry the acting principal and check
// the role predicate before reading.
package queries

import (
	"errors"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrListPackagesQueryIsNotConstructed = errors.New(
	"ListPackagesQuery must be created via NewListPackagesQuery constructor",
)

// ListPackagesQuery retrieves the catalog, newest packages first. The
// catalog is public; no principal is required.
type ListPackagesQuery struct {
	guard guard.ConstructorGuard
}

// NewListPackagesQuery creates a parameterless catalog listing query.
func NewListPackagesQuery() ListPackagesQuery {
	return ListPackagesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListPackagesQuery) Validate() error {
	return q.guard.Validate(ErrListPackagesQueryIsNotConstructed)
}

// PackageResponse is the read model for one catalog package.
type PackageResponse struct {
	ID          kernel.UUID
	Name        string
	Kind        string
	Category    string
	MinPax      int
	Price       kernel.Money
	Description string
	Photos      []string
	CreatedAt   time.Time
}
