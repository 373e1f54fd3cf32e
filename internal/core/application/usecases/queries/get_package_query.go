package queries

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrGetPackageQueryIsNotConstructed = errors.New(
	"GetPackageQuery must be created via NewGetPackageQuery constructor",
)

// GetPackageQuery retrieves one catalog package by identifier. Public.
type GetPackageQuery struct { //nolint:recvcheck //using for validation
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPackageQuery creates a query for a single package.
func NewGetPackageQuery(packageID kernel.UUID) (GetPackageQuery, error) {
	q := GetPackageQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setPackageID(packageID); err != nil {
		return GetPackageQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPackageQuery) Validate() error {
	return q.guard.Validate(ErrGetPackageQueryIsNotConstructed)
}

// PackageID returns the identifier being fetched.
func (q GetPackageQuery) PackageID() kernel.UUID {
	return q.packageID
}

func (q *GetPackageQuery) setPackageID(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}

	q.packageID = packageID
	return nil
}
