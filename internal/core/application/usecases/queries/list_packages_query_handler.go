package queries

import (
	"context"

	"catering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListPackagesQueryHandler reads the catalog directly from the database.
type ListPackagesQueryHandler struct {
	db *gorm.DB
}

// NewListPackagesQueryHandler creates a handler for catalog listings.
func NewListPackagesQueryHandler(db *gorm.DB) ListPackagesQueryHandler {
	return ListPackagesQueryHandler{db: db}
}

// Handle executes the query. Packages are returned newest first.
func (h ListPackagesQueryHandler) Handle(
	ctx context.Context,
	query ListPackagesQuery,
) ([]PackageResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	packages := make([]PackageResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			kind,
			category,
			min_pax,
			price,
			description,
			photos,
			created_at
		FROM packages
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		pkg, scanErr := scanPackage(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		packages = append(packages, pkg)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return packages, nil
}

// scanPackage maps one packages row onto the read model. Shared with the
// single-package query, which selects the same column list.
func scanPackage(scan func(dest ...any) error) (PackageResponse, error) {
	var pkg PackageResponse
	var id uuid.UUID
	var price decimal.Decimal
	var photos pq.StringArray

	if err := scan(
		&id,
		&pkg.Name,
		&pkg.Kind,
		&pkg.Category,
		&pkg.MinPax,
		&price,
		&pkg.Description,
		&photos,
		&pkg.CreatedAt,
	); err != nil {
		return PackageResponse{}, err
	}

	pkgID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return PackageResponse{}, err
	}
	pkg.ID = pkgID

	money, err := kernel.NewMoney(price)
	if err != nil {
		return PackageResponse{}, err
	}
	pkg.Price = money
	pkg.Photos = photos

	return pkg, nil
}
