package queries

import (
	"context"
	"database/sql"
	"errors"

	"catering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPackageQueryHandler reads a single catalog package.
type GetPackageQueryHandler struct {
	db *gorm.DB
}

// NewGetPackageQueryHandler creates a handler for single-package reads.
func NewGetPackageQueryHandler(db *gorm.DB) GetPackageQueryHandler {
	return GetPackageQueryHandler{db: db}
}

// Handle executes the query. A missing package surfaces as
// errs.ErrObjectNotFound.
func (h GetPackageQueryHandler) Handle(
	ctx context.Context,
	query GetPackageQuery,
) (PackageResponse, error) {
	if err := query.Validate(); err != nil {
		return PackageResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE id = ?
	`, query.PackageID().Bytes()).Row()

	pkg, err := scanPackage(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return PackageResponse{}, errs.NewObjectNotFoundError("packageId", query.PackageID())
	}
	if err != nil {
		return PackageResponse{}, err
	}

	return pkg, nil
}
