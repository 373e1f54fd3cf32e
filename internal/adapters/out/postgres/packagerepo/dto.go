// Package packagerepo persists catalog packages. Photo references are kept
// in a native text array column.
package packagerepo

import (
	"time"

	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// PackageDTO is the database representation of a catalog package.
type PackageDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Kind        string
	Category    string `gorm:"index"`
	MinPax      int
	Price       decimal.Decimal `gorm:"type:numeric"`
	Description string
	Photos      pq.StringArray `gorm:"type:text[]"`
	CreatedAt   time.Time
}

// TableName specifies the database table for packages.
func (PackageDTO) TableName() string {
	return "packages"
}

func fromDomain(aggregate *catalog.Package) PackageDTO {
	return PackageDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Kind:        aggregate.Kind(),
		Category:    aggregate.Category(),
		MinPax:      aggregate.MinPax(),
		Price:       aggregate.Price().Decimal(),
		Description: aggregate.Description(),
		Photos:      aggregate.Photos(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

func toDomain(dto PackageDTO) (*catalog.Package, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return catalog.RestorePackage(
		id,
		dto.Name,
		dto.Kind,
		dto.Category,
		dto.MinPax,
		price,
		dto.Description,
		dto.Photos,
		dto.CreatedAt,
	)
}
