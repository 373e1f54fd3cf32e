// Package customerrepo persists customer aggregates.
package customerrepo

import (
	"time"

	"catering/internal/core/domain/model/customer"
	"catering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO is the database representation of a customer.
type CustomerDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Phone        string
	Birthdate    *time.Time
	Address      string
	CreatedAt    time.Time
}

// TableName specifies the database table for customers.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		Phone:        aggregate.Phone(),
		Birthdate:    aggregate.Birthdate(),
		Address:      aggregate.Address(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(
		id,
		dto.Name,
		dto.Email,
		dto.PasswordHash,
		dto.Phone,
		dto.Birthdate,
		dto.Address,
		dto.CreatedAt,
	)
}
