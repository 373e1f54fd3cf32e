// Package staffrepo persists staff aggregates. Staff accounts live in the
// "users" table; the unique email index backs the duplicate-account check.
package staffrepo

import (
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/role"
	"catering/internal/core/domain/model/staff"

	"github.com/google/uuid"
)

// StaffDTO is the database representation of a staff account.
type StaffDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string `gorm:"index"`
	CreatedAt    time.Time
}

// TableName maps staff accounts onto the "users" table.
func (StaffDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *staff.Staff) StaffDTO {
	return StaffDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         aggregate.Role().String(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

func toDomain(dto StaffDTO) (*staff.Staff, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	staffRole, err := role.FromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return staff.RestoreStaff(id, dto.Name, dto.Email, dto.PasswordHash, staffRole, dto.CreatedAt)
}
