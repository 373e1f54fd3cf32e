// Package ports defines the persistence contracts between the application
// core and infrastructure. Implementations live under adapters/out; the
// handlers obtain transaction-bound repositories through a UnitOfWork.
package ports

import (
	"context"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/staff"
)

// StaffRepository defines the persistence contract for staff aggregates.
type StaffRepository interface {
	// Add persists a new staff aggregate. Fails with a conflict error when
	// the email is already taken.
	Add(ctx context.Context, aggregate *staff.Staff) error

	// Update persists changes to an existing staff aggregate.
	Update(ctx context.Context, aggregate *staff.Staff) error

	// Get retrieves a staff aggregate by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error)

	// GetByEmail retrieves a staff aggregate by its login email.
	GetByEmail(ctx context.Context, email string) (*staff.Staff, error)
}
