package ports

import (
	"context"

	"catering/internal/core/domain/model/customer"
	"catering/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer aggregate. Fails with a conflict error
	// when the email is already registered.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer aggregate.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByEmail retrieves a customer aggregate by its login email.
	GetByEmail(ctx context.Context, email string) (*customer.Customer, error)
}
