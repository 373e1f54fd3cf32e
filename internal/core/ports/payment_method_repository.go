package ports

import (
	"context"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/payment"
)

// PaymentMethodRepository defines the persistence contract for payment
// methods and their account details.
type PaymentMethodRepository interface {
	// Add persists a new payment method with its details.
	Add(ctx context.Context, aggregate *payment.Method) error

	// Update persists changes to an existing payment method.
	Update(ctx context.Context, aggregate *payment.Method) error

	// Get retrieves a payment method with its details by identifier.
	Get(ctx context.Context, id kernel.UUID) (*payment.Method, error)
}
