package ports

import (
	"context"

	"catering/internal/core/domain/model/delivery"
	"catering/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery records.
// At most one delivery exists per order; Add surfaces a conflict error when
// a second courier races for the same order.
type DeliveryRepository interface {
	// Add persists a new delivery record.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery record.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery record by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByOrderID retrieves the delivery record attached to an order.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)
}
