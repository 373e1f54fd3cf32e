package ports

import (
	"context"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order and its lines are stored atomically: either the whole order with
// every line is persisted, or nothing is.
type OrderRepository interface {
	// Add persists a new order aggregate together with all of its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its lines by identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
