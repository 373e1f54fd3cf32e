package queries

import (
	"context"
	"database/sql"
	"fmt"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads order summaries joined with the customer and
// payment method names.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listings.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query. Customers are restricted to their own orders;
// results come back newest first.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	switch {
	case actor.Role.IsAdmin():
		return h.list(ctx, "", nil)
	case actor.Role.IsCustomer():
		return h.list(ctx, "WHERE o.customer_id = ?", []any{actor.ID.Bytes()})
	default:
		return nil, fmt.Errorf("%w: couriers read the task list", errs.ErrForbidden)
	}
}

func (h ListOrdersQueryHandler) list(
	ctx context.Context,
	where string,
	args []any,
) ([]OrderSummaryResponse, error) {
	orders := make([]OrderSummaryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT
			o.id,
			o.tracking_code,
			o.customer_id,
			c.name,
			p.name,
			o.order_date,
			o.total,
			o.status
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		JOIN payment_methods p ON p.id = o.payment_method_id
		%s
		ORDER BY o.order_date DESC
	`, where), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		summary, scanErr := scanOrderSummary(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func scanOrderSummary(rows *sql.Rows) (OrderSummaryResponse, error) {
	var summary OrderSummaryResponse
	var id, customerID uuid.UUID
	var total decimal.Decimal

	if err := rows.Scan(
		&id,
		&summary.TrackingCode,
		&customerID,
		&summary.CustomerName,
		&summary.PaymentMethod,
		&summary.OrderDate,
		&total,
		&summary.Status,
	); err != nil {
		return OrderSummaryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderSummaryResponse{}, err
	}
	summary.ID = orderID

	ownerID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return OrderSummaryResponse{}, err
	}
	summary.CustomerID = ownerID

	money, err := kernel.NewMoney(total)
	if err != nil {
		return OrderSummaryResponse{}, err
	}
	summary.Total = money

	return summary, nil
}
