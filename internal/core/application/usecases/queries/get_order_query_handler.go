package queries

import (
	"context"
	"fmt"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order with its lines. The ownership check
// happens after the read: customers asking for someone else's order get
// errs.ErrForbidden, not a not-found masquerade.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
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
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderDetailResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderDetailResponse{}, err
		}
		return OrderDetailResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	summary, err := scanOrderSummary(rows)
	if err != nil {
		return OrderDetailResponse{}, err
	}

	actor := query.Actor()
	if actor.Role.IsCustomer() && !summary.CustomerID.IsEqual(actor.ID) {
		return OrderDetailResponse{}, fmt.Errorf(
			"%w: order belongs to another customer", errs.ErrForbidden,
		)
	}

	lines, err := h.readLines(ctx, query.OrderID())
	if err != nil {
		return OrderDetailResponse{}, err
	}

	return OrderDetailResponse{OrderSummaryResponse: summary, Lines: lines}, nil
}

func (h GetOrderQueryHandler) readLines(
	ctx context.Context,
	orderID kernel.UUID,
) ([]OrderLineResponse, error) {
	lines := make([]OrderLineResponse, 0)

	// Lines and subtotals are order state; the package row may be gone by
	// the time the order is read, so the name is joined loosely.
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			l.package_id,
			COALESCE(p.name, ''),
			l.subtotal
		FROM order_lines l
		LEFT JOIN packages p ON p.id = l.package_id
		WHERE l.order_id = ?
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line OrderLineResponse
		var id, packageID uuid.UUID
		var subtotal decimal.Decimal

		if err = rows.Scan(&id, &packageID, &line.PackageName, &subtotal); err != nil {
			return nil, err
		}

		lineID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		line.ID = lineID

		pkgID, idErr := kernel.UUIDFromBytes(packageID[:])
		if idErr != nil {
			return nil, idErr
		}
		line.PackageID = pkgID

		money, moneyErr := kernel.NewMoney(subtotal)
		if moneyErr != nil {
			return nil, moneyErr
		}
		line.Subtotal = money

		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
