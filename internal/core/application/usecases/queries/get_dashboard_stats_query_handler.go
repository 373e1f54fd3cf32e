package queries

import (
	"context"
	"fmt"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const recentOrdersLimit = 10

// GetDashboardStatsQueryHandler aggregates the back-office dashboard:
// order and customer counts, revenue over delivered orders, and the ten
// most recent orders.
type GetDashboardStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardStatsQueryHandler creates a handler for dashboard reads.
func NewGetDashboardStatsQueryHandler(db *gorm.DB) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (DashboardStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return DashboardStatsResponse{}, err
	}

	if !query.Actor().Role.IsAdmin() {
		return DashboardStatsResponse{}, fmt.Errorf(
			"%w: dashboard is for admins", errs.ErrForbidden,
		)
	}

	var resp DashboardStatsResponse
	var revenue decimal.Decimal

	pending := pq.Array([]string{
		order.AwaitingConfirmation.String(),
		order.Processing.String(),
		order.AwaitingCourier.String(),
	})

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM orders WHERE status = ANY(?)),
			(SELECT COUNT(*) FROM customers),
			(SELECT COUNT(*) FROM packages),
			(SELECT COALESCE(SUM(total), 0) FROM orders WHERE status = ?)
	`, pending, order.Delivered.String()).Row()

	if err := row.Scan(
		&resp.TotalOrders,
		&resp.PendingOrders,
		&resp.Customers,
		&resp.Packages,
		&revenue,
	); err != nil {
		return DashboardStatsResponse{}, err
	}

	money, err := kernel.NewMoney(revenue)
	if err != nil {
		return DashboardStatsResponse{}, err
	}
	resp.Revenue = money

	recent, err := h.recentOrders(ctx)
	if err != nil {
		return DashboardStatsResponse{}, err
	}
	resp.RecentOrders = recent

	return resp, nil
}

func (h GetDashboardStatsQueryHandler) recentOrders(
	ctx context.Context,
) ([]OrderSummaryResponse, error) {
	orders := make([]OrderSummaryResponse, 0, recentOrdersLimit)

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
		ORDER BY o.order_date DESC
		LIMIT ?
	`, recentOrdersLimit).Rows()
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
