package queries

import (
	"context"

	"catering/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderBacklogQueryHandler counts orders stuck before and after
// confirmation for the periodic backlog report.
type GetOrderBacklogQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderBacklogQueryHandler creates a handler for backlog counts.
func NewGetOrderBacklogQueryHandler(db *gorm.DB) GetOrderBacklogQueryHandler {
	return GetOrderBacklogQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOrderBacklogQueryHandler) Handle(
	ctx context.Context,
	query GetOrderBacklogQuery,
) (OrderBacklogResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderBacklogResponse{}, err
	}

	var resp OrderBacklogResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM orders WHERE status = ?),
			(SELECT COUNT(*) FROM orders WHERE status = ?)
	`, order.AwaitingConfirmation.String(), order.AwaitingCourier.String()).Row()

	if err := row.Scan(&resp.AwaitingConfirmation, &resp.AwaitingCourier); err != nil {
		return OrderBacklogResponse{}, err
	}

	return resp, nil
}
