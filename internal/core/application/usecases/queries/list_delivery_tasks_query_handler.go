package queries

import (
	"context"
	"fmt"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListDeliveryTasksQueryHandler reads the courier work list: a left join of
// orders against deliveries, keeping unclaimed orders in the claimable
// status plus everything the acting courier has picked up.
type ListDeliveryTasksQueryHandler struct {
	db *gorm.DB
}

// NewListDeliveryTasksQueryHandler creates a handler for courier task lists.
func NewListDeliveryTasksQueryHandler(db *gorm.DB) ListDeliveryTasksQueryHandler {
	return ListDeliveryTasksQueryHandler{db: db}
}

// Handle executes the query. Results come back newest order first.
func (h ListDeliveryTasksQueryHandler) Handle(
	ctx context.Context,
	query ListDeliveryTasksQuery,
) ([]DeliveryTaskResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	if !actor.Role.IsCourier() {
		return nil, fmt.Errorf("%w: task list is for couriers", errs.ErrForbidden)
	}

	tasks := make([]DeliveryTaskResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.tracking_code,
			c.name,
			c.address,
			o.status,
			d.id,
			d.status,
			d.pickup_time,
			d.arrival_time
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		LEFT JOIN deliveries d ON d.order_id = o.id
		WHERE (o.status = ? AND d.id IS NULL) OR d.courier_id = ?
		ORDER BY o.order_date DESC
	`, order.AwaitingCourier.String(), actor.ID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var task DeliveryTaskResponse
		var orderID uuid.UUID
		var deliveryID uuid.NullUUID

		if err = rows.Scan(
			&orderID,
			&task.TrackingCode,
			&task.CustomerName,
			&task.Address,
			&task.OrderStatus,
			&deliveryID,
			&task.DeliveryStatus,
			&task.PickupTime,
			&task.ArrivalTime,
		); err != nil {
			return nil, err
		}

		oid, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		task.OrderID = oid

		if deliveryID.Valid {
			did, idErr := kernel.UUIDFromBytes(deliveryID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			task.DeliveryID = &did
		}

		tasks = append(tasks, task)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
