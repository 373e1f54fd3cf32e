package queries

import (
	"errors"
	"time"

	"catering/internal/core/application/auth"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrListDeliveryTasksQueryIsNotConstructed = errors.New(
	"ListDeliveryTasksQuery must be created via NewListDeliveryTasksQuery constructor",
)

// ListDeliveryTasksQuery retrieves a courier's work list: orders awaiting a
// courier that nobody has claimed yet, plus the courier's own deliveries in
// any state.
type ListDeliveryTasksQuery struct { //nolint:recvcheck //using for validation
	actor auth.Principal

	guard guard.ConstructorGuard
}

// NewListDeliveryTasksQuery creates a task listing query for the courier.
func NewListDeliveryTasksQuery(actor auth.Principal) (ListDeliveryTasksQuery, error) {
	q := ListDeliveryTasksQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setActor(actor); err != nil {
		return ListDeliveryTasksQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListDeliveryTasksQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveryTasksQueryIsNotConstructed)
}

// Actor returns the courier reading the task list.
func (q ListDeliveryTasksQuery) Actor() auth.Principal {
	return q.actor
}

func (q *ListDeliveryTasksQuery) setActor(actor auth.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	q.actor = actor
	return nil
}

// DeliveryTaskResponse is the read model for one entry in a courier's work
// list. Delivery fields are nil for unclaimed orders.
type DeliveryTaskResponse struct {
	OrderID        kernel.UUID
	TrackingCode   string
	CustomerName   string
	Address        string
	OrderStatus    string
	DeliveryID     *kernel.UUID
	DeliveryStatus *string
	PickupTime     *time.Time
	ArrivalTime    *time.Time
}
