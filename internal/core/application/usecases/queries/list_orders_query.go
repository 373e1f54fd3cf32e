package queries

import (
	"errors"
	"time"

	"catering/internal/core/application/auth"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves orders for the acting principal: customers see
// their own orders, admins and owners see everything. Couriers use the
// delivery task list instead and are rejected here.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	actor auth.Principal

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates an order listing query for the actor.
func NewListOrdersQuery(actor auth.Principal) (ListOrdersQuery, error) {
	q := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setActor(actor); err != nil {
		return ListOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Actor returns the principal reading the orders.
func (q ListOrdersQuery) Actor() auth.Principal {
	return q.actor
}

func (q *ListOrdersQuery) setActor(actor auth.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	q.actor = actor
	return nil
}

// OrderSummaryResponse is the read model for one order in a listing.
type OrderSummaryResponse struct {
	ID            kernel.UUID
	TrackingCode  string
	CustomerID    kernel.UUID
	CustomerName  string
	PaymentMethod string
	OrderDate     time.Time
	Total         kernel.Money
	Status        string
}
