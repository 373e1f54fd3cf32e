package queries

import (
	"errors"

	"catering/internal/core/application/auth"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its lines. Customers may only read
// their own orders; staff may read any.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	actor   auth.Principal
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a single-order query for the actor.
func NewGetOrderQuery(actor auth.Principal, orderID kernel.UUID) (GetOrderQuery, error) {
	q := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setActor(actor),
		q.setOrderID(orderID),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// Actor returns the principal reading the order.
func (q GetOrderQuery) Actor() auth.Principal {
	return q.actor
}

// OrderID returns the identifier being fetched.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setActor(actor auth.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	q.actor = actor
	return nil
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// OrderLineResponse is the read model for one order line.
type OrderLineResponse struct {
	ID          kernel.UUID
	PackageID   kernel.UUID
	PackageName string
	Subtotal    kernel.Money
}

// OrderDetailResponse is the read model for a full order.
type OrderDetailResponse struct {
	OrderSummaryResponse
	Lines []OrderLineResponse
}
