package queries

import (
	"errors"

	"catering/internal/pkg/guard"
)

var ErrGetOrderBacklogQueryIsNotConstructed = errors.New(
	"GetOrderBacklogQuery must be created via NewGetOrderBacklogQuery constructor",
)

// GetOrderBacklogQuery counts orders waiting on staff action. Consumed by
// the periodic backlog reporter, not exposed over HTTP.
type GetOrderBacklogQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderBacklogQuery creates a parameterless backlog query.
func NewGetOrderBacklogQuery() GetOrderBacklogQuery {
	return GetOrderBacklogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderBacklogQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderBacklogQueryIsNotConstructed)
}

// OrderBacklogResponse is the read model for the backlog reporter.
type OrderBacklogResponse struct {
	AwaitingConfirmation int64
	AwaitingCourier      int64
}
