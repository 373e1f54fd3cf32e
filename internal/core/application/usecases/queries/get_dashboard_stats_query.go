package queries

import (
	"errors"

	"catering/internal/core/application/auth"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// GetDashboardStatsQuery retrieves the back-office landing page numbers.
// Restricted to admin and owner principals.
type GetDashboardStatsQuery struct { //nolint:recvcheck //using for validation
	actor auth.Principal

	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery creates a dashboard query for the actor.
func NewGetDashboardStatsQuery(actor auth.Principal) (GetDashboardStatsQuery, error) {
	q := GetDashboardStatsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setActor(actor); err != nil {
		return GetDashboardStatsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// Actor returns the principal reading the dashboard.
func (q GetDashboardStatsQuery) Actor() auth.Principal {
	return q.actor
}

func (q *GetDashboardStatsQuery) setActor(actor auth.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	q.actor = actor
	return nil
}

// DashboardStatsResponse is the read model for the back-office dashboard:
// headline counts, delivered revenue, and the most recent orders.
type DashboardStatsResponse struct {
	TotalOrders   int64
	PendingOrders int64
	Customers     int64
	Packages      int64
	Revenue       kernel.Money
	RecentOrders  []OrderSummaryResponse
}
