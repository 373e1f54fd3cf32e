package queries

import (
	"errors"
	"time"

	"catering/internal/core/application/auth"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrListStaffQueryIsNotConstructed = errors.New(
	"ListStaffQuery must be created via NewListStaffQuery constructor",
)

// ListStaffQuery retrieves the staff roster. Restricted to admin and owner
// principals.
type ListStaffQuery struct { //nolint:recvcheck //using for validation
	actor auth.Principal

	guard guard.ConstructorGuard
}

// NewListStaffQuery creates a staff listing query for the actor.
func NewListStaffQuery(actor auth.Principal) (ListStaffQuery, error) {
	q := ListStaffQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setActor(actor); err != nil {
		return ListStaffQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListStaffQuery) Validate() error {
	return q.guard.Validate(ErrListStaffQueryIsNotConstructed)
}

// Actor returns the principal reading the roster.
func (q ListStaffQuery) Actor() auth.Principal {
	return q.actor
}

func (q *ListStaffQuery) setActor(actor auth.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	q.actor = actor
	return nil
}

// StaffResponse is the read model for one staff account.
type StaffResponse struct {
	ID        kernel.UUID
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
}
