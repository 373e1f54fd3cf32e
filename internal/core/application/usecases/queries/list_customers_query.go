package queries

import (
	"errors"
	"time"

	"catering/internal/core/application/auth"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrListCustomersQueryIsNotConstructed = errors.New(
	"ListCustomersQuery must be created via NewListCustomersQuery constructor",
)

// ListCustomersQuery retrieves the customer roster for the back office.
// Restricted to admin and owner principals.
type ListCustomersQuery struct { //nolint:recvcheck //using for validation
	actor auth.Principal

	guard guard.ConstructorGuard
}

// NewListCustomersQuery creates a customer listing query for the actor.
func NewListCustomersQuery(actor auth.Principal) (ListCustomersQuery, error) {
	q := ListCustomersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setActor(actor); err != nil {
		return ListCustomersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListCustomersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomersQueryIsNotConstructed)
}

// Actor returns the principal reading the roster.
func (q ListCustomersQuery) Actor() auth.Principal {
	return q.actor
}

func (q *ListCustomersQuery) setActor(actor auth.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	q.actor = actor
	return nil
}

// CustomerResponse is the read model for one customer. The password hash is
// never part of a read model.
type CustomerResponse struct {
	ID        kernel.UUID
	Name      string
	Email     string
	Phone     string
	Birthdate *time.Time
	Address   string
	CreatedAt time.Time
}
