package queries

import (
	"errors"

	"catering/internal/core/application/auth"
	"catering/internal/pkg/guard"
)

var ErrGetProfileQueryIsNotConstructed = errors.New(
	"GetProfileQuery must be created via NewGetProfileQuery constructor",
)

// GetProfileQuery resolves the acting principal's own account record.
// Staff roles resolve against the users table, the customer role against
// the customers table.
type GetProfileQuery struct { //nolint:recvcheck //using for validation
	actor auth.Principal

	guard guard.ConstructorGuard
}

// NewGetProfileQuery creates a profile query for the actor.
func NewGetProfileQuery(actor auth.Principal) (GetProfileQuery, error) {
	q := GetProfileQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setActor(actor); err != nil {
		return GetProfileQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetProfileQueryIsNotConstructed)
}

// Actor returns the principal whose profile is being read.
func (q GetProfileQuery) Actor() auth.Principal {
	return q.actor
}

func (q *GetProfileQuery) setActor(actor auth.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	q.actor = actor
	return nil
}

// ProfileResponse is the read model for the session owner's account.
// Customer-only fields stay empty for staff and vice versa.
type ProfileResponse struct {
	CustomerResponse
	Role string
}
