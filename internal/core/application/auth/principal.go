// Package auth provides session-token issuance and verification plus
// credential hashing. A resolved token yields a Principal; every protected
// use case takes the principal as its actor and checks the matching role
// predicate before doing anything else.
package auth

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/role"
)

// Principal is the authenticated identity resolved from a session token.
type Principal struct {
	ID    kernel.UUID
	Email string
	Role  role.Role
}

// NewPrincipal creates a validated principal.
func NewPrincipal(id kernel.UUID, email string, r role.Role) (Principal, error) {
	if err := errors.Join(id.Validate(), r.Validate()); err != nil {
		return Principal{}, err
	}

	return Principal{ID: id, Email: email, Role: r}, nil
}

// Validate checks the principal carries a constructed identifier and a
// valid role.
func (p Principal) Validate() error {
	return errors.Join(p.ID.Validate(), p.Role.Validate())
}
