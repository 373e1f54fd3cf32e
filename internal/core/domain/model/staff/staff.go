// Package staff defines the back-office account aggregate.
// Staff accounts are created by admins/owners; a role is fixed at creation
// and has no edit operation.
package staff

import (
	"errors"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/role"
	"catering/internal/pkg/errs"
)

// ErrStaffIsNotConstructed is returned when a Staff instance was not created
// through NewStaff or RestoreStaff.
var ErrStaffIsNotConstructed = errors.New("Staff must be created via NewStaff or RestoreStaff constructor")

// Staff represents a back-office account: admin, owner, or courier.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Name, email, and password hash must be non-empty
//   - Role must be a staff role (admin, owner, courier)
type Staff struct {
	id           kernel.UUID
	name         string
	email        string
	passwordHash string
	role         role.Role
	createdAt    time.Time

	isConstructed bool
}

// NewStaff creates a validated staff account.
// The password hash must already be computed by the caller; the aggregate
// never sees a plaintext credential.
func NewStaff(
	id kernel.UUID,
	name string,
	email string,
	passwordHash string,
	staffRole role.Role,
	createdAt time.Time,
) (*Staff, error) {
	s := &Staff{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setEmail(email),
		s.setPasswordHash(passwordHash),
		s.setRole(staffRole),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStaff reconstructs a staff account from persistence.
func RestoreStaff(
	id kernel.UUID,
	name string,
	email string,
	passwordHash string,
	staffRole role.Role,
	createdAt time.Time,
) (*Staff, error) {
	return NewStaff(id, name, email, passwordHash, staffRole, createdAt)
}

// Validate ensures the instance was created through a constructor.
func (s *Staff) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStaffIsNotConstructed
	}
	return nil
}

// IsEqual compares two staff accounts by identifier.
func (s *Staff) IsEqual(other *Staff) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the account's unique identifier.
func (s *Staff) ID() kernel.UUID {
	return s.id
}

// Name returns the display name.
func (s *Staff) Name() string {
	return s.name
}

// Email returns the login email.
func (s *Staff) Email() string {
	return s.email
}

// PasswordHash returns the stored credential hash.
func (s *Staff) PasswordHash() string {
	return s.passwordHash
}

// Role returns the account's fixed role.
func (s *Staff) Role() role.Role {
	return s.role
}

// CreatedAt returns the account creation time.
func (s *Staff) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Staff) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Staff) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Staff) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	s.email = email
	return nil
}

func (s *Staff) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	s.passwordHash = passwordHash
	return nil
}

func (s *Staff) setRole(staffRole role.Role) error {
	if err := staffRole.Validate(); err != nil {
		return err
	}
	if !staffRole.IsStaff() {
		return errs.NewValueIsInvalidError("role")
	}
	s.role = staffRole
	return nil
}
