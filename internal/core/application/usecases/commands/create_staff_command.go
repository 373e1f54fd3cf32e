package commands

import (
	"errors"

	"catering/internal/core/application/auth"
	"catering/internal/core/domain/model/role"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var ErrCreateStaffCommandIsNotConstructed = errors.New(
	"CreateStaffCommand must be created via NewCreateStaffCommand constructor",
)

// CreateStaffCommand represents an admin request to create a back-office
// account with one of the staff roles.
type CreateStaffCommand struct { //nolint:recvcheck //using for validation
	actor     auth.Principal
	name      string
	email     string
	password  string
	staffRole role.Role

	guard guard.ConstructorGuard
}

// NewCreateStaffCommand creates a command to add a staff account. The role
// must be one of the staff roles; customers are never created this way.
func NewCreateStaffCommand(
	actor auth.Principal,
	name string,
	email string,
	password string,
	staffRole role.Role,
) (CreateStaffCommand, error) {
	cmd := CreateStaffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setStaffRole(staffRole),
	); err != nil {
		return CreateStaffCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateStaffCommand) Validate() error {
	return c.guard.Validate(ErrCreateStaffCommandIsNotConstructed)
}

// Actor returns the principal performing the operation.
func (c CreateStaffCommand) Actor() auth.Principal {
	return c.actor
}

// Name returns the new account's display name.
func (c CreateStaffCommand) Name() string {
	return c.name
}

// Email returns the new account's login email.
func (c CreateStaffCommand) Email() string {
	return c.email
}

// Password returns the plaintext password to be hashed by the handler.
func (c CreateStaffCommand) Password() string {
	return c.password
}

// StaffRole returns the role the new account will carry.
func (c CreateStaffCommand) StaffRole() role.Role {
	return c.staffRole
}

func (c *CreateStaffCommand) setActor(actor auth.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateStaffCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateStaffCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *CreateStaffCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}

func (c *CreateStaffCommand) setStaffRole(staffRole role.Role) error {
	if err := staffRole.Validate(); err != nil {
		return err
	}
	if !staffRole.IsStaff() {
		return errs.NewValueIsInvalidError("role")
	}

	c.staffRole = staffRole
	return nil
}
