package commands

import (
	"errors"
	"time"

	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var ErrRegisterCustomerCommandIsNotConstructed = errors.New(
	"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
)

// RegisterCustomerCommand represents a storefront self-registration request.
// Phone, birthdate, and address are optional profile fields.
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	name      string
	email     string
	password  string
	phone     string
	birthdate *time.Time
	address   string

	guard guard.ConstructorGuard
}

// NewRegisterCustomerCommand creates a command to register a new customer.
// Name, email, and password are required.
func NewRegisterCustomerCommand(
	name string,
	email string,
	password string,
	phone string,
	birthdate *time.Time,
	address string,
) (RegisterCustomerCommand, error) {
	cmd := RegisterCustomerCommand{
		phone:     phone,
		birthdate: birthdate,
		address:   address,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return RegisterCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

// Name returns the customer's display name.
func (c RegisterCustomerCommand) Name() string {
	return c.name
}

// Email returns the login email.
func (c RegisterCustomerCommand) Email() string {
	return c.email
}

// Password returns the plaintext password. It is hashed by the handler and
// never persisted.
func (c RegisterCustomerCommand) Password() string {
	return c.password
}

// Phone returns the optional contact phone.
func (c RegisterCustomerCommand) Phone() string {
	return c.phone
}

// Birthdate returns the optional birthdate.
func (c RegisterCustomerCommand) Birthdate() *time.Time {
	return c.birthdate
}

// Address returns the optional delivery address.
func (c RegisterCustomerCommand) Address() string {
	return c.address
}

func (c *RegisterCustomerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *RegisterCustomerCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *RegisterCustomerCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}
