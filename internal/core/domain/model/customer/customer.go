// Package customer defines the storefront customer aggregate.
package customer

import (
	"errors"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New(
	"Customer must be created via NewCustomer or RestoreCustomer constructor")

// Customer represents a self-registered storefront customer.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Name, email, and password hash must be non-empty
//
// Phone, birthdate, and address are optional contact fields.
type Customer struct {
	id           kernel.UUID
	name         string
	email        string
	passwordHash string
	phone        string
	birthdate    *time.Time
	address      string
	createdAt    time.Time

	isConstructed bool
}

// NewCustomer creates a validated customer.
// The password hash must already be computed by the caller.
func NewCustomer(
	id kernel.UUID,
	name string,
	email string,
	passwordHash string,
	phone string,
	birthdate *time.Time,
	address string,
	createdAt time.Time,
) (*Customer, error) {
	c := &Customer{
		phone:         phone,
		birthdate:     birthdate,
		address:       address,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
		c.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a customer from persistence.
func RestoreCustomer(
	id kernel.UUID,
	name string,
	email string,
	passwordHash string,
	phone string,
	birthdate *time.Time,
	address string,
	createdAt time.Time,
) (*Customer, error) {
	return NewCustomer(id, name, email, passwordHash, phone, birthdate, address, createdAt)
}

// Validate ensures the instance was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// IsEqual compares two customers by identifier.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the login email.
func (c *Customer) Email() string {
	return c.email
}

// PasswordHash returns the stored credential hash.
func (c *Customer) PasswordHash() string {
	return c.passwordHash
}

// Phone returns the optional contact phone, empty when unset.
func (c *Customer) Phone() string {
	return c.phone
}

// Birthdate returns the optional birthdate, nil when unset.
func (c *Customer) Birthdate() *time.Time {
	return c.birthdate
}

// Address returns the optional delivery address, empty when unset.
func (c *Customer) Address() string {
	return c.address
}

// CreatedAt returns the registration time.
func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *Customer) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	c.passwordHash = passwordHash
	return nil
}
