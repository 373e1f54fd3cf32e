// Package payment defines the payment-method aggregate: a named way to pay
// (bank transfer, cash) with zero or more static account detail records.
// There is no gateway integration; these are reference records an order
// points at.
package payment

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

// ErrMethodIsNotConstructed is returned when a Method instance was not
// created through NewMethod or RestoreMethod.
var ErrMethodIsNotConstructed = errors.New("Method must be created via NewMethod or RestoreMethod constructor")

// ErrDetailIsNotConstructed is returned when a Detail instance was not
// created through NewDetail or RestoreDetail.
var ErrDetailIsNotConstructed = errors.New("Detail must be created via NewDetail or RestoreDetail constructor")

// Method is a named payment method owning its detail records.
type Method struct {
	id      kernel.UUID
	name    string
	details []Detail

	isConstructed bool
}

// Detail is one account record under a method: where to pay and the
// account number, with an optional logo reference.
type Detail struct {
	id            kernel.UUID
	accountNumber string
	accountPlace  string
	logo          string

	isConstructed bool
}

// NewMethod creates a validated payment method.
func NewMethod(id kernel.UUID, name string, details []Detail) (*Method, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	for _, d := range details {
		if err := d.Validate(); err != nil {
			return nil, err
		}
	}

	return &Method{
		id:            id,
		name:          name,
		details:       details,
		isConstructed: true,
	}, nil
}

// RestoreMethod reconstructs a payment method from persistence.
func RestoreMethod(id kernel.UUID, name string, details []Detail) (*Method, error) {
	return NewMethod(id, name, details)
}

// Validate ensures the instance was created through a constructor.
func (m *Method) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMethodIsNotConstructed
	}
	return nil
}

// ID returns the method's unique identifier.
func (m *Method) ID() kernel.UUID {
	return m.id
}

// Name returns the method's display name, e.g. "Bank Transfer".
func (m *Method) Name() string {
	return m.name
}

// Details returns the account detail records.
func (m *Method) Details() []Detail {
	return m.details
}

// NewDetail creates a validated account detail record.
func NewDetail(id kernel.UUID, accountNumber string, accountPlace string, logo string) (Detail, error) {
	if err := id.Validate(); err != nil {
		return Detail{}, err
	}
	if accountNumber == "" {
		return Detail{}, errs.NewValueIsRequiredError("accountNumber")
	}
	if accountPlace == "" {
		return Detail{}, errs.NewValueIsRequiredError("accountPlace")
	}

	return Detail{
		id:            id,
		accountNumber: accountNumber,
		accountPlace:  accountPlace,
		logo:          logo,
		isConstructed: true,
	}, nil
}

// RestoreDetail reconstructs a detail record from persistence.
func RestoreDetail(id kernel.UUID, accountNumber string, accountPlace string, logo string) (Detail, error) {
	return NewDetail(id, accountNumber, accountPlace, logo)
}

// Validate ensures the detail was created through a constructor.
func (d Detail) Validate() error {
	if !d.isConstructed {
		return ErrDetailIsNotConstructed
	}
	return nil
}

// ID returns the detail's unique identifier.
func (d Detail) ID() kernel.UUID {
	return d.id
}

// AccountNumber returns the account number to pay into.
func (d Detail) AccountNumber() string {
	return d.accountNumber
}

// AccountPlace returns the bank and account holder description.
func (d Detail) AccountPlace() string {
	return d.accountPlace
}

// Logo returns the optional logo reference, empty when unset.
func (d Detail) Logo() string {
	return d.logo
}
