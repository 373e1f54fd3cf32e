// Package role defines the closed set of principal roles and the predicate
// checks consumed by every protected operation. Centralizing the predicates
// here keeps route guards from comparing raw strings ad hoc.
package role

import (
	"fmt"

	"catering/internal/pkg/errs"
)

// Role is the closed enumeration of principal roles.
//
// Staff accounts carry Admin, Owner, or Courier; customers always carry
// Customer. The zero value Unknown is invalid.
type Role int

const (
	// Unknown represents an invalid or undefined role.
	Unknown Role = iota

	// Customer is a self-registered storefront customer.
	Customer

	// Courier is a staff member who picks up and delivers orders.
	Courier

	// Admin is a staff member managing packages, orders, and accounts.
	Admin

	// Owner has the same privileges as Admin.
	Owner
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		Unknown:  "unknown",
		Customer: "customer",
		Courier:  "courier",
		Admin:    "admin",
		Owner:    "owner",
	}
}

// FromString parses a role from its wire representation.
// Returns an error for anything outside the closed set.
func FromString(s string) (Role, error) {
	for r, str := range getRoleStrings() {
		if r != Unknown && str == s {
			return r, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// String returns the wire name of the role, "unknown" for invalid values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the role belongs to the closed set.
func (r Role) Validate() error {
	switch r {
	case Customer, Courier, Admin, Owner:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
}

// IsCustomer reports whether the role may place orders and view its own orders.
func (r Role) IsCustomer() bool {
	return r == Customer
}

// IsCourier reports whether the role may work delivery tasks.
// Admins may act as couriers.
func (r Role) IsCourier() bool {
	return r == Courier || r == Admin
}

// IsAdmin reports whether the role may manage packages, orders, and accounts.
func (r Role) IsAdmin() bool {
	return r == Admin || r == Owner
}

// IsStaff reports whether the role belongs to a back-office account.
// Staff principals resolve their profile against the staff table.
func (r Role) IsStaff() bool {
	return r == Admin || r == Owner || r == Courier
}
