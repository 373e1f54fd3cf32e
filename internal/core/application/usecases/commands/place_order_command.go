package commands

import (
	"errors"

	"catering/internal/core/application/auth"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a customer checkout: the chosen payment
// method and one entry per ordered package.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	actor           auth.Principal
	paymentMethodID kernel.UUID
	packageIDs      []kernel.UUID

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order. At least one
// package is required and every identifier must be constructed.
func NewPlaceOrderCommand(
	actor auth.Principal,
	paymentMethodID kernel.UUID,
	packageIDs []kernel.UUID,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setPaymentMethodID(paymentMethodID),
		cmd.setPackageIDs(packageIDs),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Actor returns the customer placing the order.
func (c PlaceOrderCommand) Actor() auth.Principal {
	return c.actor
}

// PaymentMethodID returns the chosen payment method.
func (c PlaceOrderCommand) PaymentMethodID() kernel.UUID {
	return c.paymentMethodID
}

// PackageIDs returns the ordered packages, one entry per line.
func (c PlaceOrderCommand) PackageIDs() []kernel.UUID {
	return c.packageIDs
}

func (c *PlaceOrderCommand) setActor(actor auth.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *PlaceOrderCommand) setPaymentMethodID(paymentMethodID kernel.UUID) error {
	if err := paymentMethodID.Validate(); err != nil {
		return err
	}

	c.paymentMethodID = paymentMethodID
	return nil
}

func (c *PlaceOrderCommand) setPackageIDs(packageIDs []kernel.UUID) error {
	if len(packageIDs) == 0 {
		return errs.NewValueIsRequiredError("packageIds")
	}
	for _, id := range packageIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.packageIDs = packageIDs
	return nil
}
