package commands

import (
	"errors"

	"catering/internal/core/application/auth"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrPickupDeliveryCommandIsNotConstructed = errors.New(
	"PickupDeliveryCommand must be created via NewPickupDeliveryCommand constructor",
)

// PickupDeliveryCommand represents a courier claiming an order for delivery.
type PickupDeliveryCommand struct { //nolint:recvcheck //using for validation
	actor   auth.Principal
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPickupDeliveryCommand creates a command to claim an order.
func NewPickupDeliveryCommand(
	actor auth.Principal,
	orderID kernel.UUID,
) (PickupDeliveryCommand, error) {
	cmd := PickupDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
	); err != nil {
		return PickupDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PickupDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrPickupDeliveryCommandIsNotConstructed)
}

// Actor returns the courier claiming the order.
func (c PickupDeliveryCommand) Actor() auth.Principal {
	return c.actor
}

// OrderID returns the identifier of the order being claimed.
func (c PickupDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *PickupDeliveryCommand) setActor(actor auth.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *PickupDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
