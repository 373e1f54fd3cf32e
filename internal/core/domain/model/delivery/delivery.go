// Package delivery defines the courier-assignment record attached to an order
// once it leaves Awaiting_Courier. A delivery is a 1:1 extension of an order,
// created at pickup and completed at arrival; the storage layer enforces the
// at-most-one-per-order rule with a uniqueness constraint.
package delivery

import (
	"errors"
	"fmt"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errors.New(
	"Delivery must be created via NewDelivery or RestoreDelivery constructor")

// Delivery records which courier took an order and when.
//
// Invariants:
//   - Must have valid delivery, order, and courier identifiers
//   - Created in OutForDelivery with the pickup time set
//   - Arrival time is set exactly once, by Complete
type Delivery struct {
	id          kernel.UUID
	orderID     kernel.UUID
	courierID   kernel.UUID
	pickupTime  time.Time
	arrivalTime *time.Time
	status      Status

	isConstructed bool
}

// NewDelivery creates a delivery for a courier pickup.
// The new delivery starts in OutForDelivery with no arrival time.
func NewDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	courierID kernel.UUID,
	pickupTime time.Time,
) (*Delivery, error) {
	d := &Delivery{
		pickupTime:    pickupTime,
		status:        OutForDelivery,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setCourierID(courierID),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a delivery from persistence.
func RestoreDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	courierID kernel.UUID,
	pickupTime time.Time,
	arrivalTime *time.Time,
	status Status,
) (*Delivery, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	d, err := NewDelivery(id, orderID, courierID, pickupTime)
	if err != nil {
		return nil, err
	}

	d.arrivalTime = arrivalTime
	d.status = status
	return d, nil
}

// Validate ensures the instance was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares two deliveries by identifier.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the order this delivery fulfills.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// CourierID returns the assigned courier.
func (d *Delivery) CourierID() kernel.UUID {
	return d.courierID
}

// PickupTime returns the time the courier picked up the order.
func (d *Delivery) PickupTime() time.Time {
	return d.pickupTime
}

// ArrivalTime returns the completion time, nil while out for delivery.
func (d *Delivery) ArrivalTime() *time.Time {
	return d.arrivalTime
}

// Status returns the current fulfillment status.
func (d *Delivery) Status() Status {
	return d.status
}

// IsAssignedTo reports whether the delivery belongs to the given courier.
func (d *Delivery) IsAssignedTo(courierID kernel.UUID) bool {
	return d.courierID.IsEqual(courierID)
}

// Complete marks the delivery as arrived at the given time.
// The delivery must be in OutForDelivery.
func (d *Delivery) Complete(arrivalTime time.Time) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if d.status != OutForDelivery {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to complete", d.status),
		)
	}

	d.arrivalTime = &arrivalTime
	d.status = Arrived
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	d.orderID = orderID
	return nil
}

func (d *Delivery) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	d.courierID = courierID
	return nil
}
