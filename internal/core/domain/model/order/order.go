// Package order defines the order aggregate: a customer's purchase of one or
// more catalog packages with snapshot pricing and a status lifecycle.
package order

import (
	"errors"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order is the aggregate root for a customer purchase. It strictly owns its
// lines: order and lines are created together in one atomic unit and lines
// never change afterwards.
//
// Invariants:
//   - Must have valid order, customer, and payment-method identifiers
//   - Must have a non-empty tracking code and at least one line
//   - Total always equals the exact sum of line subtotals at creation time
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	paymentMethodID kernel.UUID
	trackingCode    string
	orderDate       time.Time
	total           kernel.Money
	status          Status
	lines           []Line

	isConstructed bool
}

// NewOrder creates a validated order from its line set. The total is computed
// here as the sum of line subtotals; callers never pass a total. The initial
// status is AwaitingConfirmation and the order date is the creation time.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	paymentMethodID kernel.UUID,
	trackingCode string,
	orderDate time.Time,
	lines []Line,
) (*Order, error) {
	o := &Order{
		orderDate:     orderDate,
		status:        AwaitingConfirmation,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setPaymentMethodID(paymentMethodID),
		o.setTrackingCode(trackingCode),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	o.total = sumSubtotals(o.lines)
	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its stored
// status and total. The stored total is trusted as the creation-time sum.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	paymentMethodID kernel.UUID,
	trackingCode string,
	orderDate time.Time,
	total kernel.Money,
	status Status,
	lines []Line,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o, err := NewOrder(id, customerID, paymentMethodID, trackingCode, orderDate, lines)
	if err != nil {
		return nil, err
	}

	o.status = status
	o.total = total
	return o, nil
}

// Validate ensures the instance was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// PaymentMethodID returns the referenced payment method.
func (o *Order) PaymentMethodID() kernel.UUID {
	return o.paymentMethodID
}

// TrackingCode returns the human-readable tracking code.
func (o *Order) TrackingCode() string {
	return o.trackingCode
}

// OrderDate returns the creation time.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Total returns the creation-time sum of line subtotals.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Lines returns the order's line set.
func (o *Order) Lines() []Line {
	return o.lines
}

// IsOwnedBy reports whether the order belongs to the given customer.
func (o *Order) IsOwnedBy(customerID kernel.UUID) bool {
	return o.customerID.IsEqual(customerID)
}

// SetStatus replaces the order status with any valid status value.
// No transition legality is enforced; see Status.CanTransitionTo.
func (o *Order) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func sumSubtotals(lines []Line) kernel.Money {
	total := kernel.ZeroMoney()
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setPaymentMethodID(paymentMethodID kernel.UUID) error {
	if err := paymentMethodID.Validate(); err != nil {
		return err
	}
	o.paymentMethodID = paymentMethodID
	return nil
}

func (o *Order) setTrackingCode(trackingCode string) error {
	if trackingCode == "" {
		return errs.NewValueIsRequiredError("trackingCode")
	}
	o.trackingCode = trackingCode
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	o.lines = lines
	return nil
}
