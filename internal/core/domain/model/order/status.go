package order

import (
	"fmt"

	"catering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The workflow as designed is
//
//	Awaiting_Confirmation ──> Processing ──> Awaiting_Courier ──> Delivered
//
// but SetStatus on the aggregate deliberately does not restrict transitions:
// any admin/owner may set any status at any time, matching the observed
// behavior of the system. CanTransitionTo exposes the forward-only workflow
// as an advisory check for callers that want to harden it.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// AwaitingConfirmation is the initial status at checkout.
	AwaitingConfirmation

	// Processing indicates staff confirmed the order and the kitchen is working.
	Processing

	// AwaitingCourier indicates the order is ready for courier pickup.
	AwaitingCourier

	// Delivered indicates the courier completed the delivery.
	// Reached through the delivery workflow, never through the
	// status-update operation directly.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:              "Unknown",
		AwaitingConfirmation: "Awaiting_Confirmation",
		Processing:           "Processing",
		AwaitingCourier:      "Awaiting_Courier",
		Delivered:            "Delivered",
	}
}

// StatusFromString parses a status from its wire representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// String returns the wire name of the status, "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks that the status belongs to the closed set.
func (s Status) Validate() error {
	switch s {
	case AwaitingConfirmation, Processing, AwaitingCourier, Delivered:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid order status", s),
		)
	}
}

// CanTransitionTo reports whether moving to next follows the forward-only
// workflow. Advisory only: the update operation does not consult it.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case AwaitingConfirmation:
		return next == Processing
	case Processing:
		return next == AwaitingCourier
	case AwaitingCourier:
		return next == Delivered
	default:
		return false
	}
}
