package delivery

import (
	"fmt"

	"catering/internal/pkg/errs"
)

// Status represents the fulfillment state of a delivery.
//
// State transitions:
//
//	Out_For_Delivery ──> Arrived
//
// A delivery is created in Out_For_Delivery at courier pickup and reaches
// Arrived exactly once, at completion.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// OutForDelivery indicates the courier has picked up the order.
	OutForDelivery

	// Arrived indicates the order reached its destination.
	// This is a final state.
	Arrived
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		OutForDelivery: "Out_For_Delivery",
		Arrived:        "Arrived",
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
		fmt.Errorf("%q is not a valid delivery status", s),
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
	case OutForDelivery, Arrived:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid delivery status", s),
		)
	}
}
