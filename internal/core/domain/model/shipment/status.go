package shipment

import (
	"fmt"

	"tracking/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// The main progress sequence is:
//
//	Pending -> PickedUp -> InTransit -> OutForDelivery -> Delivered
//
// Cancelled and Returned are terminal side branches that are not part of the
// main sequence and have no step position.
//
// Transitions are deliberately unrestricted: any status may follow any other,
// including moving away from Delivered (e.g. to correct an erroneous mark).
// The permissiveness lives behind the TransitionPolicy hook, not here.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at shipment creation.
	Pending

	// PickedUp indicates the carrier has collected the cargo.
	PickedUp

	// InTransit indicates the shipment is moving between locations.
	InTransit

	// OutForDelivery indicates the shipment is on its final leg.
	OutForDelivery

	// Delivered indicates the shipment reached its destination.
	// Reaching this status stamps the shipment's actual delivery time.
	Delivered

	// Cancelled is a terminal side branch outside the main sequence.
	Cancelled

	// Returned is a terminal side branch outside the main sequence.
	Returned
)

// NoStep is returned by Step for statuses outside the main progress sequence.
const NoStep = -1

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Pending:        "PENDING",
		PickedUp:       "PICKED_UP",
		InTransit:      "IN_TRANSIT",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
		Returned:       "RETURNED",
	}
}

// DisplayInfo is the presentation metadata for a status, decoupled from any
// rendering concern so both the internal dashboard and the public tracking
// views can share it.
type DisplayInfo struct {
	// Label is the human-readable status name.
	Label string

	// Step is the zero-based position in the main progress sequence,
	// or NoStep for Cancelled and Returned.
	Step int
}

func getDisplayInfos() map[Status]DisplayInfo {
	return map[Status]DisplayInfo{
		Pending:        {Label: "Pending", Step: 0},
		PickedUp:       {Label: "Picked Up", Step: 1},
		InTransit:      {Label: "In Transit", Step: 2},
		OutForDelivery: {Label: "Out for Delivery", Step: 3},
		Delivered:      {Label: "Delivered", Step: 4},
		Cancelled:      {Label: "Cancelled", Step: NoStep},
		Returned:       {Label: "Returned", Step: NoStep},
	}
}

// StatusFromString parses the wire representation of a status
// (e.g. "IN_TRANSIT"). Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a recognized status", s),
	)
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getDisplayInfos()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", int(s)),
		)
	}
	return nil
}

// String returns the wire representation of the status (e.g. "PICKED_UP").
// Implements fmt.Stringer and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Display returns the presentation metadata for the status.
// The second return value is false for invalid statuses.
func (s Status) Display() (DisplayInfo, bool) {
	info, ok := getDisplayInfos()[s]
	return info, ok
}

// Step returns the zero-based position of the status in the main progress
// sequence. The second return value is false for Cancelled, Returned, and
// invalid statuses, which have no step position.
func (s Status) Step() (int, bool) {
	info, ok := getDisplayInfos()[s]
	if !ok || info.Step == NoStep {
		return NoStep, false
	}
	return info.Step, true
}

// IsTerminal reports whether the status ends the shipment lifecycle.
// Delivered, Cancelled, and Returned are terminal. Terminal statuses do not
// freeze the shipment: further updates remain allowed under the default
// transition policy.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Returned
}

// TransitionPolicy decides whether a status transition is allowed.
// It is the single substitution point for a stricter state machine:
// everything else in the aggregate consults the policy and nothing else.
type TransitionPolicy func(from, to Status) error

// AllowAnyTransition permits every transition between valid statuses.
// The system trusts the operator to correct mistakes, including moving a
// shipment away from Delivered.
func AllowAnyTransition(_, _ Status) error {
	return nil
}
