package task

import (
	"fmt"

	"courier/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery task.
// It implements a state machine with defined transitions to ensure
// tasks follow the correct fulfillment workflow.
//
// State transitions:
//
//	Assigned ──> OutForDelivery ──> Delivered
//	    │               │
//	    └───────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal; no transition leaves them.
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusAssigned is the initial status when a delivery task is created
	// from a courier assignment. The courier has not left the depot yet.
	StatusAssigned

	// StatusOutForDelivery indicates the courier is en route to the customer.
	// The order service tracks courier location while a task is in this status.
	StatusOutForDelivery

	// StatusDelivered indicates the customer confirmed receipt.
	// This is a terminal state.
	StatusDelivered

	// StatusCancelled indicates the task was cancelled before completion.
	// This is a terminal state.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "UNKNOWN",
		StatusAssigned:       "ASSIGNED",
		StatusOutForDelivery: "OUT_FOR_DELIVERY",
		StatusDelivered:      "DELIVERED",
		StatusCancelled:      "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusAssigned:       "ASSIGNED",
		StatusOutForDelivery: "OUT_FOR_DELIVERY",
		StatusDelivered:      "DELIVERED",
		StatusCancelled:      "CANCELLED",
	}
}

// StatusFromString parses a status from its persisted/API representation.
// Returns an error for anything outside the four valid statuses.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the four valid statuses.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status.
// Implements the fmt.Stringer interface and is safe to call on any
// Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Dispatch transitions the status to OutForDelivery.
//
// Valid transitions:
//   - Assigned -> OutForDelivery
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Dispatch() (Status, error) {
	if s != StatusAssigned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to mark out for delivery", s),
		)
	}

	return StatusOutForDelivery, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - OutForDelivery -> Delivered
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Deliver() (Status, error) {
	if s != StatusOutForDelivery {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to deliver", s),
		)
	}

	return StatusDelivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Assigned -> Cancelled
//   - OutForDelivery -> Cancelled
//
// Cancellation of an already terminal task is rejected, never silently accepted.
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Cancel() (Status, error) {
	if s != StatusAssigned && s != StatusOutForDelivery {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s),
		)
	}

	return StatusCancelled, nil
}
