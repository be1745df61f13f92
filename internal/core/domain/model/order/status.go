package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──┬──> Saved ──────┬──> Paid
//	          │      │         │
//	          └──> KitchenTicketed
//
//	any non-terminal state ──> Cancelled
//
// Paid and Cancelled are terminal: no further transitions are allowed.
// A kitchen ticket cannot be recalled, so KitchenTicketed never moves
// back to Saved.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a freshly submitted draft that
	// has neither been saved nor sent to the kitchen.
	StatusPending

	// StatusKitchenTicketed indicates the order has been fired to the kitchen.
	// Entering this status forces every Pending item to Preparing.
	StatusKitchenTicketed

	// StatusSaved indicates the order has been stored without firing a
	// kitchen ticket yet.
	StatusSaved

	// StatusPaid indicates the order has been settled. Terminal.
	StatusPaid

	// StatusCancelled indicates the order was cancelled. Terminal; entering
	// it forces every item to Cancelled.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:         "Unknown",
		StatusPending:         "Pending",
		StatusKitchenTicketed: "KitchenTicketed",
		StatusSaved:           "Saved",
		StatusPaid:            "Paid",
		StatusCancelled:       "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:         "Pending",
		StatusKitchenTicketed: "KitchenTicketed",
		StatusSaved:           "Saved",
		StatusPaid:            "Paid",
		StatusCancelled:       "Cancelled",
	}
}

// StatusFromString parses a status name as received from the presentation layer.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"order status",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, KitchenTicketed, Saved, Paid, Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("%d is not a valid order status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements the fmt.Stringer interface and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusPaid || s == StatusCancelled
}

// TransitionTo validates the transition from the receiver to next and returns
// next on success.
//
// Valid transitions:
//   - Pending -> Saved, KitchenTicketed
//   - Saved -> KitchenTicketed, Paid
//   - KitchenTicketed -> Paid
//   - any non-terminal -> Cancelled
//   - any non-terminal -> itself (field-only update)
//
// A transition from a terminal status, or any other combination, fails with
// InvalidStateTransition.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return StatusUnknown, err
	}

	if s.IsTerminal() {
		return StatusUnknown, errs.NewInvalidStateTransitionError("order status", s.String(), next.String())
	}

	if next == s || next == StatusCancelled {
		return next, nil
	}

	allowed := map[Status][]Status{
		StatusPending:         {StatusSaved, StatusKitchenTicketed},
		StatusSaved:           {StatusKitchenTicketed, StatusPaid},
		StatusKitchenTicketed: {StatusPaid},
	}

	for _, candidate := range allowed[s] {
		if candidate == next {
			return next, nil
		}
	}

	return StatusUnknown, errs.NewInvalidStateTransitionError("order status", s.String(), next.String())
}
