package order

import (
	"fmt"

	"tableside/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a strictly forward chain:
//
//	Paid ──> InPrep ──> Ready ──> Served
//
// Each transition moves exactly one step; Served is terminal. Status is a
// value object that validates transitions and provides the wire strings used
// in JSON payloads and persistence.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Paid is the initial status, set at creation when the waiter collects
	// payment. It is never entered by a transition.
	Paid

	// InPrep indicates the kitchen is preparing the order.
	InPrep

	// Ready indicates the kitchen has finished and the order awaits pickup.
	Ready

	// Served indicates the order reached the table. Terminal: a served order
	// is immutable.
	Served
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Paid:   "paid",
		InPrep: "in-prep",
		Ready:  "ready",
		Served: "served",
	}
}

// StatusFromString parses the wire representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status value is one of the four defined states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("paid", "in-prep", "ready",
// "served"), or "unknown" for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == Served
}

// Next returns the immediate successor in the forward chain.
// Returns an InvalidTransitionError for Served (terminal) and for values
// outside the chain.
func (s Status) Next() (Status, error) {
	switch s {
	case Paid:
		return InPrep, nil
	case InPrep:
		return Ready, nil
	case Ready:
		return Served, nil
	case Served:
		return UnknownStatus, errs.NewInvalidTransitionErrorWithCause(
			s.String(), "", fmt.Errorf("order is already served"))
	default:
		return UnknownStatus, errs.NewInvalidTransitionErrorWithCause(
			s.String(), "", fmt.Errorf("%d is not a valid status", s))
	}
}

// Advance validates that target is the immediate successor of the current
// status and returns it. Re-entering a past state, skipping a state, or
// leaving Served all fail with an InvalidTransitionError; the receiver is a
// value, so failed attempts cannot corrupt state.
func (s Status) Advance(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return UnknownStatus, errs.NewInvalidTransitionErrorWithCause(s.String(), target.String(), err)
	}

	next, err := s.Next()
	if err != nil {
		return UnknownStatus, errs.NewInvalidTransitionError(s.String(), target.String())
	}

	if target != next {
		return UnknownStatus, errs.NewInvalidTransitionError(s.String(), target.String())
	}

	return target, nil
}
