package staff

import (
	"fmt"

	"tableside/internal/pkg/errs"
)

// Role identifies which of the three restaurant roles an actor or a live
// connection belongs to. It is a closed enum: broadcasts are scoped by role,
// so every switch over Role must handle exactly Waiter, Cashier, and Manager.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Waiter places orders and receives status updates plus cross-waiter alerts.
	Waiter

	// Cashier advances orders through the kitchen flow.
	Cashier

	// Manager receives everything cashiers do and may advance orders as well.
	Manager
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		Waiter:  "waiter",
		Cashier: "cashier",
		Manager: "manager",
	}
}

// RoleFromString parses the wire representation of a role ("waiter",
// "cashier", "manager"). Anything else is rejected; join messages carrying an
// unknown role are ignored by the caller.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the Role is one of the three defined roles.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role, or "unknown" for invalid values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
