package staff

import (
	"slices"

	"tableside/internal/core/domain/model/kernel"
)

// Assignment maps a waiter to the set of tables they are responsible for.
// It is read-only input to this core: the staff-management collaborator owns
// mutation, and the notification router re-reads assignments on every order
// so changes take effect immediately.
//
// An empty table set means the waiter has no explicit tables; such tables are
// treated as unassigned and open to anyone.
type Assignment struct {
	waiterID kernel.UUID
	name     string
	tables   []int
}

// NewAssignment creates an Assignment for the given waiter. The table set may
// be empty. Duplicate table numbers are kept as provided; Covers only cares
// about membership.
func NewAssignment(waiterID kernel.UUID, name string, tables []int) (Assignment, error) {
	if err := waiterID.Validate(); err != nil {
		return Assignment{}, err
	}

	return Assignment{
		waiterID: waiterID,
		name:     name,
		tables:   slices.Clone(tables),
	}, nil
}

// WaiterID returns the assigned waiter's identifier.
func (a Assignment) WaiterID() kernel.UUID {
	return a.waiterID
}

// Name returns the waiter's display name, used in human-readable alerts.
func (a Assignment) Name() string {
	return a.name
}

// Tables returns a copy of the assigned table numbers.
func (a Assignment) Tables() []int {
	return slices.Clone(a.tables)
}

// Covers reports whether the assignment includes the given table number.
func (a Assignment) Covers(tableNumber int) bool {
	return slices.Contains(a.tables, tableNumber)
}
