package table

import (
	"errors"
	"fmt"

	"tableside/internal/pkg/errs"
)

// ErrTableIsNotConstructed is returned when a Table instance was not created
// through NewTable or RestoreTable.
var ErrTableIsNotConstructed = errors.New("Table must be created via NewTable or RestoreTable")

// Status represents a table's occupancy.
type Status int

const (
	// UnknownTableStatus represents an invalid or undefined status.
	UnknownTableStatus Status = iota

	// Free means the table has no open order.
	Free

	// Occupied means at least one non-served order exists for the table.
	Occupied
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Free:     "free",
		Occupied: "occupied",
	}
}

// Validate checks that the Status value is Free or Occupied.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("tableStatus",
			fmt.Errorf("%d is not a valid table status", s))
	}
	return nil
}

// String returns "free" or "occupied", or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Table tracks a single table's occupancy. Identity is the table number.
// Occupancy is derived state: a table is occupied iff at least one of its
// orders is non-served, and the OccupancyTracker service keeps the two in
// agreement on every transition.
type Table struct {
	number        int
	name          string
	status        Status
	isConstructed bool
}

// NewTable creates a free table with the given number and optional display name.
func NewTable(number int, name string) (*Table, error) {
	if number <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("tableNumber",
			fmt.Errorf("%d is not greater than 0", number))
	}

	return &Table{
		number:        number,
		name:          name,
		status:        Free,
		isConstructed: true,
	}, nil
}

// RestoreTable reconstructs a Table from persistence.
func RestoreTable(number int, name string, status Status) (*Table, error) {
	if number <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("tableNumber",
			fmt.Errorf("%d is not greater than 0", number))
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Table{
		number:        number,
		name:          name,
		status:        status,
		isConstructed: true,
	}, nil
}

// Validate ensures the Table instance was properly constructed.
func (t *Table) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTableIsNotConstructed
	}

	return nil
}

// Number returns the table number, the table's identity.
func (t *Table) Number() int {
	return t.number
}

// Name returns the optional display name.
func (t *Table) Name() string {
	return t.name
}

// Status returns the current occupancy status.
func (t *Table) Status() Status {
	return t.status
}

// IsOccupied reports whether the table currently holds an open order.
func (t *Table) IsOccupied() bool {
	return t.status == Occupied
}

// MarkOccupied records that an open order exists for the table.
// Idempotent: marking an occupied table occupied is a no-op.
func (t *Table) MarkOccupied() {
	t.status = Occupied
}

// MarkFree records that no open order remains for the table.
// Callers must derive this from the order set, not from a counter.
func (t *Table) MarkFree() {
	t.status = Free
}
