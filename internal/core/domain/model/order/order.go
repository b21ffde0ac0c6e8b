package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrNoItems is returned when an order is placed with an empty item list.
	// Placement is rejected before any storage write.
	ErrNoItems = errors.New("order must contain at least one item")
)

// Order is the aggregate root of the order lifecycle. It is created by a
// waiter action in status Paid, advanced one step at a time by cashier or
// manager actions, and becomes immutable once Served. Orders are never
// deleted by this core.
//
// Invariants:
//   - Status only moves forward through Paid -> InPrep -> Ready -> Served
//   - The item list is non-empty and immutable after construction
//   - cashierID is set on the first successful advance and updated on each one
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// tableNumber is the table the order was placed for
	tableNumber int

	// waiterID identifies the waiter who placed the order
	waiterID kernel.UUID

	// cashierID identifies the cashier or manager who last advanced the
	// order (nil until the first advance)
	cashierID *kernel.UUID

	// cashReceived is the amount collected at placement
	cashReceived float64

	// status is the current state in the order lifecycle
	status Status

	// createdAt is the placement timestamp (UTC)
	createdAt time.Time

	// items are the ordered lines, fixed at placement
	items []Item

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in status Paid. This is the only way an order
// enters the lifecycle; there is no separate "create" transition.
//
// Validation:
//   - id and waiterID must be valid UUIDs
//   - tableNumber must be positive
//   - items must be non-empty (ErrNoItems)
//   - cashReceived must not be negative
func NewOrder(id kernel.UUID, tableNumber int, waiterID kernel.UUID, cashReceived float64, items []Item) (*Order, error) {
	order := &Order{
		status:        Paid,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setTableNumber(tableNumber),
		order.setWaiterID(waiterID),
		order.setCashReceived(cashReceived),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence without applying the
// placement rules (the stored state already passed them). Status must still
// be a defined state.
func RestoreOrder(
	id kernel.UUID,
	tableNumber int,
	waiterID kernel.UUID,
	cashierID *kernel.UUID,
	cashReceived float64,
	status Status,
	createdAt time.Time,
	items []Item,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		waiterID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if cashierID != nil {
		if err := cashierID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:            id,
		tableNumber:   tableNumber,
		waiterID:      waiterID,
		cashierID:     cashierID,
		cashReceived:  cashReceived,
		status:        status,
		createdAt:     createdAt,
		items:         slices.Clone(items),
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
// Call when reconstructing orders from external input.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TableNumber returns the table the order was placed for.
func (o *Order) TableNumber() int {
	return o.tableNumber
}

// WaiterID returns the identifier of the waiter who placed the order.
func (o *Order) WaiterID() kernel.UUID {
	return o.waiterID
}

// CashierID returns the identifier of the cashier or manager who last
// advanced the order. Returns nil before the first advance.
func (o *Order) CashierID() *kernel.UUID {
	return o.cashierID
}

// CashReceived returns the amount collected at placement.
func (o *Order) CashReceived() float64 {
	return o.cashReceived
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the placement timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns a copy of the ordered lines.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// IsOpen reports whether the order still occupies its table, i.e. it has not
// been served.
func (o *Order) IsOpen() bool {
	return o.status != Served
}

// Advance moves the order to target, which must be the immediate successor
// of the current status, and records the acting cashier/manager. Any other
// target (re-entering a past state, skipping a state, or touching a served
// order) fails with an InvalidTransitionError and leaves the order untouched.
func (o *Order) Advance(target Status, actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Advance(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cashierID = &actorID
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTableNumber(tableNumber int) error {
	if tableNumber <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("tableNumber",
			fmt.Errorf("%d is not greater than 0", tableNumber))
	}
	o.tableNumber = tableNumber
	return nil
}

func (o *Order) setWaiterID(waiterID kernel.UUID) error {
	if err := waiterID.Validate(); err != nil {
		return err
	}
	o.waiterID = waiterID
	return nil
}

func (o *Order) setCashReceived(cashReceived float64) error {
	if cashReceived < 0 {
		return errs.NewValueIsInvalidErrorWithCause("cashReceived",
			fmt.Errorf("%f is negative", cashReceived))
	}
	o.cashReceived = cashReceived
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrNoItems
	}

	for _, item := range items {
		if item.quantity <= 0 {
			return errs.NewValueIsInvalidError("quantity")
		}
	}

	o.items = slices.Clone(items)
	return nil
}
