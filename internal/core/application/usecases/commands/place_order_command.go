package commands

import (
	"errors"
	"fmt"
	"slices"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// ItemSpec describes one requested order line: which menu item, how many, and
// optional kitchen notes.
type ItemSpec struct {
	MenuItemID kernel.UUID
	Quantity   int
	Notes      string
}

// PlaceOrderCommand represents a waiter's request to create a new order for a
// table. The acting waiter arrives explicitly as a parameter, never from
// ambient session state, which keeps the cross-waiter routing testable
// without a session layer.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), 5, waiterID, 42.50, items)
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//	placed, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	tableNumber  int
	waiterID     kernel.UUID
	cashReceived float64
	items        []ItemSpec

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that the ids are valid, the table number is positive, the cash
// amount is not negative, and the item list is non-empty with positive
// quantities. An empty item list is rejected here, before any storage write.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	tableNumber int,
	waiterID kernel.UUID,
	cashReceived float64,
	items []ItemSpec,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTableNumber(tableNumber),
		cmd.setWaiterID(waiterID),
		cmd.setCashReceived(cashReceived),
		cmd.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier minted for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TableNumber returns the table the order is placed for.
func (c PlaceOrderCommand) TableNumber() int {
	return c.tableNumber
}

// WaiterID returns the acting waiter's identifier.
func (c PlaceOrderCommand) WaiterID() kernel.UUID {
	return c.waiterID
}

// CashReceived returns the amount collected from the guests.
func (c PlaceOrderCommand) CashReceived() float64 {
	return c.cashReceived
}

// Items returns a copy of the requested order lines.
func (c PlaceOrderCommand) Items() []ItemSpec {
	return slices.Clone(c.items)
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setTableNumber(tableNumber int) error {
	if tableNumber <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("tableNumber",
			fmt.Errorf("%d is not greater than 0", tableNumber))
	}

	c.tableNumber = tableNumber
	return nil
}

func (c *PlaceOrderCommand) setWaiterID(waiterID kernel.UUID) error {
	if err := waiterID.Validate(); err != nil {
		return err
	}

	c.waiterID = waiterID
	return nil
}

func (c *PlaceOrderCommand) setCashReceived(cashReceived float64) error {
	if cashReceived < 0 {
		return errs.NewValueIsInvalidErrorWithCause("cashReceived",
			fmt.Errorf("%f is negative", cashReceived))
	}

	c.cashReceived = cashReceived
	return nil
}

func (c *PlaceOrderCommand) setItems(items []ItemSpec) error {
	if len(items) == 0 {
		return order.ErrNoItems
	}

	for _, item := range items {
		if err := item.MenuItemID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("%d is not greater than 0", item.Quantity))
		}
	}

	c.items = slices.Clone(items)
	return nil
}
