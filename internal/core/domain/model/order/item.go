package order

import (
	"fmt"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
)

// Item is a single line of an order: a menu item reference, a positive
// quantity, and optional free-text notes for the kitchen. Items are created
// atomically with their parent order and are immutable afterwards.
type Item struct {
	menuItemID kernel.UUID
	quantity   int
	notes      string
}

// NewItem creates an order line. Quantity must be greater than zero.
func NewItem(menuItemID kernel.UUID, quantity int, notes string) (Item, error) {
	if err := menuItemID.Validate(); err != nil {
		return Item{}, err
	}

	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Item{
		menuItemID: menuItemID,
		quantity:   quantity,
		notes:      notes,
	}, nil
}

// MenuItemID returns the referenced menu item's identifier.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Quantity returns how many units were ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Notes returns the free-text kitchen notes, possibly empty.
func (i Item) Notes() string {
	return i.notes
}
