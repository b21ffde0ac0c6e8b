package services

import (
	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/domain/model/table"
)

// OccupancyTracker is a domain service that keeps a table's occupancy status
// in agreement with its order set.
//
// Occupancy is derived by membership, never by toggling or counting: a table
// can legitimately hold more than one open order (a second waiter may take an
// order for the same table), so freeing on "an order was served" would be
// wrong. OnOrderServed therefore recomputes from the remaining orders.
type OccupancyTracker struct{}

// NewOccupancyTracker creates a new OccupancyTracker instance.
func NewOccupancyTracker() OccupancyTracker {
	return OccupancyTracker{}
}

// OnOrderCreated marks the table occupied. Placement always occupies the
// table regardless of how many orders it already holds.
func (OccupancyTracker) OnOrderCreated(t *table.Table) error {
	if err := t.Validate(); err != nil {
		return err
	}

	t.MarkOccupied()
	return nil
}

// OnOrderServed recomputes the table's occupancy from the orders that remain
// for it. The table becomes free only when none of them is open; otherwise it
// stays occupied. Served orders in the slice are ignored, so callers may pass
// the table's full order set or just the open ones.
func (OccupancyTracker) OnOrderServed(t *table.Table, remaining []*order.Order) error {
	if err := t.Validate(); err != nil {
		return err
	}

	for _, o := range remaining {
		if err := o.Validate(); err != nil {
			return err
		}

		if o.IsOpen() {
			t.MarkOccupied()
			return nil
		}
	}

	t.MarkFree()
	return nil
}
