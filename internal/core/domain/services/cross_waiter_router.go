package services

import (
	"fmt"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/domain/model/staff"
)

// CrossWaiterAlert describes an order placed for a table by a waiter other
// than the one assigned to it. It is broadcast to the whole waiter role; the
// assigned waiter's id lets clients filter.
type CrossWaiterAlert struct {
	Order            *order.Order
	AssignedWaiterID kernel.UUID
	ActualWaiterID   kernel.UUID
	Message          string
}

// CrossWaiterRouter decides whether a newly placed order warrants a targeted
// notification to the waiter assigned to the order's table.
//
// Route is a pure function of the order and the current assignments. It has
// no side effects and must be re-evaluated fresh on every placement, since
// assignments can change between orders.
type CrossWaiterRouter struct{}

// NewCrossWaiterRouter creates a new CrossWaiterRouter instance.
func NewCrossWaiterRouter() CrossWaiterRouter {
	return CrossWaiterRouter{}
}

// Route returns an alert when the order's table is assigned to a waiter other
// than the one who placed the order. It returns nil, the common case, when
// the table is unassigned or the actor is the assigned waiter.
func (CrossWaiterRouter) Route(o *order.Order, assignments []staff.Assignment) (*CrossWaiterAlert, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	for _, assignment := range assignments {
		if !assignment.Covers(o.TableNumber()) {
			continue
		}

		if assignment.WaiterID().IsEqual(o.WaiterID()) {
			return nil, nil
		}

		actorName := o.WaiterID().String()
		for _, other := range assignments {
			if other.WaiterID().IsEqual(o.WaiterID()) && other.Name() != "" {
				actorName = other.Name()
				break
			}
		}

		return &CrossWaiterAlert{
			Order:            o,
			AssignedWaiterID: assignment.WaiterID(),
			ActualWaiterID:   o.WaiterID(),
			Message: fmt.Sprintf("%s took an order for your table %d while you were away",
				actorName, o.TableNumber()),
		}, nil
	}

	return nil, nil
}
