package notifications

import (
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
)

// Message type discriminators carried in the "type" field of every frame.
const (
	TypeNewOrder           = "new_order"
	TypeOrderStatusUpdated = "order_status_updated"
	TypeCrossWaiterOrder   = "cross_waiter_order"
)

// ItemPayload is the wire form of a single order line.
type ItemPayload struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
	Notes      string `json:"notes,omitempty"`
}

// OrderPayload is the wire form of a full order as carried in every
// lifecycle frame.
type OrderPayload struct {
	ID           string        `json:"id"`
	TableNumber  int           `json:"tableNumber"`
	Status       string        `json:"status"`
	WaiterID     string        `json:"waiterId"`
	CashierID    *string       `json:"cashierId,omitempty"`
	CashReceived float64       `json:"cashReceived"`
	CreatedAt    time.Time     `json:"createdAt"`
	Items        []ItemPayload `json:"items"`
}

// NewOrderMessage announces a freshly placed order to cashiers and managers.
type NewOrderMessage struct {
	Type  string       `json:"type"`
	Order OrderPayload `json:"order"`
}

// OrderStatusUpdatedMessage announces a lifecycle transition to every role.
// PreviousStatus lets clients render what changed without tracking state.
type OrderStatusUpdatedMessage struct {
	Type           string       `json:"type"`
	Order          OrderPayload `json:"order"`
	PreviousStatus string       `json:"previousStatus"`
}

// CrossWaiterOrderMessage alerts the waiter role that an order was placed for
// a table whose assigned waiter was not the one placing it. Clients filter on
// AssignedWaiterID.
type CrossWaiterOrderMessage struct {
	Type             string       `json:"type"`
	Order            OrderPayload `json:"order"`
	AssignedWaiterID string       `json:"assignedWaiterId"`
	ActualWaiterID   string       `json:"actualWaiterId"`
	Message          string       `json:"message"`
}

func orderPayloadFromDomain(o *order.Order) OrderPayload {
	items := o.Items()
	payloadItems := make([]ItemPayload, 0, len(items))
	for _, item := range items {
		payloadItems = append(payloadItems, ItemPayload{
			MenuItemID: item.MenuItemID().String(),
			Quantity:   item.Quantity(),
			Notes:      item.Notes(),
		})
	}

	return OrderPayload{
		ID:           o.ID().String(),
		TableNumber:  o.TableNumber(),
		Status:       o.Status().String(),
		WaiterID:     o.WaiterID().String(),
		CashierID:    uuidPtrToString(o.CashierID()),
		CashReceived: o.CashReceived(),
		CreatedAt:    o.CreatedAt(),
		Items:        payloadItems,
	}
}

func uuidPtrToString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
