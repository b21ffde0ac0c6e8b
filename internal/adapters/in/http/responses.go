package http

import (
	"time"

	"tableside/internal/core/domain/model/order"
)

// OrderResponse is the JSON shape of a full order, returned by placement and
// advancement. It matches the "order" object carried in WebSocket frames so
// clients parse one shape everywhere.
type OrderResponse struct {
	ID           string              `json:"id"`
	TableNumber  int                 `json:"tableNumber"`
	Status       string              `json:"status"`
	WaiterID     string              `json:"waiterId"`
	CashierID    *string             `json:"cashierId,omitempty"`
	CashReceived float64             `json:"cashReceived"`
	CreatedAt    time.Time           `json:"createdAt"`
	Items        []OrderItemResponse `json:"items"`
}

// OrderItemResponse is one order line in JSON form.
type OrderItemResponse struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
	Notes      string `json:"notes,omitempty"`
}

// OpenOrderResponse is one entry of GET /api/v1/orders/open.
type OpenOrderResponse struct {
	ID           string              `json:"id"`
	TableNumber  int                 `json:"tableNumber"`
	Status       string              `json:"status"`
	WaiterID     string              `json:"waiterId"`
	CashReceived float64             `json:"cashReceived"`
	CreatedAt    time.Time           `json:"createdAt"`
	Items        []OrderItemResponse `json:"items"`
}

// TableResponse is one entry of GET /api/v1/tables.
type TableResponse struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

func orderResponse(aggregate *order.Order) OrderResponse {
	items := aggregate.Items()
	itemResponses := make([]OrderItemResponse, 0, len(items))
	for _, item := range items {
		itemResponses = append(itemResponses, OrderItemResponse{
			MenuItemID: item.MenuItemID().String(),
			Quantity:   item.Quantity(),
			Notes:      item.Notes(),
		})
	}

	var cashierID *string
	if id := aggregate.CashierID(); id != nil {
		s := id.String()
		cashierID = &s
	}

	return OrderResponse{
		ID:           aggregate.ID().String(),
		TableNumber:  aggregate.TableNumber(),
		Status:       aggregate.Status().String(),
		WaiterID:     aggregate.WaiterID().String(),
		CashierID:    cashierID,
		CashReceived: aggregate.CashReceived(),
		CreatedAt:    aggregate.CreatedAt(),
		Items:        itemResponses,
	}
}
