package queries

import (
	"context"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenOrdersQueryHandler retrieves non-served orders from the database.
// Serves the dashboard view of the current floor workload.
type GetOpenOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenOrdersQueryHandler creates a handler for open order queries.
// Requires a GORM database connection for query execution.
func NewGetOpenOrdersQueryHandler(db *gorm.DB) GetOpenOrdersQueryHandler {
	return GetOpenOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all open orders with their lines.
// Results are sorted by placement time, oldest first.
func (h GetOpenOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOpenOrdersQuery,
) ([]GetOpenOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, index, err := h.fetchOrders(ctx)
	if err != nil {
		return nil, err
	}

	if err = h.attachItems(ctx, orders, index); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h GetOpenOrdersQueryHandler) fetchOrders(
	ctx context.Context,
) ([]GetOpenOrdersQueryResponse, map[uuid.UUID]int, error) {
	orders := make([]GetOpenOrdersQueryResponse, 0)
	index := make(map[uuid.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			table_number,
			status,
			waiter_id,
			cash_received,
			created_at
		FROM orders
		WHERE status != ?
		ORDER BY created_at
	`, order.Served).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, waiterID uuid.UUID
		var tableNumber, status int
		var cashReceived float64
		var createdAt time.Time

		if err = rows.Scan(&id, &tableNumber, &status, &waiterID, &cashReceived, &createdAt); err != nil {
			return nil, nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, nil, idErr
		}

		waiterUUID, widErr := kernel.UUIDFromBytes(waiterID[:])
		if widErr != nil {
			return nil, nil, widErr
		}

		index[id] = len(orders)
		orders = append(orders, GetOpenOrdersQueryResponse{
			ID:           orderID,
			TableNumber:  tableNumber,
			Status:       order.Status(status).String(),
			WaiterID:     waiterUUID,
			CashReceived: cashReceived,
			CreatedAt:    createdAt,
			Items:        make([]OpenOrderItem, 0),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return orders, index, nil
}

func (h GetOpenOrdersQueryHandler) attachItems(
	ctx context.Context,
	orders []GetOpenOrdersQueryResponse,
	index map[uuid.UUID]int,
) error {
	if len(orders) == 0 {
		return nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			menu_item_id,
			quantity,
			notes
		FROM order_items
		WHERE order_id IN (SELECT id FROM orders WHERE status != ?)
	`, order.Served).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID, menuItemID uuid.UUID
		var quantity int
		var notes string

		if err = rows.Scan(&orderID, &menuItemID, &quantity, &notes); err != nil {
			return err
		}

		pos, ok := index[orderID]
		if !ok {
			continue
		}

		menuItemUUID, idErr := kernel.UUIDFromBytes(menuItemID[:])
		if idErr != nil {
			return idErr
		}

		orders[pos].Items = append(orders[pos].Items, OpenOrderItem{
			MenuItemID: menuItemUUID,
			Quantity:   quantity,
			Notes:      notes,
		})
	}

	return rows.Err()
}
