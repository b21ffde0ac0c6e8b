// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by table number and status: the occupancy recomputation path always
// asks for the open orders of one table.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TableNumber  int        `gorm:"index:idx_orders_table_status"`
	Status       int        `gorm:"index:idx_orders_table_status"`
	WaiterID     uuid.UUID  `gorm:"type:uuid"`
	CashierID    *uuid.UUID `gorm:"type:uuid"`
	CashReceived float64
	CreatedAt    time.Time
	Items        []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents a single order line. Lines are created together with
// their order and never modified afterwards.
type ItemDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID uuid.UUID `gorm:"type:uuid"`
	Quantity   int
	Notes      string
}

// TableName specifies the database table name for order line entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var cashierID *uuid.UUID
	if id := aggregate.CashierID(); id != nil {
		raw := id.Bytes()
		cashierID = &raw
	}

	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			OrderID:    aggregate.ID().Bytes(),
			MenuItemID: item.MenuItemID().Bytes(),
			Quantity:   item.Quantity(),
			Notes:      item.Notes(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		TableNumber:  aggregate.TableNumber(),
		Status:       int(aggregate.Status()),
		WaiterID:     aggregate.WaiterID().Bytes(),
		CashierID:    cashierID,
		CashReceived: aggregate.CashReceived(),
		CreatedAt:    aggregate.CreatedAt(),
		Items:        itemDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	waiterID, err := kernel.UUIDFromBytes(dto.WaiterID[:])
	if err != nil {
		return nil, err
	}

	var cashierID *kernel.UUID
	if dto.CashierID != nil {
		cID, cashierErr := kernel.UUIDFromBytes((*dto.CashierID)[:])
		if cashierErr != nil {
			return nil, cashierErr
		}

		cashierID = &cID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		menuItemID, itemErr := kernel.UUIDFromBytes(itemDTO.MenuItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(menuItemID, itemDTO.Quantity, itemDTO.Notes)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.TableNumber,
		waiterID,
		cashierID,
		dto.CashReceived,
		order.Status(dto.Status),
		dto.CreatedAt,
		items,
	)
}
