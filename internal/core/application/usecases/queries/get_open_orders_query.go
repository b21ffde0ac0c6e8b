package queries

import (
	"errors"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/guard"
)

var (
	ErrGetOpenOrdersQueryIsNotConstructed = errors.New(
		"GetOpenOrdersQuery must be created via NewGetOpenOrdersQuery constructor",
	)
)

// GetOpenOrdersQuery retrieves all orders that have not yet been served,
// i.e. the orders currently occupying tables.
type GetOpenOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenOrdersQuery creates a query to retrieve open orders.
// This is a parameterless query that fetches all non-served orders.
func NewGetOpenOrdersQuery() GetOpenOrdersQuery {
	return GetOpenOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOpenOrdersQueryIsNotConstructed if validation fails.
func (q GetOpenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenOrdersQueryIsNotConstructed)
}

// GetOpenOrdersQueryResponse represents one open order with its lines.
type GetOpenOrdersQueryResponse struct {
	ID           kernel.UUID
	TableNumber  int
	Status       string
	WaiterID     kernel.UUID
	CashReceived float64
	CreatedAt    time.Time
	Items        []OpenOrderItem
}

// OpenOrderItem is a single line of an open order.
type OpenOrderItem struct {
	MenuItemID kernel.UUID
	Quantity   int
	Notes      string
}
