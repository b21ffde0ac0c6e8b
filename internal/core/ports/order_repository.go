package ports

import (
	"context"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The storage collaborator is the serialization point for persisted state;
// this core never retries its calls.
type OrderRepository interface {
	// Add persists a new order aggregate, including its items, atomically.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. Items are
	// immutable after placement, so only the order row changes.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its items by unique identifier.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetOpenByTable retrieves all non-served orders for a table. Used to
	// derive occupancy by membership after a serving transition.
	GetOpenByTable(ctx context.Context, tableNumber int) ([]*order.Order, error)
}
