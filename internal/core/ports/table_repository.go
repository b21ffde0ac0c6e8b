package ports

import (
	"context"

	"tableside/internal/core/domain/model/table"
)

// TableRepository defines the persistence contract for table aggregates.
type TableRepository interface {
	// Add persists a new table.
	Add(ctx context.Context, aggregate *table.Table) error

	// Update persists an occupancy change for an existing table.
	Update(ctx context.Context, aggregate *table.Table) error

	// Get retrieves a table by its number.
	// Returns errs.ObjectNotFoundError when the table does not exist.
	Get(ctx context.Context, number int) (*table.Table, error)

	// GetAll retrieves the whole floor plan, ordered by table number.
	GetAll(ctx context.Context) ([]*table.Table, error)
}
