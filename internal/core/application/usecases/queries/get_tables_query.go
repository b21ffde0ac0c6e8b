package queries

import (
	"errors"

	"tableside/internal/pkg/guard"
)

var (
	ErrGetTablesQueryIsNotConstructed = errors.New(
		"GetTablesQuery must be created via NewGetTablesQuery constructor",
	)
)

// GetTablesQuery retrieves the full floor plan with each table's occupancy.
type GetTablesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetTablesQuery creates a query to retrieve all tables.
func NewGetTablesQuery() GetTablesQuery {
	return GetTablesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetTablesQueryIsNotConstructed if validation fails.
func (q GetTablesQuery) Validate() error {
	return q.guard.Validate(ErrGetTablesQueryIsNotConstructed)
}

// GetTablesQueryResponse represents one table's occupancy.
type GetTablesQueryResponse struct {
	Number int
	Name   string
	Status string
}
