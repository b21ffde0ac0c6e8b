package queries

import (
	"context"

	"tableside/internal/core/domain/model/table"

	"gorm.io/gorm"
)

// GetTablesQueryHandler retrieves the floor plan from the database.
type GetTablesQueryHandler struct {
	db *gorm.DB
}

// NewGetTablesQueryHandler creates a handler for floor plan queries.
// Requires a GORM database connection for query execution.
func NewGetTablesQueryHandler(db *gorm.DB) GetTablesQueryHandler {
	return GetTablesQueryHandler{db: db}
}

// Handle executes the query to retrieve all tables with their occupancy.
// Results are sorted by table number for consistent output.
func (h GetTablesQueryHandler) Handle(
	ctx context.Context,
	query GetTablesQuery,
) ([]GetTablesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tables := make([]GetTablesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			number,
			name,
			status
		FROM tables
		ORDER BY number
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var number, status int
		var name string

		if err = rows.Scan(&number, &name, &status); err != nil {
			return nil, err
		}

		tables = append(tables, GetTablesQueryResponse{
			Number: number,
			Name:   name,
			Status: table.Status(status).String(),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tables, nil
}
