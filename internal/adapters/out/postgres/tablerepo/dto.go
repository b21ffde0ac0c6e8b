// Package tablerepo provides data transfer objects and mapping functions for
// table occupancy persistence.
package tablerepo

import (
	"tableside/internal/core/domain/model/table"
)

// TableDTO represents the database structure for persisting tables.
// The table number is the identity, so it doubles as the primary key.
type TableDTO struct {
	Number int `gorm:"primaryKey"`
	Name   string
	Status int
}

// TableName specifies the database table name for table entities.
func (TableDTO) TableName() string {
	return "tables"
}

// fromDomain converts a table domain aggregate to its database representation.
func fromDomain(aggregate *table.Table) TableDTO {
	return TableDTO{
		Number: aggregate.Number(),
		Name:   aggregate.Name(),
		Status: int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to a table domain aggregate using RestoreTable.
func toDomain(dto TableDTO) (*table.Table, error) {
	return table.RestoreTable(dto.Number, dto.Name, table.Status(dto.Status))
}
