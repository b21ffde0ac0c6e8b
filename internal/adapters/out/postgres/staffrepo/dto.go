// Package staffrepo provides read access to waiter-to-table assignments.
// The rows are owned by the staff-management system; this core only reads
// them when routing cross-waiter alerts.
package staffrepo

import (
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/staff"

	"github.com/google/uuid"
)

// WaiterDTO represents a waiter row with their assigned tables.
type WaiterDTO struct {
	ID     uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name   string
	Tables []WaiterTableDTO `gorm:"foreignKey:WaiterID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for waiter entities.
func (WaiterDTO) TableName() string {
	return "waiters"
}

// WaiterTableDTO links a waiter to one assigned table number.
type WaiterTableDTO struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	WaiterID    uuid.UUID `gorm:"type:uuid;index"`
	TableNumber int
}

// TableName specifies the database table name for assignment rows.
func (WaiterTableDTO) TableName() string {
	return "waiter_tables"
}

// toDomain converts a waiter row to a staff.Assignment.
func toDomain(dto WaiterDTO) (staff.Assignment, error) {
	waiterID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return staff.Assignment{}, err
	}

	tables := make([]int, 0, len(dto.Tables))
	for _, row := range dto.Tables {
		tables = append(tables, row.TableNumber)
	}

	return staff.NewAssignment(waiterID, dto.Name, tables)
}
