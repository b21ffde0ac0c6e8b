package staffrepo

import (
	"context"

	"tableside/internal/core/domain/model/staff"

	"gorm.io/gorm"
)

// GormStaffRepository implements StaffRepository using GORM.
type GormStaffRepository struct {
	db *gorm.DB
}

// NewGormStaffRepository creates a new GORM staff repository.
func NewGormStaffRepository(db *gorm.DB) *GormStaffRepository {
	return &GormStaffRepository{db: db}
}

// GetWaiterAssignments retrieves all waiters with their assigned tables.
// Read fresh on every routing decision so assignment changes take effect
// immediately.
func (r *GormStaffRepository) GetWaiterAssignments(ctx context.Context) ([]staff.Assignment, error) {
	var dtos []WaiterDTO
	if err := r.db.WithContext(ctx).Preload("Tables").Find(&dtos).Error; err != nil {
		return nil, err
	}

	assignments := make([]staff.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		assignment, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}

	return assignments, nil
}
