package tablerepo

import (
	"context"
	"errors"
	"strconv"

	"tableside/internal/core/domain/model/table"
	"tableside/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTableRepository implements TableRepository using GORM.
type GormTableRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormTableRepository creates a new GORM table repository.
func NewGormTableRepository(db *gorm.DB, tracker aggregateTracker) *GormTableRepository {
	return &GormTableRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new table to the database.
func (r *GormTableRepository) Add(ctx context.Context, aggregate *table.Table) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(strconv.Itoa(aggregate.Number()), aggregate)
	return nil
}

// Update saves an existing table's occupancy to the database.
func (r *GormTableRepository) Update(ctx context.Context, aggregate *table.Table) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TableDTO{}).
		Where("number = ?", dto.Number).
		Updates(map[string]any{
			"name":   dto.Name,
			"status": dto.Status,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(strconv.Itoa(aggregate.Number()), aggregate)
	return nil
}

// Get retrieves a table by number.
func (r *GormTableRepository) Get(ctx context.Context, number int) (*table.Table, error) {
	var dto TableDTO
	if err := r.db.WithContext(ctx).First(&dto, "number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("table", number)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every table, ordered by number.
func (r *GormTableRepository) GetAll(ctx context.Context) ([]*table.Table, error) {
	var dtos []TableDTO
	if err := r.db.WithContext(ctx).Order("number").Find(&dtos).Error; err != nil {
		return nil, err
	}

	tables := make([]*table.Table, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}

	return tables, nil
}
