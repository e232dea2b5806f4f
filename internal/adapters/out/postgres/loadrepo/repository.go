package loadrepo

import (
	"context"
	"errors"

	"freight/internal/adapters/out/postgres/pgerrs"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLoadRepository implements ports.LoadRepository using GORM.
type GormLoadRepository struct {
	db *gorm.DB
}

// NewGormLoadRepository creates a repository on db, which may be a transaction.
func NewGormLoadRepository(db *gorm.DB) *GormLoadRepository {
	return &GormLoadRepository{db: db}
}

// Add inserts a new load.
func (r *GormLoadRepository) Add(ctx context.Context, aggregate *load.Load) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Classify(err, "load", aggregate.ID())
	}

	return nil
}

// Update writes every column of the load, provided the stored version still
// equals aggregate.Version(). The stored version is incremented in the same
// statement.
func (r *GormLoadRepository) Update(ctx context.Context, aggregate *load.Load) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&LoadDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return pgerrs.Classify(result.Error, "load", aggregate.ID())
	}

	if result.RowsAffected == 0 {
		return r.missingOrStale(ctx, aggregate.ID())
	}

	aggregate.AdvanceVersion()
	return nil
}

func (r *GormLoadRepository) missingOrStale(ctx context.Context, id kernel.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&LoadDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("load", id.String())
	}
	return errs.NewConflictErrorWithCause("load", id.String(), errs.ErrConcurrentModification)
}

// Get retrieves a load by ID.
func (r *GormLoadRepository) Get(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LoadDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("load", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a load by ID.
func (r *GormLoadRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&LoadDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return pgerrs.Classify(result.Error, "load", id)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("load", id.String())
	}

	return nil
}

// Find applies every non-empty filter field as one WHERE clause.
func (r *GormLoadRepository) Find(ctx context.Context, filter load.Filter) ([]*load.Load, error) {
	query := r.db.WithContext(ctx).Model(&LoadDTO{})
	if filter.ShipperID != "" {
		query = query.Where("shipper_id = ?", filter.ShipperID)
	}
	if filter.TruckType != "" {
		query = query.Where("truck_type = ?", filter.TruckType)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.LoadingPoint != "" {
		query = query.Where("facility_loading_point = ?", filter.LoadingPoint)
	}
	if filter.UnloadingPoint != "" {
		query = query.Where("facility_unloading_point = ?", filter.UnloadingPoint)
	}

	var dtos []LoadDTO
	if err := query.Order("date_posted, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	loads := make([]*load.Load, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		loads = append(loads, l)
	}

	return loads, nil
}

// CountByStatus groups the loads table by status.
func (r *GormLoadRepository) CountByStatus(ctx context.Context) (map[load.Status]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&LoadDTO{}).
		Select("status, count(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[load.Status]int64, len(rows))
	for _, row := range rows {
		counts[load.Status(row.Status)] = row.Count
	}
	return counts, nil
}
