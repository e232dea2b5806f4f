package bookingrepo

import (
	"context"
	"errors"

	"freight/internal/adapters/out/postgres/pgerrs"
	"freight/internal/core/domain/model/booking"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBookingRepository implements ports.BookingRepository using GORM.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a repository on db, which may be a transaction.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// Add inserts a new booking.
func (r *GormBookingRepository) Add(ctx context.Context, aggregate *booking.Booking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Classify(err, "booking", aggregate.ID())
	}

	return nil
}

// Update overwrites every column of an existing booking.
func (r *GormBookingRepository) Update(ctx context.Context, aggregate *booking.Booking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&BookingDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgerrs.Classify(result.Error, "booking", aggregate.ID())
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("booking", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a booking by ID.
func (r *GormBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BookingDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("booking", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a booking by ID.
func (r *GormBookingRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&BookingDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("booking", id.String())
	}

	return nil
}

// ExistsForLoad reports whether any booking references loadID.
func (r *GormBookingRepository) ExistsForLoad(ctx context.Context, loadID kernel.UUID) (bool, error) {
	if err := loadID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&BookingDTO{}).
		Where("load_id = ?", loadID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Find applies the filter as one query. A shipper criterion joins the loads
// table, which drops bookings whose load no longer exists.
func (r *GormBookingRepository) Find(ctx context.Context, filter booking.Filter) ([]*booking.Booking, error) {
	query := r.db.WithContext(ctx).Model(&BookingDTO{}).Select("bookings.*")
	if filter.TransporterID != "" {
		query = query.Where("bookings.transporter_id = ?", filter.TransporterID)
	}
	if filter.Status != "" {
		query = query.Where("bookings.status = ?", filter.Status.String())
	}
	if filter.ShipperID != "" {
		query = query.
			Joins("JOIN loads ON loads.id = bookings.load_id").
			Where("loads.shipper_id = ?", filter.ShipperID)
	}

	var dtos []BookingDTO
	if err := query.Order("bookings.requested_at, bookings.id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	bookings := make([]*booking.Booking, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	return bookings, nil
}

// CountByStatus groups the bookings table by status.
func (r *GormBookingRepository) CountByStatus(ctx context.Context) (map[booking.Status]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&BookingDTO{}).
		Select("status, count(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[booking.Status]int64, len(rows))
	for _, row := range rows {
		counts[booking.Status(row.Status)] = row.Count
	}
	return counts, nil
}
