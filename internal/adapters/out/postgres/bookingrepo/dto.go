// Package bookingrepo persists Booking aggregates with gorm.
package bookingrepo

import (
	"time"

	"freight/internal/core/domain/model/booking"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BookingDTO is the row of the bookings table. The load is referenced by ID
// only; there is no foreign key so that a booking can outlive its load.
type BookingDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	LoadID        uuid.UUID `gorm:"type:uuid;not null;index"`
	TransporterID string    `gorm:"not null;index"`
	ProposedRate  float64   `gorm:"not null"`
	Comment       string
	Status        string    `gorm:"type:varchar(16);not null;index"`
	RequestedAt   time.Time `gorm:"not null;index"`
}

func (BookingDTO) TableName() string {
	return "bookings"
}

func fromDomain(b *booking.Booking) BookingDTO {
	return BookingDTO{
		ID:            b.ID().Bytes(),
		LoadID:        b.LoadID().Bytes(),
		TransporterID: b.TransporterID(),
		ProposedRate:  b.ProposedRate(),
		Comment:       b.Comment(),
		Status:        b.Status().String(),
		RequestedAt:   b.RequestedAt(),
	}
}

func toDomain(dto BookingDTO) (*booking.Booking, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	loadID, err := kernel.UUIDFromBytes(dto.LoadID[:])
	if err != nil {
		return nil, err
	}

	return booking.RestoreBooking(id, loadID, booking.Terms{
		TransporterID: dto.TransporterID,
		ProposedRate:  dto.ProposedRate,
		Comment:       dto.Comment,
	}, booking.Status(dto.Status), dto.RequestedAt)
}
