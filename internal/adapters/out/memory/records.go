package memory

import (
	"time"

	"freight/internal/core/domain/model/booking"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
)

// Records are immutable copies of aggregates; go-memdb forbids mutating an
// object after insert, and callers mutate the aggregates they get back.

type loadRecord struct {
	ID             string
	ShipperID      string
	LoadingPoint   string
	UnloadingPoint string
	LoadingDate    time.Time
	UnloadingDate  time.Time
	ProductType    string
	TruckType      string
	NoOfTrucks     int
	Weight         float64
	Comment        string
	DatePosted     time.Time
	Status         string
	Version        uint
}

func newLoadRecord(l *load.Load) *loadRecord {
	f := l.Facility()
	return &loadRecord{
		ID:             l.ID().String(),
		ShipperID:      l.ShipperID(),
		LoadingPoint:   f.LoadingPoint(),
		UnloadingPoint: f.UnloadingPoint(),
		LoadingDate:    f.LoadingDate(),
		UnloadingDate:  f.UnloadingDate(),
		ProductType:    l.ProductType(),
		TruckType:      l.TruckType(),
		NoOfTrucks:     l.NoOfTrucks(),
		Weight:         l.Weight(),
		Comment:        l.Comment(),
		DatePosted:     l.DatePosted(),
		Status:         l.Status().String(),
		Version:        l.Version(),
	}
}

func (r *loadRecord) restore() (*load.Load, error) {
	id, err := kernel.UUIDFromString(r.ID)
	if err != nil {
		return nil, err
	}
	facility, err := load.NewFacility(r.LoadingPoint, r.UnloadingPoint, r.LoadingDate, r.UnloadingDate)
	if err != nil {
		return nil, err
	}
	return load.RestoreLoad(id, load.Details{
		ShipperID:   r.ShipperID,
		Facility:    facility,
		ProductType: r.ProductType,
		TruckType:   r.TruckType,
		NoOfTrucks:  r.NoOfTrucks,
		Weight:      r.Weight,
		Comment:     r.Comment,
		DatePosted:  r.DatePosted,
	}, load.Status(r.Status), r.Version)
}

type bookingRecord struct {
	ID            string
	LoadID        string
	TransporterID string
	ProposedRate  float64
	Comment       string
	Status        string
	RequestedAt   time.Time
}

func newBookingRecord(b *booking.Booking) *bookingRecord {
	return &bookingRecord{
		ID:            b.ID().String(),
		LoadID:        b.LoadID().String(),
		TransporterID: b.TransporterID(),
		ProposedRate:  b.ProposedRate(),
		Comment:       b.Comment(),
		Status:        b.Status().String(),
		RequestedAt:   b.RequestedAt(),
	}
}

func (r *bookingRecord) restore() (*booking.Booking, error) {
	id, err := kernel.UUIDFromString(r.ID)
	if err != nil {
		return nil, err
	}
	loadID, err := kernel.UUIDFromString(r.LoadID)
	if err != nil {
		return nil, err
	}
	return booking.RestoreBooking(id, loadID, booking.Terms{
		TransporterID: r.TransporterID,
		ProposedRate:  r.ProposedRate,
		Comment:       r.Comment,
	}, booking.Status(r.Status), r.RequestedAt)
}
