// Package queries contains the read operations of the freight marketplace.
// Queries run without a unit of work and return read models, never aggregates.
package queries

import (
	"time"

	"freight/internal/core/domain/model/booking"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
)

// FacilityResponse is the read model of a load's facility.
type FacilityResponse struct {
	LoadingPoint   string
	UnloadingPoint string
	LoadingDate    time.Time
	UnloadingDate  time.Time
}

// LoadResponse is the read model of a load.
type LoadResponse struct {
	ID          kernel.UUID
	ShipperID   string
	Facility    FacilityResponse
	ProductType string
	TruckType   string
	NoOfTrucks  int
	Weight      float64
	Comment     string
	DatePosted  time.Time
	Status      load.Status
	Version     uint
}

// NewLoadResponse projects a load aggregate. Command results go through it as well.
func NewLoadResponse(l *load.Load) LoadResponse {
	f := l.Facility()
	return LoadResponse{
		ID:        l.ID(),
		ShipperID: l.ShipperID(),
		Facility: FacilityResponse{
			LoadingPoint:   f.LoadingPoint(),
			UnloadingPoint: f.UnloadingPoint(),
			LoadingDate:    f.LoadingDate(),
			UnloadingDate:  f.UnloadingDate(),
		},
		ProductType: l.ProductType(),
		TruckType:   l.TruckType(),
		NoOfTrucks:  l.NoOfTrucks(),
		Weight:      l.Weight(),
		Comment:     l.Comment(),
		DatePosted:  l.DatePosted(),
		Status:      l.Status(),
		Version:     l.Version(),
	}
}

// BookingResponse is the read model of a booking.
type BookingResponse struct {
	ID            kernel.UUID
	LoadID        kernel.UUID
	TransporterID string
	ProposedRate  float64
	Comment       string
	Status        booking.Status
	RequestedAt   time.Time
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID(),
		LoadID:        b.LoadID(),
		TransporterID: b.TransporterID(),
		ProposedRate:  b.ProposedRate(),
		Comment:       b.Comment(),
		Status:        b.Status(),
		RequestedAt:   b.RequestedAt(),
	}
}
