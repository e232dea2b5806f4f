package commands

import (
	"time"

	"freight/internal/core/domain/model/load"
)

// LoadFields carries the caller-supplied fields shared by load creation and update.
type LoadFields struct {
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
	// DatePosted may be zero; handlers then use the current time.
	DatePosted time.Time
}

func (f LoadFields) facility() (load.Facility, error) {
	return load.NewFacility(f.LoadingPoint, f.UnloadingPoint, f.LoadingDate, f.UnloadingDate)
}

// details assembles load.Details, substituting now for a zero DatePosted.
func (f LoadFields) details(facility load.Facility, now time.Time) load.Details {
	datePosted := f.DatePosted
	if datePosted.IsZero() {
		datePosted = now
	}
	return load.Details{
		ShipperID:   f.ShipperID,
		Facility:    facility,
		ProductType: f.ProductType,
		TruckType:   f.TruckType,
		NoOfTrucks:  f.NoOfTrucks,
		Weight:      f.Weight,
		Comment:     f.Comment,
		DatePosted:  datePosted,
	}
}
