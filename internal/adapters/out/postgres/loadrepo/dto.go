// Package loadrepo persists Load aggregates with gorm.
package loadrepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"

	"github.com/google/uuid"
)

// LoadDTO is the row of the loads table. The indexed columns are the ones
// listings filter on.
type LoadDTO struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	ShipperID   string      `gorm:"not null;index"`
	Facility    FacilityDTO `gorm:"embedded;embeddedPrefix:facility_"`
	ProductType string      `gorm:"not null"`
	TruckType   string      `gorm:"not null;index"`
	NoOfTrucks  int         `gorm:"not null"`
	Weight      float64     `gorm:"not null"`
	Comment     string
	DatePosted  time.Time `gorm:"not null;index"`
	Status      string    `gorm:"type:varchar(16);not null;index"`
	Version     uint      `gorm:"not null"`
}

func (LoadDTO) TableName() string {
	return "loads"
}

// FacilityDTO is embedded into the loads table with the facility_ prefix.
type FacilityDTO struct {
	LoadingPoint   string    `gorm:"not null;index"`
	UnloadingPoint string    `gorm:"not null;index"`
	LoadingDate    time.Time `gorm:"not null"`
	UnloadingDate  time.Time `gorm:"not null"`
}

func fromDomain(l *load.Load) LoadDTO {
	f := l.Facility()
	return LoadDTO{
		ID:        l.ID().Bytes(),
		ShipperID: l.ShipperID(),
		Facility: FacilityDTO{
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
		Status:      l.Status().String(),
		Version:     l.Version(),
	}
}

// toDomain restores the aggregate. A status column outside the enum is a data
// integrity violation and fails here.
func toDomain(dto LoadDTO) (*load.Load, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	facility, err := load.NewFacility(
		dto.Facility.LoadingPoint,
		dto.Facility.UnloadingPoint,
		dto.Facility.LoadingDate,
		dto.Facility.UnloadingDate,
	)
	if err != nil {
		return nil, err
	}

	return load.RestoreLoad(id, load.Details{
		ShipperID:   dto.ShipperID,
		Facility:    facility,
		ProductType: dto.ProductType,
		TruckType:   dto.TruckType,
		NoOfTrucks:  dto.NoOfTrucks,
		Weight:      dto.Weight,
		Comment:     dto.Comment,
		DatePosted:  dto.DatePosted,
	}, load.Status(dto.Status), dto.Version)
}
