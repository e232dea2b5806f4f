package http

import (
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/booking"
)

// FacilityRequest is the facility part of LoadRequest.
type FacilityRequest struct {
	LoadingPoint   string    `json:"loadingPoint"   validate:"required"`
	UnloadingPoint string    `json:"unloadingPoint" validate:"required"`
	LoadingDate    time.Time `json:"loadingDate"    validate:"required"`
	UnloadingDate  time.Time `json:"unloadingDate"  validate:"required,future"`
}

// LoadRequest is the body of POST /load and PUT /load/{loadId}. Status is
// ignored on create.
type LoadRequest struct {
	ShipperID   string          `json:"shipperId"   validate:"required"`
	Facility    FacilityRequest `json:"facility"`
	ProductType string          `json:"productType" validate:"required"`
	TruckType   string          `json:"truckType"   validate:"required"`
	NoOfTrucks  int             `json:"noOfTrucks"  validate:"min=1"`
	Weight      float64         `json:"weight"      validate:"gt=0"`
	Comment     string          `json:"comment"`
	DatePosted  time.Time       `json:"datePosted"`
	Status      string          `json:"status"`
}

func (r LoadRequest) fields() commands.LoadFields {
	return commands.LoadFields{
		ShipperID:      r.ShipperID,
		LoadingPoint:   r.Facility.LoadingPoint,
		UnloadingPoint: r.Facility.UnloadingPoint,
		LoadingDate:    r.Facility.LoadingDate,
		UnloadingDate:  r.Facility.UnloadingDate,
		ProductType:    r.ProductType,
		TruckType:      r.TruckType,
		NoOfTrucks:     r.NoOfTrucks,
		Weight:         r.Weight,
		Comment:        r.Comment,
		DatePosted:     r.DatePosted,
	}
}

// BookingRequest is the body of POST /booking.
type BookingRequest struct {
	LoadID        string    `json:"loadId"        validate:"required"`
	TransporterID string    `json:"transporterId" validate:"required"`
	ProposedRate  float64   `json:"proposedRate"  validate:"gt=0"`
	Comment       string    `json:"comment"`
	Status        string    `json:"status"`
	RequestedAt   time.Time `json:"requestedAt"   validate:"required"`
}

// BookingUpdateRequest is the body of PUT /booking/{bookingId}.
type BookingUpdateRequest struct {
	TransporterID string  `json:"transporterId" validate:"required"`
	ProposedRate  float64 `json:"proposedRate"  validate:"gt=0"`
	Comment       string  `json:"comment"`
	Status        string  `json:"status"`
}

func terms(transporterID string, proposedRate float64, comment string) booking.Terms {
	return booking.Terms{
		TransporterID: transporterID,
		ProposedRate:  proposedRate,
		Comment:       comment,
	}
}

type FacilityResponse struct {
	LoadingPoint   string    `json:"loadingPoint"`
	UnloadingPoint string    `json:"unloadingPoint"`
	LoadingDate    time.Time `json:"loadingDate"`
	UnloadingDate  time.Time `json:"unloadingDate"`
}

type LoadResponse struct {
	ID          string           `json:"id"`
	ShipperID   string           `json:"shipperId"`
	Facility    FacilityResponse `json:"facility"`
	ProductType string           `json:"productType"`
	TruckType   string           `json:"truckType"`
	NoOfTrucks  int              `json:"noOfTrucks"`
	Weight      float64          `json:"weight"`
	Comment     string           `json:"comment,omitempty"`
	DatePosted  time.Time        `json:"datePosted"`
	Status      string           `json:"status"`
	Version     uint             `json:"version"`
}

func newLoadResponse(l queries.LoadResponse) LoadResponse {
	return LoadResponse{
		ID:        l.ID.String(),
		ShipperID: l.ShipperID,
		Facility: FacilityResponse{
			LoadingPoint:   l.Facility.LoadingPoint,
			UnloadingPoint: l.Facility.UnloadingPoint,
			LoadingDate:    l.Facility.LoadingDate,
			UnloadingDate:  l.Facility.UnloadingDate,
		},
		ProductType: l.ProductType,
		TruckType:   l.TruckType,
		NoOfTrucks:  l.NoOfTrucks,
		Weight:      l.Weight,
		Comment:     l.Comment,
		DatePosted:  l.DatePosted,
		Status:      l.Status.String(),
		Version:     l.Version,
	}
}

type BookingResponse struct {
	ID            string    `json:"id"`
	LoadID        string    `json:"loadId"`
	TransporterID string    `json:"transporterId"`
	ProposedRate  float64   `json:"proposedRate"`
	Comment       string    `json:"comment,omitempty"`
	Status        string    `json:"status"`
	RequestedAt   time.Time `json:"requestedAt"`
}

func newBookingResponse(b queries.BookingResponse) BookingResponse {
	return BookingResponse{
		ID:            b.ID.String(),
		LoadID:        b.LoadID.String(),
		TransporterID: b.TransporterID,
		ProposedRate:  b.ProposedRate,
		Comment:       b.Comment,
		Status:        b.Status.String(),
		RequestedAt:   b.RequestedAt,
	}
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

// ValidationErrorResponse wraps ErrorResponse with per-field messages keyed by
// JSON path, e.g. "facility.unloadingDate".
type ValidationErrorResponse struct {
	Error            ErrorResponse     `json:"error"`
	ValidationErrors map[string]string `json:"validationErrors"`
}
