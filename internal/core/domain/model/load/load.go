package load

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	// ErrLoadIsNotConstructed is returned when a Load was not created via NewLoad or RestoreLoad.
	ErrLoadIsNotConstructed = errors.New("Load must be created via NewLoad constructor")

	// ErrLoadIsCancelled is the rule broken by booking a cancelled load.
	ErrLoadIsCancelled = errors.New("booking can't be created for a cancelled load")
)

// Details holds every caller-editable field of a Load. Create and update both
// take a full Details; update overwrites all of them unconditionally.
type Details struct {
	ShipperID   string
	Facility    Facility
	ProductType string
	TruckType   string
	NoOfTrucks  int
	Weight      float64
	Comment     string
	DatePosted  time.Time
}

// Load is a shipment offered on the marketplace. It is the aggregate root for
// its Facility and owns its Status; bookings reference it by ID only.
type Load struct {
	id          kernel.UUID
	shipperID   string
	facility    Facility
	productType string
	truckType   string
	noOfTrucks  int
	weight      float64
	comment     string
	datePosted  time.Time
	status      Status
	version     uint

	guard guard.ConstructorGuard
}

// NewLoad creates a POSTED load. There is no way to create a load in any other
// status: a status supplied by the caller is simply never passed in.
//
// Example:
//
//	facility, _ := load.NewFacility("Pune", "Delhi", loadingDate, unloadingDate)
//	l, err := load.NewLoad(kernel.NewUUID(), load.Details{
//	    ShipperID:   "shipper:42",
//	    Facility:    facility,
//	    ProductType: "steel",
//	    TruckType:   "FLATBED",
//	    NoOfTrucks:  2,
//	    Weight:      500,
//	    DatePosted:  time.Now(),
//	})
func NewLoad(id kernel.UUID, details Details) (*Load, error) {
	l := &Load{
		status:  Posted,
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setDetails(details),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLoad rebuilds a Load read from storage, keeping its status and version.
func RestoreLoad(id kernel.UUID, details Details, status Status, version uint) (*Load, error) {
	l := &Load{
		version: version,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setDetails(details),
		l.setStatus(status),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// Validate returns ErrLoadIsNotConstructed for a nil or zero-value Load.
func (l *Load) Validate() error {
	if l == nil {
		return ErrLoadIsNotConstructed
	}
	return l.guard.Validate(ErrLoadIsNotConstructed)
}

// IsEqual compares loads by identifier.
func (l *Load) IsEqual(other *Load) bool {
	return other != nil && l.id.IsEqual(other.id)
}

func (l *Load) ID() kernel.UUID       { return l.id }
func (l *Load) ShipperID() string     { return l.shipperID }
func (l *Load) Facility() Facility    { return l.facility }
func (l *Load) ProductType() string   { return l.productType }
func (l *Load) TruckType() string     { return l.truckType }
func (l *Load) NoOfTrucks() int       { return l.noOfTrucks }
func (l *Load) Weight() float64       { return l.weight }
func (l *Load) Comment() string       { return l.comment }
func (l *Load) DatePosted() time.Time { return l.datePosted }
func (l *Load) Status() Status        { return l.status }
func (l *Load) Version() uint         { return l.version }

// Details returns the editable fields as one value.
func (l *Load) Details() Details {
	return Details{
		ShipperID:   l.shipperID,
		Facility:    l.facility,
		ProductType: l.productType,
		TruckType:   l.truckType,
		NoOfTrucks:  l.noOfTrucks,
		Weight:      l.weight,
		Comment:     l.comment,
		DatePosted:  l.datePosted,
	}
}

// Update overwrites every editable field. Nothing changes if any field is invalid.
func (l *Load) Update(details Details) error {
	candidate := *l
	if err := candidate.setDetails(details); err != nil {
		return err
	}
	*l = candidate
	return nil
}

// ChangeStatus sets an explicit status, as requested through a load update.
func (l *Load) ChangeStatus(status Status) error {
	return l.setStatus(status)
}

// EnsureBookable fails with a BusinessRuleViolationError when the load is cancelled.
func (l *Load) EnsureBookable() error {
	if l.status.IsCancelled() {
		return errs.NewBusinessRuleViolationErrorWithCause(
			ErrLoadIsCancelled.Error(),
			fmt.Errorf("load %s is %s", l.id, l.status),
		)
	}
	return nil
}

// MarkBooked records that a booking was placed. It does not check for
// cancellation; callers check EnsureBookable first.
func (l *Load) MarkBooked() {
	l.status = Booked
}

// Cancel records that a booking against the load was withdrawn.
func (l *Load) Cancel() {
	l.status = Cancelled
}

// AdvanceVersion is called by repositories after a successful compare-and-swap
// write, so the in-memory aggregate matches the stored version.
func (l *Load) AdvanceVersion() {
	l.version++
}

func (l *Load) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Load) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	l.status = status
	return nil
}

func (l *Load) setDetails(d Details) error {
	var validationErrs []error
	if strings.TrimSpace(d.ShipperID) == "" {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("shipperId"))
	}
	if err := d.Facility.Validate(); err != nil {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredErrorWithCause("facility", err))
	}
	if strings.TrimSpace(d.ProductType) == "" {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("productType"))
	}
	if strings.TrimSpace(d.TruckType) == "" {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("truckType"))
	}
	if d.NoOfTrucks < 1 {
		validationErrs = append(validationErrs, errs.NewValueIsInvalidErrorWithCause(
			"noOfTrucks", fmt.Errorf("%d is less than 1", d.NoOfTrucks)))
	}
	if d.Weight <= 0 {
		validationErrs = append(validationErrs, errs.NewValueIsInvalidErrorWithCause(
			"weight", fmt.Errorf("%g is not greater than 0", d.Weight)))
	}
	if d.DatePosted.IsZero() {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("datePosted"))
	}
	if err := errors.Join(validationErrs...); err != nil {
		return err
	}

	l.shipperID = d.ShipperID
	l.facility = d.Facility
	l.productType = d.ProductType
	l.truckType = d.TruckType
	l.noOfTrucks = d.NoOfTrucks
	l.weight = d.Weight
	l.comment = d.Comment
	l.datePosted = d.DatePosted
	return nil
}
