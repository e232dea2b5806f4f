package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrBookingIsNotConstructed is returned when a Booking was not created via NewBooking or RestoreBooking.
var ErrBookingIsNotConstructed = errors.New("Booking must be created via NewBooking constructor")

// Terms are the parts of a Booking a transporter can revise after submitting it.
type Terms struct {
	TransporterID string
	ProposedRate  float64
	Comment       string
}

// Booking is a transporter's claim against a Load.
type Booking struct {
	id          kernel.UUID
	loadID      kernel.UUID
	terms       Terms
	status      Status
	requestedAt time.Time

	guard guard.ConstructorGuard
}

// NewBooking creates a booking against loadID. The load is not resolved here.
func NewBooking(id, loadID kernel.UUID, terms Terms, status Status, requestedAt time.Time) (*Booking, error) {
	return RestoreBooking(id, loadID, terms, status, requestedAt)
}

// RestoreBooking rebuilds a Booking read from storage.
func RestoreBooking(id, loadID kernel.UUID, terms Terms, status Status, requestedAt time.Time) (*Booking, error) {
	b := &Booking{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setLoadID(loadID),
		b.setTerms(terms),
		b.setStatus(status),
		b.setRequestedAt(requestedAt),
	); err != nil {
		return nil, err
	}

	return b, nil
}

func (b *Booking) Validate() error {
	if b == nil {
		return ErrBookingIsNotConstructed
	}
	return b.guard.Validate(ErrBookingIsNotConstructed)
}

func (b *Booking) IsEqual(other *Booking) bool {
	return other != nil && b.id.IsEqual(other.id)
}

func (b *Booking) ID() kernel.UUID        { return b.id }
func (b *Booking) LoadID() kernel.UUID    { return b.loadID }
func (b *Booking) TransporterID() string  { return b.terms.TransporterID }
func (b *Booking) ProposedRate() float64  { return b.terms.ProposedRate }
func (b *Booking) Comment() string        { return b.terms.Comment }
func (b *Booking) Terms() Terms           { return b.terms }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) RequestedAt() time.Time { return b.requestedAt }

// Revise overwrites the terms and, when status is non-nil, the status. Either
// everything is applied or, on any validation error, nothing is.
func (b *Booking) Revise(terms Terms, status *Status) error {
	candidate := *b
	if err := candidate.setTerms(terms); err != nil {
		return err
	}
	if status != nil {
		if err := candidate.setStatus(*status); err != nil {
			return err
		}
	}
	*b = candidate
	return nil
}

func (b *Booking) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Booking) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("loadId", err)
	}
	b.loadID = loadID
	return nil
}

func (b *Booking) setTerms(terms Terms) error {
	var validationErrs []error
	if strings.TrimSpace(terms.TransporterID) == "" {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("transporterId"))
	}
	if terms.ProposedRate <= 0 {
		validationErrs = append(validationErrs, errs.NewValueIsInvalidErrorWithCause(
			"proposedRate", fmt.Errorf("%g is not greater than 0", terms.ProposedRate)))
	}
	if err := errors.Join(validationErrs...); err != nil {
		return err
	}
	b.terms = terms
	return nil
}

func (b *Booking) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	b.status = status
	return nil
}

func (b *Booking) setRequestedAt(requestedAt time.Time) error {
	if requestedAt.IsZero() {
		return errs.NewValueIsRequiredError("requestedAt")
	}
	b.requestedAt = requestedAt
	return nil
}
