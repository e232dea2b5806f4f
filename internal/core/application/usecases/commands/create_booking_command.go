package commands

import (
	"errors"
	"strings"
	"time"

	"freight/internal/core/domain/model/booking"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrCreateBookingCommandIsNotConstructed = errors.New(
	"CreateBookingCommand must be created via NewCreateBookingCommand constructor",
)

// CreateBookingCommand represents a transporter's offer against a load.
//
// The status is kept raw and checked by the handler, after the load has been
// resolved and found bookable. A blank status means PENDING.
//
// Example:
//
//	cmd, err := NewCreateBookingCommand(kernel.NewUUID(), loadID,
//	    booking.Terms{TransporterID: "T1", ProposedRate: 1000}, "", time.Now())
//	if err != nil {
//	    return fmt.Errorf("invalid booking data: %w", err)
//	}
type CreateBookingCommand struct { //nolint:recvcheck //using for validation
	bookingID   kernel.UUID
	loadID      kernel.UUID
	terms       booking.Terms
	status      string
	requestedAt time.Time

	guard guard.ConstructorGuard
}

// NewCreateBookingCommand validates both identifiers. Terms and requestedAt are
// validated when the aggregate is created.
func NewCreateBookingCommand(
	bookingID, loadID kernel.UUID,
	terms booking.Terms,
	status string,
	requestedAt time.Time,
) (CreateBookingCommand, error) {
	cmd := CreateBookingCommand{
		terms:       terms,
		status:      strings.TrimSpace(status),
		requestedAt: requestedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBookingID(bookingID),
		cmd.setLoadID(loadID),
	); err != nil {
		return CreateBookingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBookingCommand) Validate() error {
	return c.guard.Validate(ErrCreateBookingCommandIsNotConstructed)
}

func (c CreateBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}

func (c CreateBookingCommand) LoadID() kernel.UUID {
	return c.loadID
}

func (c CreateBookingCommand) Terms() booking.Terms {
	return c.terms
}

// Status returns the requested status, "" for the default.
func (c CreateBookingCommand) Status() string {
	return c.status
}

func (c CreateBookingCommand) RequestedAt() time.Time {
	return c.requestedAt
}

func (c *CreateBookingCommand) setBookingID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.bookingID = id
	return nil
}

func (c *CreateBookingCommand) setLoadID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.loadID = id
	return nil
}
