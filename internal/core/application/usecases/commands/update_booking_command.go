package commands

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/booking"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrUpdateBookingCommandIsNotConstructed = errors.New(
	"UpdateBookingCommand must be created via NewUpdateBookingCommand constructor",
)

// UpdateBookingCommand overwrites a booking's terms and, when status is
// non-blank, its status.
type UpdateBookingCommand struct { //nolint:recvcheck //using for validation
	bookingID kernel.UUID
	terms     booking.Terms
	status    string

	guard guard.ConstructorGuard
}

func NewUpdateBookingCommand(bookingID kernel.UUID, terms booking.Terms, status string) (UpdateBookingCommand, error) {
	if err := bookingID.Validate(); err != nil {
		return UpdateBookingCommand{}, err
	}

	return UpdateBookingCommand{
		bookingID: bookingID,
		terms:     terms,
		status:    strings.TrimSpace(status),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateBookingCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBookingCommandIsNotConstructed)
}

func (c UpdateBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}

func (c UpdateBookingCommand) Terms() booking.Terms {
	return c.terms
}

func (c UpdateBookingCommand) Status() string {
	return c.status
}
