package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrDeleteBookingCommandIsNotConstructed = errors.New(
	"DeleteBookingCommand must be created via NewDeleteBookingCommand constructor",
)

// DeleteBookingCommand withdraws a booking.
type DeleteBookingCommand struct { //nolint:recvcheck //using for validation
	bookingID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteBookingCommand(bookingID kernel.UUID) (DeleteBookingCommand, error) {
	if err := bookingID.Validate(); err != nil {
		return DeleteBookingCommand{}, err
	}

	return DeleteBookingCommand{
		bookingID: bookingID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteBookingCommand) Validate() error {
	return c.guard.Validate(ErrDeleteBookingCommandIsNotConstructed)
}

func (c DeleteBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}
