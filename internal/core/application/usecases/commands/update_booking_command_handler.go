package commands

import (
	"context"

	"freight/internal/core/domain/model/booking"
)

// UpdateBookingCommandHandler revises bookings. The referenced load is not touched.
type UpdateBookingCommandHandler struct {
	uowFactory BookingUoWFactory
}

func NewUpdateBookingCommandHandler(uowFactory BookingUoWFactory) UpdateBookingCommandHandler {
	return UpdateBookingCommandHandler{uowFactory: uowFactory}
}

// Handle fails with errs.ObjectNotFoundError for an unknown booking. An invalid
// status or invalid terms reject the whole update.
func (h UpdateBookingCommandHandler) Handle(ctx context.Context, cmd UpdateBookingCommand) (*booking.Booking, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	bookingRepo := uow.BookingRepository()
	aggregate, err := bookingRepo.Get(ctx, cmd.BookingID())
	if err != nil {
		return nil, err
	}

	status, supplied, err := booking.ParseOptionalStatus(cmd.Status())
	if err != nil {
		return nil, err
	}

	var newStatus *booking.Status
	if supplied {
		newStatus = &status
	}
	if err = aggregate.Revise(cmd.Terms(), newStatus); err != nil {
		return nil, err
	}

	if err = bookingRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
