package commands

import (
	"context"
	"errors"
	"log/slog"

	"freight/internal/pkg/errs"
)

// DeleteBookingCommandHandler withdraws bookings.
//
// The referenced load is set to CANCELLED whenever it still exists, whatever
// other bookings it has. The load write and the booking delete share one unit
// of work.
type DeleteBookingCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

func NewDeleteBookingCommandHandler(uowFactory UoWFactory, logger *slog.Logger) DeleteBookingCommandHandler {
	return DeleteBookingCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "DeleteBookingCommandHandler"),
	}
}

// Handle fails with errs.ObjectNotFoundError for an unknown booking.
func (h DeleteBookingCommandHandler) Handle(ctx context.Context, cmd DeleteBookingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loadRepo := uow.LoadRepository()
	bookingRepo := uow.BookingRepository()

	aggregate, err := bookingRepo.Get(ctx, cmd.BookingID())
	if err != nil {
		return err
	}

	ref, err := loadRepo.Get(ctx, aggregate.LoadID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		h.logger.WarnContext(ctx, "booking references a missing load",
			"booking_id", aggregate.ID().String(),
			"load_id", aggregate.LoadID().String(),
		)
	case err != nil:
		return err
	default:
		ref.Cancel()
		if err = loadRepo.Update(ctx, ref); err != nil {
			return err
		}
	}

	if err = bookingRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "booking deleted",
		"booking_id", aggregate.ID().String(),
		"load_id", aggregate.LoadID().String(),
	)
	return nil
}
