package commands

import (
	"context"
	"log/slog"

	"freight/internal/core/domain/model/booking"
)

// CreateBookingCommandHandler books loads.
//
// Preconditions are checked in order and the first failure wins:
//  1. the load exists (errs.ObjectNotFoundError);
//  2. the load is not CANCELLED (errs.BusinessRuleViolationError);
//  3. the status, if given, is PENDING, ACCEPTED or REJECTED in any letter case
//     (errs.ValueIsInvalidError).
//
// Nothing is written unless all of them hold. The booking insert and the load
// moving to BOOKED share one unit of work; the load write is a compare-and-swap
// on its version, so a concurrent booking or cancellation of the same load
// fails this one with errs.ConflictError and rolls back the booking.
type CreateBookingCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

func NewCreateBookingCommandHandler(uowFactory UoWFactory, logger *slog.Logger) CreateBookingCommandHandler {
	return CreateBookingCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "CreateBookingCommandHandler"),
	}
}

// Handle creates the booking and marks its load BOOKED.
func (h CreateBookingCommandHandler) Handle(ctx context.Context, cmd CreateBookingCommand) (*booking.Booking, error) {
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

	loadRepo := uow.LoadRepository()
	bookingRepo := uow.BookingRepository()

	ref, err := loadRepo.Get(ctx, cmd.LoadID())
	if err != nil {
		return nil, err
	}

	if err = ref.EnsureBookable(); err != nil {
		return nil, err
	}

	status := booking.Pending
	if cmd.Status() != "" {
		if status, err = booking.ParseStatus(cmd.Status()); err != nil {
			return nil, err
		}
	}

	aggregate, err := booking.NewBooking(cmd.BookingID(), ref.ID(), cmd.Terms(), status, cmd.RequestedAt())
	if err != nil {
		return nil, err
	}

	if err = bookingRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	previous := ref.Status()
	ref.MarkBooked()
	if err = loadRepo.Update(ctx, ref); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "load booked",
		"booking_id", aggregate.ID().String(),
		"load_id", ref.ID().String(),
		"from", previous.String(),
		"to", ref.Status().String(),
	)
	return aggregate, nil
}
