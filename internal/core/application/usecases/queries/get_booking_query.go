package queries

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"
	"freight/internal/pkg/guard"
)

var ErrGetBookingQueryIsNotConstructed = errors.New(
	"GetBookingQuery must be created via NewGetBookingQuery constructor",
)

// GetBookingQuery retrieves one booking by ID.
type GetBookingQuery struct {
	bookingID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetBookingQuery(bookingID kernel.UUID) (GetBookingQuery, error) {
	if err := bookingID.Validate(); err != nil {
		return GetBookingQuery{}, err
	}
	return GetBookingQuery{bookingID: bookingID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetBookingQuery) Validate() error {
	return q.guard.Validate(ErrGetBookingQueryIsNotConstructed)
}

func (q GetBookingQuery) BookingID() kernel.UUID {
	return q.bookingID
}

type GetBookingQueryHandler struct {
	bookings ports.BookingRepository
}

func NewGetBookingQueryHandler(bookings ports.BookingRepository) GetBookingQueryHandler {
	return GetBookingQueryHandler{bookings: bookings}
}

// Handle returns errs.ObjectNotFoundError for an unknown booking.
func (h GetBookingQueryHandler) Handle(ctx context.Context, query GetBookingQuery) (BookingResponse, error) {
	if err := query.Validate(); err != nil {
		return BookingResponse{}, err
	}

	b, err := h.bookings.Get(ctx, query.BookingID())
	if err != nil {
		return BookingResponse{}, err
	}

	return NewBookingResponse(b), nil
}
