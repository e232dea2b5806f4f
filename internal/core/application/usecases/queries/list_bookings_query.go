package queries

import (
	"context"
	"errors"
	"strings"

	"freight/internal/core/domain/model/booking"
	"freight/internal/core/ports"
	"freight/internal/pkg/guard"
)

var ErrListBookingsQueryIsNotConstructed = errors.New(
	"ListBookingsQuery must be created via NewListBookingsQuery constructor",
)

// ListBookingsQuery lists bookings matching every supplied criterion.
// The shipper criterion applies to the shipper of each booking's load.
type ListBookingsQuery struct {
	filter booking.Filter

	guard guard.ConstructorGuard
}

// NewListBookingsQuery trims every criterion and parses status ignoring letter case.
// An unknown status fails with errs.ValueIsInvalidError instead of matching nothing.
func NewListBookingsQuery(transporterID, shipperID, status string) (ListBookingsQuery, error) {
	parsed, _, err := booking.ParseOptionalStatus(status)
	if err != nil {
		return ListBookingsQuery{}, err
	}

	return ListBookingsQuery{
		filter: booking.Filter{
			TransporterID: strings.TrimSpace(transporterID),
			ShipperID:     strings.TrimSpace(shipperID),
			Status:        parsed,
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q ListBookingsQuery) Validate() error {
	return q.guard.Validate(ErrListBookingsQueryIsNotConstructed)
}

func (q ListBookingsQuery) Filter() booking.Filter {
	return q.filter
}

// ListBookingsQueryHandler lists bookings ordered by requestedAt, then ID.
type ListBookingsQueryHandler struct {
	bookings ports.BookingRepository
}

func NewListBookingsQueryHandler(bookings ports.BookingRepository) ListBookingsQueryHandler {
	return ListBookingsQueryHandler{bookings: bookings}
}

func (h ListBookingsQueryHandler) Handle(ctx context.Context, query ListBookingsQuery) ([]BookingResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	found, err := h.bookings.Find(ctx, query.Filter())
	if err != nil {
		return nil, err
	}

	result := make([]BookingResponse, 0, len(found))
	for _, b := range found {
		result = append(result, NewBookingResponse(b))
	}
	return result, nil
}
