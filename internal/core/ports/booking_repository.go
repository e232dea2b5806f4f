package ports

import (
	"context"

	"freight/internal/core/domain/model/booking"
	"freight/internal/core/domain/model/kernel"
)

// BookingRepository defines the persistence contract for Booking aggregates.
type BookingRepository interface {
	// Add persists a new booking. The booking must be valid and its ID unused.
	Add(ctx context.Context, aggregate *booking.Booking) error

	// Update persists changes to an existing booking.
	Update(ctx context.Context, aggregate *booking.Booking) error

	// Get retrieves a booking by ID. Returns errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error)

	// Delete removes a booking by ID. Returns errs.ObjectNotFoundError when absent.
	Delete(ctx context.Context, id kernel.UUID) error

	// ExistsForLoad reports whether any booking references the load.
	ExistsForLoad(ctx context.Context, loadID kernel.UUID) (bool, error)

	// Find returns every booking matching the filter, ordered by requestedAt
	// then ID. A non-empty ShipperID is matched against the shipper of the
	// referenced load; bookings whose load no longer exists never match it.
	Find(ctx context.Context, filter booking.Filter) ([]*booking.Booking, error)

	// CountByStatus returns the number of bookings per status.
	CountByStatus(ctx context.Context) (map[booking.Status]int64, error)
}
