package queries

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/booking"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/ports"
	"freight/internal/pkg/guard"
)

var ErrGetMarketplaceStatsQueryIsNotConstructed = errors.New(
	"GetMarketplaceStatsQuery must be created via NewGetMarketplaceStatsQuery constructor",
)

// GetMarketplaceStatsQuery counts loads and bookings per status.
type GetMarketplaceStatsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetMarketplaceStatsQuery() GetMarketplaceStatsQuery {
	return GetMarketplaceStatsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetMarketplaceStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetMarketplaceStatsQueryIsNotConstructed)
}

// MarketplaceStats holds a count for every status, zero included.
type MarketplaceStats struct {
	Loads    map[load.Status]int64
	Bookings map[booking.Status]int64
}

// TotalLoads sums the per-status load counts.
func (s MarketplaceStats) TotalLoads() int64 {
	var total int64
	for _, n := range s.Loads {
		total += n
	}
	return total
}

// TotalBookings sums the per-status booking counts.
func (s MarketplaceStats) TotalBookings() int64 {
	var total int64
	for _, n := range s.Bookings {
		total += n
	}
	return total
}

// GetMarketplaceStatsQueryHandler aggregates counts from both repositories.
//
// Example:
//
//	stats, err := handler.Handle(ctx, NewGetMarketplaceStatsQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d open loads\n", stats.Loads[load.Posted])
type GetMarketplaceStatsQueryHandler struct {
	loads    ports.LoadRepository
	bookings ports.BookingRepository
}

func NewGetMarketplaceStatsQueryHandler(
	loads ports.LoadRepository,
	bookings ports.BookingRepository,
) GetMarketplaceStatsQueryHandler {
	return GetMarketplaceStatsQueryHandler{loads: loads, bookings: bookings}
}

func (h GetMarketplaceStatsQueryHandler) Handle(
	ctx context.Context,
	query GetMarketplaceStatsQuery,
) (MarketplaceStats, error) {
	if err := query.Validate(); err != nil {
		return MarketplaceStats{}, err
	}

	loadCounts, err := h.loads.CountByStatus(ctx)
	if err != nil {
		return MarketplaceStats{}, err
	}
	bookingCounts, err := h.bookings.CountByStatus(ctx)
	if err != nil {
		return MarketplaceStats{}, err
	}

	stats := MarketplaceStats{
		Loads:    make(map[load.Status]int64, len(load.Statuses())),
		Bookings: make(map[booking.Status]int64, len(booking.Statuses())),
	}
	for _, s := range load.Statuses() {
		stats.Loads[s] = loadCounts[s]
	}
	for _, s := range booking.Statuses() {
		stats.Bookings[s] = bookingCounts[s]
	}
	return stats, nil
}
