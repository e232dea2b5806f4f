package queries

import (
	"context"
	"errors"
	"strings"

	"freight/internal/core/domain/model/load"
	"freight/internal/core/ports"
	"freight/internal/pkg/guard"
)

var ErrListLoadsQueryIsNotConstructed = errors.New(
	"ListLoadsQuery must be created via NewListLoadsQuery constructor",
)

// ListLoadsQuery lists loads matching every supplied criterion.
// Blank criteria are ignored, so a query with none lists every load.
//
// Example:
//
//	query, err := NewListLoadsQuery("S1", "FLATBED", "posted", "", "Delhi")
//	if err != nil {
//	    return err // status was not a load status
//	}
//	loads, err := handler.Handle(ctx, query)
type ListLoadsQuery struct {
	filter load.Filter

	guard guard.ConstructorGuard
}

// NewListLoadsQuery trims every criterion and parses status ignoring letter case.
// An unknown status fails with errs.ValueIsInvalidError instead of matching nothing.
func NewListLoadsQuery(shipperID, truckType, status, loadingPoint, unloadingPoint string) (ListLoadsQuery, error) {
	filter := load.Filter{
		ShipperID:      strings.TrimSpace(shipperID),
		TruckType:      strings.TrimSpace(truckType),
		LoadingPoint:   strings.TrimSpace(loadingPoint),
		UnloadingPoint: strings.TrimSpace(unloadingPoint),
	}

	if strings.TrimSpace(status) != "" {
		parsed, err := load.ParseStatus(status)
		if err != nil {
			return ListLoadsQuery{}, err
		}
		filter.Status = parsed
	}

	return ListLoadsQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListLoadsQuery) Validate() error {
	return q.guard.Validate(ErrListLoadsQueryIsNotConstructed)
}

func (q ListLoadsQuery) Filter() load.Filter {
	return q.filter
}

// ListLoadsQueryHandler lists loads ordered by datePosted, then ID.
type ListLoadsQueryHandler struct {
	loads ports.LoadRepository
}

func NewListLoadsQueryHandler(loads ports.LoadRepository) ListLoadsQueryHandler {
	return ListLoadsQueryHandler{loads: loads}
}

// Handle never returns a nil slice on success.
func (h ListLoadsQueryHandler) Handle(ctx context.Context, query ListLoadsQuery) ([]LoadResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	found, err := h.loads.Find(ctx, query.Filter())
	if err != nil {
		return nil, err
	}

	result := make([]LoadResponse, 0, len(found))
	for _, l := range found {
		result = append(result, NewLoadResponse(l))
	}
	return result, nil
}
