package queries

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"
	"freight/internal/pkg/guard"
)

var ErrGetLoadQueryIsNotConstructed = errors.New(
	"GetLoadQuery must be created via NewGetLoadQuery constructor",
)

// GetLoadQuery retrieves one load by ID.
type GetLoadQuery struct {
	loadID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetLoadQuery(loadID kernel.UUID) (GetLoadQuery, error) {
	if err := loadID.Validate(); err != nil {
		return GetLoadQuery{}, err
	}
	return GetLoadQuery{loadID: loadID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLoadQuery) Validate() error {
	return q.guard.Validate(ErrGetLoadQueryIsNotConstructed)
}

func (q GetLoadQuery) LoadID() kernel.UUID {
	return q.loadID
}

// GetLoadQueryHandler reads loads straight from the repository.
type GetLoadQueryHandler struct {
	loads ports.LoadRepository
}

func NewGetLoadQueryHandler(loads ports.LoadRepository) GetLoadQueryHandler {
	return GetLoadQueryHandler{loads: loads}
}

// Handle returns errs.ObjectNotFoundError for an unknown load.
func (h GetLoadQueryHandler) Handle(ctx context.Context, query GetLoadQuery) (LoadResponse, error) {
	if err := query.Validate(); err != nil {
		return LoadResponse{}, err
	}

	l, err := h.loads.Get(ctx, query.LoadID())
	if err != nil {
		return LoadResponse{}, err
	}

	return NewLoadResponse(l), nil
}
