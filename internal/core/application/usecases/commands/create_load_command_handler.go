package commands

import (
	"context"

	"freight/internal/core/domain/model/load"
	"freight/internal/core/ports"
)

// CreateLoadCommandHandler posts new loads.
//
// Example:
//
//	handler := NewCreateLoadCommandHandler(uowFactory, clockwork.NewRealClock())
//	l, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("load creation failed: %w", err)
//	}
//	// l.Status() == load.Posted
type CreateLoadCommandHandler struct {
	uowFactory LoadUoWFactory
	clock      ports.Clock
}

// NewCreateLoadCommandHandler creates a handler for load creation.
// The clock supplies datePosted when the command leaves it empty.
func NewCreateLoadCommandHandler(uowFactory LoadUoWFactory, clock ports.Clock) CreateLoadCommandHandler {
	return CreateLoadCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle creates the load in POSTED status and persists it.
func (h CreateLoadCommandHandler) Handle(ctx context.Context, cmd CreateLoadCommand) (*load.Load, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := load.NewLoad(cmd.LoadID(), cmd.Fields().details(cmd.facility, h.clock.Now()))
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.LoadRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
