package commands

import (
	"context"

	"freight/internal/core/domain/model/load"
	"freight/internal/core/ports"
)

// UpdateLoadCommandHandler overwrites a load's fields.
type UpdateLoadCommandHandler struct {
	uowFactory LoadUoWFactory
	clock      ports.Clock
}

func NewUpdateLoadCommandHandler(uowFactory LoadUoWFactory, clock ports.Clock) UpdateLoadCommandHandler {
	return UpdateLoadCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle fails with errs.ObjectNotFoundError for an unknown load and with
// errs.ValueIsInvalidError for a status outside the load enum. Either way
// nothing is written. Status letter case is ignored.
func (h UpdateLoadCommandHandler) Handle(ctx context.Context, cmd UpdateLoadCommand) (*load.Load, error) {
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
	aggregate, err := loadRepo.Get(ctx, cmd.LoadID())
	if err != nil {
		return nil, err
	}

	var status load.Status
	if cmd.Status() != "" {
		if status, err = load.ParseStatus(cmd.Status()); err != nil {
			return nil, err
		}
	}

	if err = aggregate.Update(cmd.Fields().details(cmd.facility, h.clock.Now())); err != nil {
		return nil, err
	}
	if status != "" {
		if err = aggregate.ChangeStatus(status); err != nil {
			return nil, err
		}
	}

	if err = loadRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
