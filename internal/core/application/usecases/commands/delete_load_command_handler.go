package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"freight/internal/pkg/errs"
)

// ErrLoadHasBookings is the rule broken by deleting a load that bookings still reference.
var ErrLoadHasBookings = errors.New("load with bookings can't be deleted")

// DeleteLoadCommandHandler deletes loads, guarded by the bookings that reference them.
//
// Example:
//
//	handler := NewDeleteLoadCommandHandler(uowFactory, logger)
//	cmd, _ := NewDeleteLoadCommand(loadID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown load
//	case errors.Is(err, errs.ErrBusinessRuleViolation):
//	    // delete its bookings first
//	}
type DeleteLoadCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

func NewDeleteLoadCommandHandler(uowFactory UoWFactory, logger *slog.Logger) DeleteLoadCommandHandler {
	return DeleteLoadCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "DeleteLoadCommandHandler"),
	}
}

// Handle fails with errs.ObjectNotFoundError for an unknown load and with
// errs.BusinessRuleViolationError when any booking references it. There is no
// notion of an inactive booking: every referencing booking blocks deletion.
func (h DeleteLoadCommandHandler) Handle(ctx context.Context, cmd DeleteLoadCommand) error {
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
	if _, err := loadRepo.Get(ctx, cmd.LoadID()); err != nil {
		return err
	}

	booked, err := uow.BookingRepository().ExistsForLoad(ctx, cmd.LoadID())
	if err != nil {
		return err
	}
	if booked {
		h.logger.InfoContext(ctx, "refusing to delete booked load", "load_id", cmd.LoadID().String())
		return errs.NewBusinessRuleViolationErrorWithCause(
			ErrLoadHasBookings.Error(),
			fmt.Errorf("load %s is referenced by at least one booking", cmd.LoadID()),
		)
	}

	if err = loadRepo.Delete(ctx, cmd.LoadID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "load deleted", "load_id", cmd.LoadID().String())
	return nil
}
