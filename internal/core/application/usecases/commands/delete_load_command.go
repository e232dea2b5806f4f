package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrDeleteLoadCommandIsNotConstructed = errors.New(
	"DeleteLoadCommand must be created via NewDeleteLoadCommand constructor",
)

// DeleteLoadCommand removes a load that no booking references.
type DeleteLoadCommand struct { //nolint:recvcheck //using for validation
	loadID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteLoadCommand(loadID kernel.UUID) (DeleteLoadCommand, error) {
	if err := loadID.Validate(); err != nil {
		return DeleteLoadCommand{}, err
	}

	return DeleteLoadCommand{
		loadID: loadID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteLoadCommand) Validate() error {
	return c.guard.Validate(ErrDeleteLoadCommandIsNotConstructed)
}

func (c DeleteLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}
