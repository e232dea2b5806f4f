package commands

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/guard"
)

var ErrUpdateLoadCommandIsNotConstructed = errors.New(
	"UpdateLoadCommand must be created via NewUpdateLoadCommand constructor",
)

// UpdateLoadCommand overwrites every editable field of a load and, when status
// is non-blank, its status. The status is kept raw so that an unknown load is
// reported before an invalid status.
type UpdateLoadCommand struct { //nolint:recvcheck //using for validation
	loadID   kernel.UUID
	fields   LoadFields
	facility load.Facility
	status   string

	guard guard.ConstructorGuard
}

// NewUpdateLoadCommand validates the load ID and builds the facility.
func NewUpdateLoadCommand(loadID kernel.UUID, fields LoadFields, status string) (UpdateLoadCommand, error) {
	cmd := UpdateLoadCommand{
		fields: fields,
		status: strings.TrimSpace(status),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLoadID(loadID),
		cmd.setFacility(fields),
	); err != nil {
		return UpdateLoadCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateLoadCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLoadCommandIsNotConstructed)
}

func (c UpdateLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

func (c UpdateLoadCommand) Fields() LoadFields {
	return c.fields
}

// Status returns the requested status, or "" when the status is left unchanged.
func (c UpdateLoadCommand) Status() string {
	return c.status
}

func (c *UpdateLoadCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}

	c.loadID = loadID
	return nil
}

func (c *UpdateLoadCommand) setFacility(fields LoadFields) error {
	facility, err := fields.facility()
	if err != nil {
		return err
	}

	c.facility = facility
	return nil
}
