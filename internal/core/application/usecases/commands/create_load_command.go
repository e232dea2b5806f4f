package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/guard"
)

var ErrCreateLoadCommandIsNotConstructed = errors.New(
	"CreateLoadCommand must be created via NewCreateLoadCommand constructor",
)

// CreateLoadCommand represents a shipper posting a new load.
// There is no status field: new loads are always POSTED.
//
// Example:
//
//	cmd, err := NewCreateLoadCommand(kernel.NewUUID(), LoadFields{
//	    ShipperID:      "S1",
//	    LoadingPoint:   "Pune",
//	    UnloadingPoint: "Delhi",
//	    LoadingDate:    loadingDate,
//	    UnloadingDate:  unloadingDate,
//	    ProductType:    "steel",
//	    TruckType:      "FLATBED",
//	    NoOfTrucks:     2,
//	    Weight:         500,
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid load data: %w", err)
//	}
type CreateLoadCommand struct { //nolint:recvcheck //using for validation
	loadID   kernel.UUID
	fields   LoadFields
	facility load.Facility

	guard guard.ConstructorGuard
}

// NewCreateLoadCommand validates the load ID and builds the facility.
// Remaining field checks happen when the aggregate is created.
func NewCreateLoadCommand(loadID kernel.UUID, fields LoadFields) (CreateLoadCommand, error) {
	cmd := CreateLoadCommand{
		fields: fields,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLoadID(loadID),
		cmd.setFacility(fields),
	); err != nil {
		return CreateLoadCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLoadCommand) Validate() error {
	return c.guard.Validate(ErrCreateLoadCommandIsNotConstructed)
}

// LoadID returns the identifier assigned to the new load.
func (c CreateLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

// Fields returns the raw caller-supplied fields.
func (c CreateLoadCommand) Fields() LoadFields {
	return c.fields
}

func (c *CreateLoadCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}

	c.loadID = loadID
	return nil
}

func (c *CreateLoadCommand) setFacility(fields LoadFields) error {
	facility, err := fields.facility()
	if err != nil {
		return err
	}

	c.facility = facility
	return nil
}
