package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

var ErrLoadParcelCommandIsNotConstructed = errors.New(
	"LoadParcelCommand must be created via NewLoadParcelCommand constructor",
)

// LoadParcelCommand represents a request to stage an active parcel for dispatch.
// Loading places a snapshot of the parcel on the priority queue; the parcel
// itself stays active in the registry.
//
// Example:
//
//	parcelID, _ := parcel.NewID(7)
//	cmd, err := NewLoadParcelCommand(parcelID)
//	if err != nil {
//	    return fmt.Errorf("invalid load request: %w", err)
//	}
//
//	handler := NewLoadParcelCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to stage parcel: %w", err)
//	}
type LoadParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID parcel.ID

	guard guard.ConstructorGuard
}

// NewLoadParcelCommand creates a command to stage a parcel for dispatch.
// Validates that the id is valid.
func NewLoadParcelCommand(parcelID parcel.ID) (LoadParcelCommand, error) {
	loadCommand := LoadParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := loadCommand.setParcelID(parcelID); err != nil {
		return LoadParcelCommand{}, err
	}

	return loadCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrLoadParcelCommandIsNotConstructed if validation fails.
func (c LoadParcelCommand) Validate() error {
	return c.guard.Validate(ErrLoadParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to stage.
func (c LoadParcelCommand) ParcelID() parcel.ID {
	return c.parcelID
}

func (c *LoadParcelCommand) setParcelID(parcelID parcel.ID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}
