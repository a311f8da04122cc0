package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

var ErrUpdateParcelWeightCommandIsNotConstructed = errors.New(
	"UpdateParcelWeightCommand must be created via NewUpdateParcelWeightCommand constructor",
)

// UpdateParcelWeightCommand represents a request to change the weight of an
// active parcel. Weight is the only parcel attribute that may change after
// registration.
//
// Example:
//
//	parcelID, _ := parcel.NewID(7)
//	cmd, err := NewUpdateParcelWeightCommand(parcelID, 2.4)
//	if err != nil {
//	    return fmt.Errorf("invalid weight update: %w", err)
//	}
//
//	handler := NewUpdateParcelWeightCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to update weight: %w", err)
//	}
type UpdateParcelWeightCommand struct { //nolint:recvcheck //using for validation
	parcelID parcel.ID
	weight   float64

	guard guard.ConstructorGuard
}

// NewUpdateParcelWeightCommand creates a command to change a parcel's weight.
// Validates that the id is valid and the weight is positive.
// Returns an error if any validation fails.
func NewUpdateParcelWeightCommand(parcelID parcel.ID, weight float64) (UpdateParcelWeightCommand, error) {
	updateCommand := UpdateParcelWeightCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setParcelID(parcelID),
		updateCommand.setWeight(weight),
	); err != nil {
		return UpdateParcelWeightCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateParcelWeightCommandIsNotConstructed if validation fails.
func (c UpdateParcelWeightCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelWeightCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to update.
func (c UpdateParcelWeightCommand) ParcelID() parcel.ID {
	return c.parcelID
}

// Weight returns the new weight.
func (c UpdateParcelWeightCommand) Weight() float64 {
	return c.weight
}

func (c *UpdateParcelWeightCommand) setParcelID(parcelID parcel.ID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *UpdateParcelWeightCommand) setWeight(weight float64) error {
	if weight <= 0 {
		return ErrWeightIsInvalid
	}

	c.weight = weight
	return nil
}
