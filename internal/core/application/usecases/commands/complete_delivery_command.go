package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents a request to mark an active parcel as
// delivered. Completion removes the parcel from the registry and writes a
// permanent receipt to the delivery ledger.
//
// Example:
//
//	parcelID, _ := parcel.NewID(7)
//	cmd, err := NewCompleteDeliveryCommand(parcelID)
//	if err != nil {
//	    return fmt.Errorf("invalid delivery request: %w", err)
//	}
//
//	handler := NewCompleteDeliveryCommandHandler(uowFactory)
//	receipt, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to complete delivery: %w", err)
//	}
//	fmt.Printf("Delivered, receipt %s", receipt.ID())
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	parcelID parcel.ID

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to complete a parcel's delivery.
// Validates that the id is valid.
func NewCompleteDeliveryCommand(parcelID parcel.ID) (CompleteDeliveryCommand, error) {
	deliveryCommand := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deliveryCommand.setParcelID(parcelID); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return deliveryCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteDeliveryCommandIsNotConstructed if validation fails.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to deliver.
func (c CompleteDeliveryCommand) ParcelID() parcel.ID {
	return c.parcelID
}

func (c *CompleteDeliveryCommand) setParcelID(parcelID parcel.ID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}
