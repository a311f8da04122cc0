package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrRegisterParcelCommandIsNotConstructed = errors.New(
		"RegisterParcelCommand must be created via NewRegisterParcelCommand constructor",
	)
	ErrSenderIsRequired    = errors.New("sender is required")
	ErrRecipientIsRequired = errors.New("recipient is required")
	ErrAddressIsRequired   = errors.New("address is required")
	ErrWeightIsInvalid     = errors.New("weight must be greater than 0")
)

// RegisterParcelCommand represents a request to register a new parcel for tracking.
// Encapsulates the parcel details including routing information, weight and urgency.
//
// Example:
//
//	parcelID, _ := parcel.NewID(7)
//	priority, _ := parcel.NewPriority(2)
//	cmd, err := NewRegisterParcelCommand(parcelID, "Acme Ltd", "J. Smith", "12 Harbour Rd", 1.25, priority)
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
//
//	handler := NewRegisterParcelCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register parcel: %w", err)
//	}
//	fmt.Printf("Parcel %s registered and awaiting loading", parcelID)
type RegisterParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID  parcel.ID
	sender    string
	recipient string
	address   string
	weight    float64
	priority  parcel.Priority

	guard guard.ConstructorGuard
}

// NewRegisterParcelCommand creates a command to register a new parcel.
// Validates that the id and priority are valid, the routing fields are
// not empty, and the weight is positive.
// Returns an error if any validation fails.
func NewRegisterParcelCommand(
	parcelID parcel.ID,
	sender string,
	recipient string,
	address string,
	weight float64,
	priority parcel.Priority,
) (RegisterParcelCommand, error) {
	registerCommand := RegisterParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		registerCommand.setParcelID(parcelID),
		registerCommand.setSender(sender),
		registerCommand.setRecipient(recipient),
		registerCommand.setAddress(address),
		registerCommand.setWeight(weight),
		registerCommand.setPriority(priority),
	); err != nil {
		return RegisterParcelCommand{}, err
	}

	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterParcelCommandIsNotConstructed if validation fails.
func (c RegisterParcelCommand) Validate() error {
	return c.guard.Validate(ErrRegisterParcelCommandIsNotConstructed)
}

// ParcelID returns the caller-assigned identifier for the parcel.
func (c RegisterParcelCommand) ParcelID() parcel.ID {
	return c.parcelID
}

// Sender returns the name of the sending party.
func (c RegisterParcelCommand) Sender() string {
	return c.sender
}

// Recipient returns the name of the receiving party.
func (c RegisterParcelCommand) Recipient() string {
	return c.recipient
}

// Address returns the delivery destination.
func (c RegisterParcelCommand) Address() string {
	return c.address
}

// Weight returns the parcel weight.
func (c RegisterParcelCommand) Weight() float64 {
	return c.weight
}

// Priority returns the delivery urgency.
func (c RegisterParcelCommand) Priority() parcel.Priority {
	return c.priority
}

func (c *RegisterParcelCommand) setParcelID(parcelID parcel.ID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *RegisterParcelCommand) setSender(sender string) error {
	if sender == "" {
		return ErrSenderIsRequired
	}

	c.sender = sender
	return nil
}

func (c *RegisterParcelCommand) setRecipient(recipient string) error {
	if recipient == "" {
		return ErrRecipientIsRequired
	}

	c.recipient = recipient
	return nil
}

func (c *RegisterParcelCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *RegisterParcelCommand) setWeight(weight float64) error {
	if weight <= 0 {
		return ErrWeightIsInvalid
	}

	c.weight = weight
	return nil
}

func (c *RegisterParcelCommand) setPriority(priority parcel.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}
