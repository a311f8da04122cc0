package parcel

import (
	"errors"
	"fmt"
	"math"

	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// Domain errors for parcel operations.
var (
	// ErrSenderIsRequired is returned when attempting to create a parcel without a sender.
	ErrSenderIsRequired = errs.NewValueIsRequiredError("sender")
	// ErrRecipientIsRequired is returned when attempting to create a parcel without a recipient.
	ErrRecipientIsRequired = errs.NewValueIsRequiredError("recipient")
	// ErrAddressIsRequired is returned when attempting to create a parcel without a delivery address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrParcelIsNotConstructed is returned when using an improperly initialized Parcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")
)

// Parcel represents a tracked parcel in the system. It is the aggregate root
// that carries a parcel's identity, routing details, weight and urgency.
//
// Parcel follows these invariants:
//   - Must have a valid positive identifier
//   - Sender, recipient and address must be non-empty
//   - Weight must be strictly positive
//   - Priority must be within the valid 1..5 scale
//   - Can only be created through the NewParcel constructor
//
// Weight is the only attribute that may change after registration; everything
// else is fixed for the lifetime of the parcel. Containers that need to keep
// a parcel's state at a point in time (the dispatch queue, the history stack,
// the delivery ledger) take a Snapshot rather than holding the live aggregate.
type Parcel struct {
	// id is the caller-assigned identifier, unique among active parcels
	id ID

	// sender is the party that handed the parcel in
	sender string

	// recipient is the party the parcel is addressed to
	recipient string

	// address is the delivery destination
	address string

	// weight is the parcel weight (must be positive, mutable)
	weight float64

	// priority is the delivery urgency on the 1..5 scale
	priority Priority

	// guard ensures the parcel was properly constructed
	guard guard.ConstructorGuard
}

// NewParcel creates a new Parcel instance with validation. This is the only
// way to create a valid Parcel, ensuring all business invariants hold.
//
// Parameters:
//   - id: Caller-assigned identifier (must be positive)
//   - sender: Name of the sending party (must be non-empty)
//   - recipient: Name of the receiving party (must be non-empty)
//   - address: Delivery destination (must be non-empty)
//   - weight: Parcel weight (must be strictly positive)
//   - priority: Delivery urgency (must be a valid 1..5 level)
//
// Returns:
//   - *Parcel: The created parcel if all validations pass
//   - error: Aggregated validation errors if any parameter is invalid
//
// Example:
//
//	id, _ := parcel.NewID(7)
//	priority, _ := parcel.NewPriority(2)
//	p, err := parcel.NewParcel(id, "Acme Ltd", "J. Smith", "12 Harbour Rd", 1.25, priority)
//	if err != nil {
//	    // Handle validation error
//	}
func NewParcel(id ID, sender string, recipient string, address string, weight float64, priority Priority) (*Parcel, error) {
	parcel := &Parcel{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		parcel.setID(id),
		parcel.setSender(sender),
		parcel.setRecipient(recipient),
		parcel.setAddress(address),
		parcel.setWeight(weight),
		parcel.setPriority(priority),
	); err != nil {
		return nil, err
	}

	return parcel, nil
}

// Validate ensures the Parcel instance was properly constructed through NewParcel.
// This prevents bypassing validation by directly instantiating the struct.
//
// Returns:
//   - nil if the parcel is valid
//   - ErrParcelIsNotConstructed if the parcel was not created via NewParcel
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// IsEqual compares two parcels by their identifiers.
// Parcels are considered equal if they have the same ID.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id == other.id
}

// ID returns the parcel's identifier.
func (p *Parcel) ID() ID {
	return p.id
}

// Sender returns the name of the sending party.
func (p *Parcel) Sender() string {
	return p.sender
}

// Recipient returns the name of the receiving party.
func (p *Parcel) Recipient() string {
	return p.recipient
}

// Address returns the delivery destination.
func (p *Parcel) Address() string {
	return p.address
}

// Weight returns the parcel's current weight.
func (p *Parcel) Weight() float64 {
	return p.weight
}

// Priority returns the parcel's delivery urgency.
func (p *Parcel) Priority() Priority {
	return p.priority
}

// ChangeWeight updates the parcel's weight. Weight is the only mutable
// attribute of a parcel; identity, routing details and priority are fixed
// at registration.
//
// Parameters:
//   - weight: The new weight (must be strictly positive)
//
// Returns:
//   - nil on success
//   - error if the new weight is not strictly positive (the parcel is unchanged)
func (p *Parcel) ChangeWeight(weight float64) error {
	return p.setWeight(weight)
}

// Snapshot returns an independent copy of the parcel as it exists right now.
// Later changes to the live aggregate do not show through the copy, which
// makes snapshots safe to hand to the dispatch queue, the history stack and
// the delivery ledger.
func (p *Parcel) Snapshot() *Parcel {
	snapshot := *p
	return &snapshot
}

// setID validates and sets the parcel's identifier.
// This is a private method used only during construction.
func (p *Parcel) setID(id ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setSender validates and sets the sending party.
// This is a private method used only during construction.
func (p *Parcel) setSender(sender string) error {
	if sender == "" {
		return ErrSenderIsRequired
	}
	p.sender = sender
	return nil
}

// setRecipient validates and sets the receiving party.
// This is a private method used only during construction.
func (p *Parcel) setRecipient(recipient string) error {
	if recipient == "" {
		return ErrRecipientIsRequired
	}
	p.recipient = recipient
	return nil
}

// setAddress validates and sets the delivery destination.
// This is a private method used only during construction.
func (p *Parcel) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	p.address = address
	return nil
}

// setWeight validates and sets the parcel's weight.
// Weight must be a finite number strictly greater than 0.
// Used during construction and by ChangeWeight.
func (p *Parcel) setWeight(weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight is invalid", fmt.Errorf("%v is not greater than 0", weight))
	}
	p.weight = weight
	return nil
}

// setPriority validates and sets the parcel's priority.
// This is a private method used only during construction.
func (p *Parcel) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	p.priority = priority
	return nil
}
