package tracking

import (
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// Kind tags a history entry with the mutation it reverses. The undo
// machinery dispatches on Kind, so the set of kinds is closed: every
// reversible mutation in the system maps to exactly one of them.
type Kind int

const (
	// Unknown represents an invalid or undefined kind.
	// This value (0) helps catch uninitialized Kind values.
	Unknown Kind = iota

	// Registered marks an entry recorded when a parcel was added to the
	// registry. Undoing it removes the parcel again.
	Registered

	// Updated marks an entry recorded before a parcel's weight changed.
	// Undoing it restores the captured pre-change weight.
	Updated

	// Removed marks an entry recorded when a parcel left the registry on
	// delivery. Undoing it puts the captured parcel back.
	Removed
)

// getKindStrings returns a map of Kind values to their string representations.
// All kinds are included for string conversion.
func getKindStrings() map[Kind]string {
	return map[Kind]string{
		Unknown:    "Unknown",
		Registered: "Registered",
		Updated:    "Updated",
		Removed:    "Removed",
	}
}

// getValidKindStrings returns a map of only valid Kind values.
// Only valid kinds are included to support validation.
func getValidKindStrings() map[Kind]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Kind]string{
		Registered: "Registered",
		Updated:    "Updated",
		Removed:    "Removed",
	}
}

// Validate checks if the Kind value is valid.
//
// Valid kinds are: Registered, Updated, Removed.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the kind is valid
//   - error with details if the kind is invalid
func (k Kind) Validate() error {
	if _, ok := getValidKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

// String returns the human-readable name of the kind.
//
// Returns:
//   - "Registered", "Updated", or "Removed" for valid kinds
//   - "Unknown" for invalid kind values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Kind value, including invalid ones.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}
