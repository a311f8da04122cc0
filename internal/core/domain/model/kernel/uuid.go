package kernel

import (
	"fmt"

	"parceltrack/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID or UUIDFromString")

// UUID is a value object wrapping github.com/google/uuid. Delivery records
// use it as their receipt identity, separate from the numeric parcel ids the
// records capture.
//
// The zero value is invalid; obtain instances through NewUUID or
// UUIDFromString. Values are immutable once constructed and safe to share
// across goroutines.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a fresh random (version 4) identifier.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses the canonical textual form, e.g.
// "550e8400-e29b-41d4-a716-446655440000". It rebuilds identifiers that were
// issued earlier, which is mostly useful when restoring records or in tests.
//
// Returns:
//   - the parsed UUID on success
//   - an error when the input is not a well-formed UUID
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
// A zero value renders as all zeros.
func (u UUID) String() string {
	return u.id.String()
}

// IsEqual reports whether both values carry the same identifier.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate checks that the UUID went through a constructor. The zero (nil)
// value fails with ErrUUIDIsNotConstructed.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
