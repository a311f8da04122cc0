package parcel

import (
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// ID is the numeric identifier of a parcel. It is assigned by the caller at
// registration time and must be unique among active parcels.
//
// The zero value is invalid; identifiers must be positive so that a missing
// numeric field can be told apart from a real one.
type ID int

// NewID creates a parcel ID from its raw numeric value.
//
// Returns:
//   - the ID if the value is positive
//   - an error if the value is zero or negative
func NewID(value int) (ID, error) {
	id := ID(value)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate checks that the ID carries a positive value.
func (i ID) Validate() error {
	if i <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("%d is not greater than 0", int(i)))
	}
	return nil
}

// Int returns the raw numeric value of the ID.
func (i ID) Int() int {
	return int(i)
}

// String returns the display form of the ID, e.g. "P7".
func (i ID) String() string {
	return fmt.Sprintf("P%d", int(i))
}
