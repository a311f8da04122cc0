// Package errs defines the error families shared by every layer of the
// parcel-tracking application, one family per failure class.
//
// The families:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value fails its validation rule
//   - ValueIsOutOfRangeError: a value lies outside an allowed range
//   - ObjectNotFoundError: a lookup targets an object that is not there
//   - ObjectAlreadyExistsError: an insert violates uniqueness
//   - CollectionIsEmptyError: an element is taken from an empty collection
//
// Every family carries the same surface: a package-level sentinel
// (ErrValueIsRequired and friends) matchable with errors.Is, a struct holding
// the failing detail, constructors with and without an underlying cause, and
// Error/Unwrap methods so wrapped causes stay reachable. Callers branch on
// the sentinel, never on message text.
package errs
