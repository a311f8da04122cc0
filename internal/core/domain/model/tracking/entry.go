package tracking

import (
	"errors"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

// ErrEntryIsNotConstructed is returned when using an improperly initialized Entry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via one of the NewXxxEntry constructors")

// Entry is one step of undoable history. It pairs the kind of mutation that
// happened with a snapshot of the parcel as it existed before that mutation
// took effect:
//
//   - Registered entries hold the parcel as it was added
//   - Updated entries hold the parcel before the weight change
//   - Removed entries hold the parcel just before it left the registry
//
// The entry owns its snapshot. Later changes to the live parcel never show
// through a recorded entry, which is what makes replaying the inverse
// operation safe long after the original mutation.
type Entry struct {
	// kind tags which mutation this entry reverses
	kind Kind

	// parcel is the pre-mutation snapshot
	parcel *parcel.Parcel

	// guard ensures the entry was properly constructed
	guard guard.ConstructorGuard
}

// NewRegisteredEntry records that the given parcel was just added to the
// registry. The entry captures a snapshot of the parcel as registered.
//
// Returns an error if the parcel is invalid.
func NewRegisteredEntry(p *parcel.Parcel) (Entry, error) {
	return newEntry(Registered, p)
}

// NewUpdatedEntry records that the given parcel is about to change weight.
// Callers must pass the parcel in its pre-change state; the entry captures
// that state so undo can restore it.
//
// Returns an error if the parcel is invalid.
func NewUpdatedEntry(p *parcel.Parcel) (Entry, error) {
	return newEntry(Updated, p)
}

// NewRemovedEntry records that the given parcel was just removed from the
// registry. The entry captures the parcel as it was at removal so undo can
// put it back.
//
// Returns an error if the parcel is invalid.
func NewRemovedEntry(p *parcel.Parcel) (Entry, error) {
	return newEntry(Removed, p)
}

func newEntry(kind Kind, p *parcel.Parcel) (Entry, error) {
	if err := kind.Validate(); err != nil {
		return Entry{}, err
	}
	if err := p.Validate(); err != nil {
		return Entry{}, err
	}

	return Entry{
		kind:   kind,
		parcel: p.Snapshot(),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Kind returns the mutation tag of the entry.
func (e Entry) Kind() Kind {
	return e.kind
}

// Parcel returns the pre-mutation snapshot the entry carries.
// The snapshot belongs to the entry; it is not a view of the live parcel.
func (e Entry) Parcel() *parcel.Parcel {
	return e.parcel
}

// Validate ensures the Entry was properly constructed through one of the
// NewXxxEntry constructors.
//
// Returns:
//   - nil if the entry is valid
//   - ErrEntryIsNotConstructed if the entry is a zero value
func (e Entry) Validate() error {
	return e.guard.Validate(ErrEntryIsNotConstructed)
}
