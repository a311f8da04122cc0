package delivery

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// Domain errors for delivery records.
var (
	// ErrRecordIsNotConstructed is returned when using an improperly initialized Record.
	ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord")
	// ErrDeliveredAtIsRequired is returned when a record is restored without a delivery time.
	ErrDeliveredAtIsRequired = errs.NewValueIsRequiredError("deliveredAt")
)

// Record is one line of the delivery ledger: a receipt for a completed
// delivery. It carries its own identity (the receipt id), a snapshot of the
// parcel as delivered, and the delivery timestamp.
//
// Records are permanent. The ledger they live in is append-only, and undoing
// the registry removal that accompanied a delivery does not reach back into
// the ledger. A record therefore never changes after construction.
type Record struct {
	// id is the receipt identifier of this ledger line
	id kernel.UUID

	// parcel is the snapshot of the parcel as delivered
	parcel *parcel.Parcel

	// deliveredAt is when the delivery completed, in UTC
	deliveredAt time.Time

	// guard ensures the record was properly constructed
	guard guard.ConstructorGuard
}

// NewRecord creates a ledger record for a parcel that was just delivered.
// It stamps a fresh receipt id and the current UTC time.
//
// Parameters:
//   - p: The delivered parcel (a snapshot is taken; the caller's copy is not retained)
//
// Returns:
//   - Record: The receipt if the parcel is valid
//   - error: Validation error if the parcel is invalid
func NewRecord(p *parcel.Parcel) (Record, error) {
	return newRecord(kernel.NewUUID(), p, time.Now().UTC())
}

// RestoreRecord rebuilds a ledger record from known values. Unlike NewRecord,
// which stamps a fresh receipt id and timestamp, this constructor takes both
// as given. It exists for rebuilding ledgers from recorded state, for example
// in tests.
//
// Parameters:
//   - id: The receipt identifier (must be a constructed UUID)
//   - p: The parcel snapshot as delivered
//   - deliveredAt: When the delivery completed (must be non-zero)
//
// Returns:
//   - Record: The rebuilt receipt
//   - error: Aggregated validation errors if any parameter is invalid
func RestoreRecord(id kernel.UUID, p *parcel.Parcel, deliveredAt time.Time) (Record, error) {
	return newRecord(id, p, deliveredAt)
}

func newRecord(id kernel.UUID, p *parcel.Parcel, deliveredAt time.Time) (Record, error) {
	record := Record{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		record.setID(id),
		record.setParcel(p),
		record.setDeliveredAt(deliveredAt),
	); err != nil {
		return Record{}, err
	}

	return record, nil
}

// ID returns the receipt identifier of the record.
func (r Record) ID() kernel.UUID {
	return r.id
}

// Parcel returns the snapshot of the parcel as delivered.
// The snapshot belongs to the record; it is not a view of the live parcel.
func (r Record) Parcel() *parcel.Parcel {
	return r.parcel
}

// DeliveredAt returns when the delivery completed, in UTC.
func (r Record) DeliveredAt() time.Time {
	return r.deliveredAt
}

// IsEqual compares two records by their receipt identifiers.
func (r Record) IsEqual(other Record) bool {
	return r.id.IsEqual(other.id)
}

// Validate ensures the Record was properly constructed through NewRecord or
// RestoreRecord.
//
// Returns:
//   - nil if the record is valid
//   - ErrRecordIsNotConstructed if the record is a zero value
func (r Record) Validate() error {
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// setID validates and sets the receipt identifier.
func (r *Record) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

// setParcel validates the parcel and stores an owned snapshot of it.
func (r *Record) setParcel(p *parcel.Parcel) error {
	if err := p.Validate(); err != nil {
		return err
	}
	r.parcel = p.Snapshot()
	return nil
}

// setDeliveredAt validates and sets the delivery time, normalized to UTC.
func (r *Record) setDeliveredAt(deliveredAt time.Time) error {
	if deliveredAt.IsZero() {
		return ErrDeliveredAtIsRequired
	}
	r.deliveredAt = deliveredAt.UTC()
	return nil
}
